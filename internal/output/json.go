// internal/output/json.go
package output

import (
	"io"

	"seqalign/internal/jsonutil"
	"seqalign/internal/result"
	"seqalign/pkg/api"
)

// ToAPIAlignment converts a domain Hit to the stable wire schema (v1).
func ToAPIAlignment(h result.Hit) api.AlignmentV1 {
	return api.AlignmentV1{
		ReferenceID: h.ReferenceID,
		QueryID:     h.QueryID,
		RefStart:    h.Alignment.RefStart,
		RefEnd:      h.Alignment.RefStop,
		QueryStart:  h.Alignment.QueryStart,
		QueryEnd:    h.Alignment.QueryStop,
		Matches:     h.Alignment.Matches,
		Errors:      h.Alignment.Errors,
		ErrorRate:   h.ErrorRate(),
		SourceFile:  h.SourceFile,
	}
}

func toAPIAlignments(list []result.Hit) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIAlignment(h))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
func WriteJSON(w io.Writer, list []result.Hit) error {
	return jsonutil.EncodePretty(w, toAPIAlignments(list))
}
