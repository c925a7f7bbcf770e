// internal/result/hit.go
package result

import "seqalign-core/align"

// Hit pairs one located Alignment with the reference and query identifiers
// it was found between. It is the domain type that flows from the runner
// into the output writers, which translate it to the stable wire schema.
type Hit struct {
	ReferenceID string
	QueryID     string
	Alignment   align.Alignment
	SourceFile  string
}

// ErrorRate reports Errors as a fraction of the aligned reference span, or
// 0 when the span is empty.
func (h Hit) ErrorRate() float64 {
	span := h.Alignment.RefStop - h.Alignment.RefStart
	if span <= 0 {
		return 0
	}
	return float64(h.Alignment.Errors) / float64(span)
}
