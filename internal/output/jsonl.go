// internal/output/jsonl.go
package output

import (
	"encoding/json"
	"io"

	"seqalign/internal/jsonlutil"
	"seqalign/internal/result"
	"seqalign/internal/writers"
)

// StartJSONL spins up a streaming JSONL encoder goroutine for Hit values,
// translating each to its wire schema before encoding. bufSize is the
// channel buffer depth; 0 selects the jsonlutil default.
func StartJSONL(w io.Writer, bufSize int) (chan<- result.Hit, <-chan error) {
	encode := func(enc *json.Encoder, h result.Hit) error {
		return enc.Encode(ToAPIAlignment(h))
	}
	return jsonlutil.Start(w, bufSize, encode, writers.IsBrokenPipe)
}
