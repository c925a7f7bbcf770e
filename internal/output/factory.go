// internal/output/factory.go
package output

import (
	"fmt"
	"io"

	"seqalign/internal/result"
)

// HitWriterFactory implements runner.WriterFactory[result.Hit] for the
// "text", "json", and "jsonl" output formats accepted by align-many's
// -output flag.
type HitWriterFactory struct {
	Format string
}

// Start launches the background encoder for the configured format. "json"
// buffers every hit and writes one pretty array on channel close; "text"
// also buffers every hit and writes one line per hit on channel close;
// "jsonl" streams one line per hit as it arrives.
func (f HitWriterFactory) Start(out io.Writer, bufSize int) (chan<- result.Hit, <-chan error) {
	switch f.Format {
	case "jsonl":
		return StartJSONL(out, bufSize)
	case "json":
		return startBuffered(out, bufSize, WriteJSON)
	default:
		return startBuffered(out, bufSize, WriteText)
	}
}

func startBuffered(out io.Writer, bufSize int, write func(io.Writer, []result.Hit) error) (chan<- result.Hit, <-chan error) {
	in := make(chan result.Hit, bufSize)
	done := make(chan error, 1)
	go func() {
		var hits []result.Hit
		for h := range in {
			hits = append(hits, h)
		}
		done <- write(out, hits)
	}()
	return in, done
}

// NewHitWriterFactory validates format and returns a ready factory.
func NewHitWriterFactory(format string) (HitWriterFactory, error) {
	switch format {
	case "text", "json", "jsonl":
		return HitWriterFactory{Format: format}, nil
	default:
		return HitWriterFactory{}, fmt.Errorf("output: unknown format %q, want text, json, or jsonl", format)
	}
}
