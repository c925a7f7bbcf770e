// internal/output/output_test.go
package output

import (
	"bytes"
	"strings"
	"testing"

	"seqalign-core/align"
	"seqalign/internal/result"
)

func sampleHits() []result.Hit {
	return []result.Hit{
		{
			ReferenceID: "ref1",
			QueryID:     "q1",
			Alignment:   align.Alignment{RefStart: 0, RefStop: 8, QueryStart: 0, QueryStop: 8, Matches: 8, Errors: 0},
		},
		{
			ReferenceID: "ref1",
			QueryID:     "q2",
			Alignment:   align.Alignment{RefStart: 3, RefStop: 8, QueryStart: 0, QueryStop: 5, Matches: 4, Errors: 1},
		},
	}
}

func TestWriteTextFormatsOneLinePerHit(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleHits()); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ref1\tq1\t0\t8\t0\t8\t8\t0") {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestToAPIAlignmentTranslatesFields(t *testing.T) {
	h := sampleHits()[1]
	got := ToAPIAlignment(h)
	if got.ReferenceID != "ref1" || got.QueryID != "q2" {
		t.Errorf("got = %+v", got)
	}
	if got.RefEnd != 8 || got.QueryEnd != 5 || got.Matches != 4 || got.Errors != 1 {
		t.Errorf("got = %+v", got)
	}
	if got.ErrorRate != 0.2 {
		t.Errorf("ErrorRate = %v, want 0.2", got.ErrorRate)
	}
}

func TestWriteJSONProducesAnArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleHits()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "[") {
		t.Errorf("WriteJSON output does not start with '[': %q", out)
	}
	if !strings.Contains(out, `"query_id": "q1"`) {
		t.Errorf("WriteJSON output missing expected field: %q", out)
	}
}

func TestStartJSONLEncodesOnePerLine(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartJSONL(&buf, 0)
	for _, h := range sampleHits() {
		in <- h
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("StartJSONL: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"query_id":"q1"`) {
		t.Errorf("line 0 = %q", lines[0])
	}
}
