// internal/result/hit_test.go
package result

import (
	"testing"

	"seqalign-core/align"
)

func TestErrorRate(t *testing.T) {
	h := Hit{
		Alignment: align.Alignment{RefStart: 2, RefStop: 10, Errors: 2},
	}
	if got, want := h.ErrorRate(), 0.25; got != want {
		t.Errorf("ErrorRate() = %v, want %v", got, want)
	}
}

func TestErrorRateEmptySpan(t *testing.T) {
	h := Hit{Alignment: align.Alignment{RefStart: 5, RefStop: 5}}
	if got := h.ErrorRate(); got != 0 {
		t.Errorf("ErrorRate() = %v, want 0", got)
	}
}
