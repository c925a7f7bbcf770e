// core/align/aligner_test.go
package align

import "testing"

func wantAlignment(refStart, refStop, queryStart, queryStop, matches, errors int) Alignment {
	return Alignment{
		RefStart:   refStart,
		RefStop:    refStop,
		QueryStart: queryStart,
		QueryStop:  queryStop,
		Matches:    matches,
		Errors:     errors,
	}
}

// Scenario 1: the canonical semi-global example.
func TestLocateMississippi(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxErrorRate = 0.1
	cfg.IndelCost = 1

	a, err := New("MISSISSIPPI", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, ok := a.Locate("SISSI")
	if !ok {
		t.Fatal("expected an alignment, got none")
	}
	want := wantAlignment(3, 8, 0, 5, 5, 0)
	if got != want {
		t.Errorf("Locate = %+v, want %+v", got, want)
	}
}

// Scenario 2: identical strings, zero tolerance.
func TestLocateExactMatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxErrorRate = 0

	a, err := New("ACGTACGT", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, ok := a.Locate("ACGTACGT")
	if !ok {
		t.Fatal("expected an alignment, got none")
	}
	want := wantAlignment(0, 8, 0, 8, 8, 0)
	if got != want {
		t.Errorf("Locate = %+v, want %+v", got, want)
	}
}

// Scenario 3: a single substitution within tolerance.
func TestLocateSingleMismatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxErrorRate = 0.2

	a, err := New("ACGTACGT", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, ok := a.Locate("ACGTTCGT")
	if !ok {
		t.Fatal("expected an alignment, got none")
	}
	want := wantAlignment(0, 8, 0, 8, 7, 1)
	if got != want {
		t.Errorf("Locate = %+v, want %+v", got, want)
	}
}

// Scenario 4: wildcard_ref with an already-plain query is a no-op on the
// comparison outcome — ACGT against ACGT still matches fully.
func TestLocateWildcardRefPlainQuery(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WildcardRef = true

	a, err := New("ACGT", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, ok := a.Locate("ACGT")
	if !ok {
		t.Fatal("expected an alignment, got none")
	}
	if got.Matches != 4 || got.Errors != 0 {
		t.Errorf("Locate = %+v, want 4 matches, 0 errors", got)
	}
}

// Scenario 5: an all-N reference under wildcard_ref matches any ACGT query.
func TestLocateWildcardRefAllN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WildcardRef = true

	a, err := New("NNNN", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, ok := a.Locate("ACGT")
	if !ok {
		t.Fatal("expected an alignment, got none")
	}
	if got.Matches != 4 || got.Errors != 0 {
		t.Errorf("Locate = %+v, want 4 matches, 0 errors", got)
	}
}

// Scenario 6: a query of bytes outside the IUPAC table matches nothing and
// is rejected once errors exceed the tolerance.
func TestLocateWildcardQueryNoMatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WildcardQuery = true
	cfg.MaxErrorRate = 0

	a, err := New("ACGT", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, ok := a.Locate("XXXX")
	if ok {
		t.Errorf("Locate = %+v, want no alignment", got)
	}
}

func TestLocateRespectsMinOverlap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxErrorRate = 1.0
	cfg.MinOverlap = 10

	a, err := New("ACGTACGT", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := a.Locate("AC"); ok {
		t.Error("expected no alignment: overlap shorter than min_overlap")
	}
}

func TestLocateAnchoredBothEnds(t *testing.T) {
	cfg := Config{
		MaxErrorRate:     0,
		MinOverlap:       1,
		StartInReference: false,
		StartInQuery:     false,
		StopInReference:  false,
		StopInQuery:      false,
		IndelCost:        1,
	}
	a, err := New("ACGT", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, ok := a.Locate("ACGT")
	if !ok {
		t.Fatal("expected an alignment")
	}
	want := wantAlignment(0, 4, 0, 4, 4, 0)
	if got != want {
		t.Errorf("Locate = %+v, want %+v", got, want)
	}
}

func TestSetReferenceRejectsNonASCII(t *testing.T) {
	a, err := New("ACGT", DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.SetReference("AC\xffT"); err == nil {
		t.Error("expected an error for non-ASCII reference")
	}
	if a.Reference() != "ACGT" {
		t.Errorf("Reference() = %q, want unchanged %q", a.Reference(), "ACGT")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinOverlap = -1
	if _, err := New("ACGT", cfg); err == nil {
		t.Error("expected error for negative min_overlap")
	}

	cfg = DefaultConfig()
	cfg.IndelCost = -1
	if _, err := New("ACGT", cfg); err == nil {
		t.Error("expected error for negative indel_cost")
	}
}

func TestSetMinOverlapAndIndelCostValidate(t *testing.T) {
	a, err := New("ACGT", DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.SetMinOverlap(0); err == nil {
		t.Error("expected error for min_overlap 0")
	}
	if err := a.SetIndelCost(0); err == nil {
		t.Error("expected error for indel_cost 0")
	}
	if err := a.SetMinOverlap(3); err != nil {
		t.Errorf("SetMinOverlap(3): %v", err)
	}
}

func TestDebugModePopulatesDPMatrix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	a, err := New("ACGT", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := a.Locate("ACGT"); !ok {
		t.Fatal("expected an alignment")
	}
	m := a.DPMatrix()
	if m == nil {
		t.Fatal("expected a populated DPMatrix in debug mode")
	}
	rows, cols := m.Dims()
	if rows != 5 || cols != 5 {
		t.Errorf("Dims() = (%d,%d), want (5,5)", rows, cols)
	}
	if cost, ok := m.Get(4, 4); !ok || cost != 0 {
		t.Errorf("Get(4,4) = (%d,%v), want (0,true)", cost, ok)
	}
}

func TestLocateReturnsFalseWhenNoAlignmentFits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxErrorRate = 0
	a, err := New("AAAA", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := a.Locate("CCCC"); ok {
		t.Error("expected no alignment: no overlap of any length can be error-free")
	}
}
