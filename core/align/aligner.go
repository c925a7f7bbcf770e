// core/align/aligner.go
package align

import "fmt"

// entry is one cell of the DP column: accumulated edit cost, the count of
// matching character pairs along the best path to this cell under the
// tie-breaking rule, and a signed origin marker (turned into RefStart and
// QueryStart at the end of Locate).
type entry struct {
	cost    int
	matches int
	origin  int
}

// Config holds the tunables an Aligner is built from. Start from
// DefaultConfig and override only the fields that need to change — that
// mirrors the zero-value-is-meaningful habit used throughout this module's
// teacher, except for the four boundary flags, whose zero value (an
// alignment anchored at both ends of both strings) is rarely what a caller
// wants, so DefaultConfig sets all four true.
type Config struct {
	MaxErrorRate float64
	MinOverlap   int // default 1; must be >= 1

	StartInReference bool
	StartInQuery     bool
	StopInReference  bool
	StopInQuery      bool

	WildcardRef   bool
	WildcardQuery bool

	IndelCost int // sets both InsertionCost and DeletionCost; default 1

	Debug bool
}

// DefaultConfig returns the standard semi-global configuration: all four
// boundary flags true, min_overlap 1, indel cost 1, no wildcards, no debug.
func DefaultConfig() Config {
	return Config{
		MinOverlap:       1,
		StartInReference: true,
		StartInQuery:     true,
		StopInReference:  true,
		StopInQuery:      true,
		IndelCost:        1,
	}
}

// Alignment is the result of a successful Locate or ComparePrefixes call.
// At least one of RefStart, QueryStart is zero. A Locate result always has
// RefStop-RefStart > 0; ComparePrefixes returns a zero-length tuple when
// either input is empty.
type Alignment struct {
	RefStart   int
	RefStop    int
	QueryStart int
	QueryStop  int
	Matches    int
	Errors     int
}

// Aligner is a configured, reusable semi-global aligner bound to one
// reference string. Construct once with New and call Locate many times;
// it is not safe for concurrent use by multiple goroutines on the same
// instance, so concurrent callers build one Aligner per goroutine.
type Aligner struct {
	referenceOriginal string
	referenceRaw      []byte
	referenceTrans    []byte // translated through the mode's reference table
	m                 int

	maxErrorRate float64
	minOverlap   int

	insertionCost int
	deletionCost  int

	startInReference bool
	startInQuery     bool
	stopInReference  bool
	stopInQuery      bool

	wildcardRef   bool
	wildcardQuery bool

	debug    bool
	dpMatrix *DPMatrix

	column []entry
}

// New builds an Aligner bound to reference under cfg. An error is returned
// (and no Aligner constructed) if cfg.MinOverlap or cfg.IndelCost are
// invalid; cfg.MinOverlap == 0 is treated as "use the default of 1" rather
// than an error, matching the construction-time default in the external
// interface contract.
func New(reference string, cfg Config) (*Aligner, error) {
	if cfg.MinOverlap == 0 {
		cfg.MinOverlap = 1
	}
	if cfg.IndelCost == 0 {
		cfg.IndelCost = 1
	}
	if cfg.MinOverlap < 1 {
		return nil, fmt.Errorf("align: min_overlap must be >= 1, got %d", cfg.MinOverlap)
	}
	if cfg.IndelCost < 1 {
		return nil, fmt.Errorf("align: indel_cost must be >= 1, got %d", cfg.IndelCost)
	}

	a := &Aligner{
		maxErrorRate:     cfg.MaxErrorRate,
		minOverlap:       cfg.MinOverlap,
		insertionCost:    cfg.IndelCost,
		deletionCost:     cfg.IndelCost,
		startInReference: cfg.StartInReference,
		startInQuery:     cfg.StartInQuery,
		stopInReference:  cfg.StopInReference,
		stopInQuery:      cfg.StopInQuery,
		wildcardRef:      cfg.WildcardRef,
		wildcardQuery:    cfg.WildcardQuery,
		debug:            cfg.Debug,
	}
	if err := a.SetReference(reference); err != nil {
		return nil, err
	}
	return a, nil
}

// SetReference replaces the configured reference, reallocating the column
// buffer and retranslating the reference through the mode table selected
// by the aligner's wildcard flags. On error (only possible if reference
// contains non-ASCII bytes) the aligner's previous state is left intact.
func (a *Aligner) SetReference(reference string) error {
	if err := ensureASCII("reference", reference); err != nil {
		return err
	}
	mode := selectCharMode(a.wildcardRef, a.wildcardQuery)
	raw := []byte(reference)
	trans := translateBuf(raw, mode.refTable)

	a.referenceOriginal = reference
	a.referenceRaw = raw
	a.referenceTrans = trans
	a.m = len(raw)
	a.column = make([]entry, a.m+1)
	return nil
}

// Reference returns the original (untranslated) reference string.
func (a *Aligner) Reference() string { return a.referenceOriginal }

// SetMinOverlap updates min_overlap, rejecting values below 1.
func (a *Aligner) SetMinOverlap(n int) error {
	if n < 1 {
		return fmt.Errorf("align: min_overlap must be >= 1, got %d", n)
	}
	a.minOverlap = n
	return nil
}

// SetIndelCost updates both insertion and deletion cost together,
// rejecting values below 1.
func (a *Aligner) SetIndelCost(n int) error {
	if n < 1 {
		return fmt.Errorf("align: indel_cost must be >= 1, got %d", n)
	}
	a.insertionCost = n
	a.deletionCost = n
	return nil
}

// SetDebug toggles DP-matrix recording for subsequent Locate calls.
func (a *Aligner) SetDebug(on bool) { a.debug = on }

// DPMatrix returns the debug matrix populated by the most recent Locate
// call, or nil if debug mode is off or Locate has not been called.
func (a *Aligner) DPMatrix() *DPMatrix { return a.dpMatrix }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Locate runs the banded semi-global DP engine for query against the
// configured reference and returns the best alignment found: more matches
// wins, and equal matches are broken by lower cost. Within the DP, equal-cost
// paths prefer a mismatch, then an insertion, then a deletion. An exact
// full-reference match ends the scan early. The second return value is false
// if no alignment satisfying min_overlap and max_error_rate exists.
func (a *Aligner) Locate(query string) (Alignment, bool) {
	q := []byte(query)
	n := len(q)
	m := a.m

	mode := selectCharMode(a.wildcardRef, a.wildcardQuery)
	qTrans := translateBuf(q, mode.queryTable)

	k := int(a.maxErrorRate * float64(m))

	minN := 0
	if !a.stopInQuery {
		minN = n - m - k
		if minN < 0 {
			minN = 0
		}
	}
	maxN := n
	if !a.startInQuery {
		maxN = m + k
		if maxN > n {
			maxN = n
		}
	}

	var dpm *DPMatrix
	if a.debug {
		dpm = newDPMatrix(m+1, n+1)
	}
	a.dpMatrix = dpm

	col := a.column

	for i := 0; i <= m; i++ {
		var cost, origin int
		switch {
		case !a.startInReference && !a.startInQuery:
			cost = max(i, minN) * a.insertionCost
			origin = 0
		case a.startInReference && !a.startInQuery:
			cost = minN * a.insertionCost
			origin = min(0, minN-i)
		case !a.startInReference && a.startInQuery:
			cost = i * a.insertionCost
			origin = max(0, minN-i)
		default:
			cost = min(i, minN) * a.insertionCost
			origin = minN - i
		}
		col[i] = entry{cost: cost, matches: 0, origin: origin}
		dpm.Set(i, minN, cost)
	}

	var last int
	if !a.startInReference {
		last = min(m, k+1)
	} else {
		last = m
	}

	bestCost := m + n
	bestMatches := -1
	var best Alignment
	var bestOrigin int

	updateBest := func(cost, matches, origin, refStop, queryStop int) {
		if matches > bestMatches || (matches == bestMatches && cost < bestCost) {
			bestMatches = matches
			bestCost = cost
			bestOrigin = origin
			best.RefStop = refStop
			best.QueryStop = queryStop
		}
	}

exact:
	for j := minN + 1; j <= maxN; j++ {
		diag := col[0]
		if a.startInQuery {
			col[0] = entry{cost: 0, matches: col[0].matches, origin: j}
		} else {
			col[0] = entry{cost: j * a.insertionCost, matches: col[0].matches, origin: col[0].origin}
		}
		dpm.Set(0, j, col[0].cost)

		qj := qTrans[j-1]
		for i := 1; i <= last; i++ {
			equal := mode.charsMatch(a.referenceTrans[i-1], qj)
			var cur entry
			if equal {
				cur = entry{cost: diag.cost, matches: diag.matches + 1, origin: diag.origin}
			} else {
				mmCost := diag.cost + 1
				delCost := col[i].cost + a.deletionCost
				insCost := col[i-1].cost + a.insertionCost
				switch {
				case mmCost <= delCost && mmCost <= insCost:
					cur = entry{cost: mmCost, matches: diag.matches, origin: diag.origin}
				case insCost <= delCost:
					cur = entry{cost: insCost, matches: col[i-1].matches, origin: col[i-1].origin}
				default:
					cur = entry{cost: delCost, matches: col[i].matches, origin: col[i].origin}
				}
			}
			saved := col[i]
			col[i] = cur
			diag = saved
			dpm.Set(i, j, cur.cost)
		}

		for last >= 0 && col[last].cost > k {
			last--
		}
		if last < m {
			last++
		}

		if last == m && a.stopInQuery {
			length := m + min(col[m].origin, 0)
			if length >= a.minOverlap && float64(col[m].cost) <= float64(length)*a.maxErrorRate {
				updateBest(col[m].cost, col[m].matches, col[m].origin, m, j)
			}
			if col[m].cost == 0 && col[m].matches == m {
				break exact
			}
		}
	}

	if maxN == n {
		firstI := 0
		if !a.stopInReference {
			firstI = m
		}
		for i := firstI; i <= m; i++ {
			length := i + min(col[i].origin, 0)
			if length >= a.minOverlap && float64(col[i].cost) <= float64(length)*a.maxErrorRate {
				updateBest(col[i].cost, col[i].matches, col[i].origin, i, n)
			}
		}
	}

	if bestCost == m+n {
		return Alignment{}, false
	}

	if bestOrigin >= 0 {
		best.RefStart = 0
		best.QueryStart = bestOrigin
	} else {
		best.RefStart = -bestOrigin
		best.QueryStart = 0
	}
	best.Matches = bestMatches
	best.Errors = bestCost
	return best, true
}
