// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"seqalign-core/align"
)

// AlignmentConfig holds the flags shared by every subcommand that
// constructs an align.Aligner: the error-tolerance, boundary-flag, and
// wildcard knobs. It is registered onto a FlagSet by RegisterAlignmentFlags
// and resolved to an align.Config by Resolve.
type AlignmentConfig struct {
	MaxErrorRate  float64
	MinOverlap    int
	IndelCost     int
	Where         string
	WildcardRef   bool
	WildcardQuery bool
	Debug         bool
}

// RegisterAlignmentFlags binds ac's fields onto fs with the conventional
// flag names and defaults (DefaultConfig's values).
func RegisterAlignmentFlags(fs *flag.FlagSet, ac *AlignmentConfig) {
	fs.Float64Var(&ac.MaxErrorRate, "max-error-rate", 0, "maximum fraction of the aligned length that may be errors")
	fs.IntVar(&ac.MinOverlap, "min-overlap", 1, "minimum aligned length required to report a hit")
	fs.IntVar(&ac.IndelCost, "indel-cost", 1, "cost charged for one insertion or deletion")
	fs.StringVar(&ac.Where, "where", "anywhere",
		"boundary preset: anywhere|prefix|suffix|front|back|front-not-internal|back-not-internal")
	fs.BoolVar(&ac.WildcardRef, "wildcard-ref", false, "interpret reference bytes as IUPAC ambiguity codes")
	fs.BoolVar(&ac.WildcardQuery, "wildcard-query", false, "interpret query bytes as IUPAC ambiguity codes")
	fs.BoolVar(&ac.Debug, "debug", false, "record the DP cost matrix; align prints it to stderr, align-many does not print it")
}

// Resolve turns ac into an align.Config, rejecting an unknown -where preset.
func (ac AlignmentConfig) Resolve() (align.Config, error) {
	flags, err := whereFlags(ac.Where)
	if err != nil {
		return align.Config{}, err
	}
	cfg := align.DefaultConfig()
	cfg.MaxErrorRate = ac.MaxErrorRate
	cfg.MinOverlap = ac.MinOverlap
	cfg.IndelCost = ac.IndelCost
	cfg.StartInReference = flags.StartInReference
	cfg.StartInQuery = flags.StartInQuery
	cfg.StopInReference = flags.StopInReference
	cfg.StopInQuery = flags.StopInQuery
	cfg.WildcardRef = ac.WildcardRef
	cfg.WildcardQuery = ac.WildcardQuery
	cfg.Debug = ac.Debug
	return cfg, nil
}

func whereFlags(name string) (align.BoundaryFlags, error) {
	switch name {
	case "anywhere", "":
		return align.AnywhereFlags(), nil
	case "prefix":
		return align.PrefixFlags(), nil
	case "suffix":
		return align.SuffixFlags(), nil
	case "front":
		return align.FrontFlags(), nil
	case "back":
		return align.BackFlags(), nil
	case "front-not-internal":
		return align.FrontNotInternalFlags(), nil
	case "back-not-internal":
		return align.BackNotInternalFlags(), nil
	default:
		return align.BoundaryFlags{}, fmt.Errorf("cli: unknown -where preset %q", name)
	}
}

// PrintUsage writes the single "usage: prog summary" line to w; callers
// list the flags themselves (via FlagSet.PrintDefaults).
func PrintUsage(w io.Writer, prog, summary string) {
	fmt.Fprintf(w, "usage: %s %s\n", prog, summary)
}
