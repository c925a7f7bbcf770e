// core/align/where.go
package align

// BoundaryFlags names the four independent semi-global boundary flags
// accepted by New/Config. Constructing one of these by hand is always an
// option; the named presets below just document the combinations that come
// up most often (mirroring the adapter-placement vocabulary of the system
// this aligner was distilled for, without pulling in any adapter-trimming
// behavior).
type BoundaryFlags struct {
	StartInReference bool
	StartInQuery     bool
	StopInReference  bool
	StopInQuery      bool
}

// AnywhereFlags allows free skipping of both prefixes and both suffixes —
// the standard semi-global search: find the query anywhere inside the
// reference, or the reference anywhere inside the query.
func AnywhereFlags() BoundaryFlags {
	return BoundaryFlags{true, true, true, true}
}

// PrefixFlags anchors the match at the start of both strings and only
// allows the query to run past the reference's end — the reference must be
// fully consumed (StopInReference false), used when the reference is a
// leading adapter expected to be entirely contained in the query.
func PrefixFlags() BoundaryFlags {
	return BoundaryFlags{false, false, false, true}
}

// SuffixFlags anchors the match at the end of both strings, the mirror
// image of PrefixFlags: the reference must be fully consumed from its
// start (StartInReference false) while the query may run past its front.
func SuffixFlags() BoundaryFlags {
	return BoundaryFlags{false, true, false, false}
}

// FrontFlags allows the match to start anywhere in either string but
// requires the reference to be fully consumed by its end — appropriate
// when the query is expected to occur at the front of the reference with
// an arbitrary leader on either side.
func FrontFlags() BoundaryFlags {
	return BoundaryFlags{true, true, false, true}
}

// BackFlags is the mirror image of FrontFlags: the match must start at the
// reference's beginning (StartInReference false), may start anywhere in the
// query, and may stop anywhere in either string.
func BackFlags() BoundaryFlags {
	return BoundaryFlags{false, true, true, true}
}

// FrontNotInternalFlags requires the match to start at the query's
// beginning and to reach the reference's end (no internal occurrences),
// while a reference prefix may be skipped and the match may stop anywhere
// in the query.
func FrontNotInternalFlags() BoundaryFlags {
	return BoundaryFlags{true, false, false, true}
}

// BackNotInternalFlags requires the match to start at the reference's
// beginning and to stop at the query's end (no internal occurrences), while
// allowing it to start anywhere in the query and stop anywhere in the
// reference.
func BackNotInternalFlags() BoundaryFlags {
	return BoundaryFlags{false, true, true, false}
}
