// core/align/prefix.go
package align

// ComparePrefixes is the stateless, indel-free fast path: it compares
// reference and query position-by-position over their shared prefix
// length and counts matches under the same character-comparison mode as
// Locate (selected by the two wildcard flags). It always returns a tuple — there is no
// absence case — shaped identically to Locate's result so callers can
// treat both uniformly.
func ComparePrefixes(reference, query string, wildcardRef, wildcardQuery bool) Alignment {
	mode := selectCharMode(wildcardRef, wildcardQuery)

	length := len(reference)
	if len(query) < length {
		length = len(query)
	}

	matches := 0
	for i := 0; i < length; i++ {
		r := mode.translateRef(reference[i])
		q := mode.translateQuery(query[i])
		if mode.charsMatch(r, q) {
			matches++
		}
	}

	return Alignment{
		RefStart:   0,
		RefStop:    length,
		QueryStart: 0,
		QueryStop:  length,
		Matches:    matches,
		Errors:     length - matches,
	}
}
