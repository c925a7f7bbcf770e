// core/align/chars.go
package align

/* --------------------------- encoding tables ---------------------------- */

// acgtTable maps A/C/G/T/U (case-insensitive) to a one-hot bit; everything
// else maps to 0. U is folded onto T, matching RNA-as-DNA usage.
var acgtTable [256]byte

// iupacTable maps each IUPAC nucleotide code (case-insensitive) to the
// bitwise union of the acgtTable bits it stands for. Non-IUPAC bytes map
// to 0, which matches nothing under bit-AND comparison.
var iupacTable [256]byte

func init() {
	setBoth := func(c byte, bits byte) {
		acgtTable[c] = bits
		acgtTable[c+('a'-'A')] = bits
	}
	setIUPAC := func(c byte, bits byte) {
		iupacTable[c] = bits
		iupacTable[c+('a'-'A')] = bits
	}

	setBoth('A', 1)
	setBoth('C', 2)
	setBoth('G', 4)
	setBoth('T', 8)
	setBoth('U', 8)

	setIUPAC('A', 1)
	setIUPAC('C', 2)
	setIUPAC('G', 4)
	setIUPAC('T', 8)
	setIUPAC('U', 8) // U treated as T
	setIUPAC('R', 1|4)
	setIUPAC('Y', 2|8)
	setIUPAC('S', 2|4)
	setIUPAC('W', 1|8)
	setIUPAC('K', 4|8)
	setIUPAC('M', 1|2)
	setIUPAC('B', 2|4|8)
	setIUPAC('D', 1|4|8)
	setIUPAC('H', 1|2|8)
	setIUPAC('V', 1|2|4)
	setIUPAC('N', 1|2|4|8)
	// X and any other ASCII letter are left at 0: matches nothing.
}

/* ------------------------------ char modes ------------------------------ */

// charMode picks how reference and query bytes are compared for one Locate
// (or ComparePrefixes) call, per the wildcard flags.
type charMode struct {
	refTable   *[256]byte // nil means "compare raw ASCII bytes"
	queryTable *[256]byte
}

func selectCharMode(wildcardRef, wildcardQuery bool) charMode {
	switch {
	case !wildcardRef && !wildcardQuery:
		return charMode{}
	case wildcardRef && !wildcardQuery:
		return charMode{refTable: &iupacTable, queryTable: &acgtTable}
	case !wildcardRef && wildcardQuery:
		return charMode{refTable: &acgtTable, queryTable: &iupacTable}
	default:
		return charMode{refTable: &iupacTable, queryTable: &iupacTable}
	}
}

func (m charMode) translateRef(b byte) byte {
	if m.refTable == nil {
		return b
	}
	return m.refTable[b]
}

func (m charMode) translateQuery(b byte) byte {
	if m.queryTable == nil {
		return b
	}
	return m.queryTable[b]
}

// bitMode reports whether this mode compares via bit-AND (any wildcard
// flag set) rather than byte equality.
func (m charMode) bitMode() bool { return m.refTable != nil || m.queryTable != nil }

// translateBuf translates src through tbl into a freshly allocated []byte,
// or returns an unmodified copy of src when tbl is nil (raw ASCII mode).
func translateBuf(src []byte, tbl *[256]byte) []byte {
	if tbl == nil {
		return append([]byte(nil), src...)
	}
	out := make([]byte, len(src))
	for i, b := range src {
		out[i] = tbl[b]
	}
	return out
}

// charsMatch reports whether two already-translated bytes match under m.
func (m charMode) charsMatch(refByte, queryByte byte) bool {
	if !m.bitMode() {
		return refByte == queryByte
	}
	return refByte&queryByte != 0
}
