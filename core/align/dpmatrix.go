// core/align/dpmatrix.go
package align

import (
	"fmt"
	"strings"
)

// DPMatrix is a sparse debug observer for the DP engine: a (m+1) x (n+1)
// table of costs, keyed by (reference row, query column). Cells that were
// never computed stay absent. Nothing in the engine depends on it — it
// exists purely for tracing, and carries no cost when debug mode is off.
type DPMatrix struct {
	rows, cols int
	cells      map[[2]int]int
}

func newDPMatrix(rows, cols int) *DPMatrix {
	return &DPMatrix{rows: rows, cols: cols, cells: make(map[[2]int]int, (rows+1)*4)}
}

// Set records the cost computed for cell (i, j). A nil receiver is a no-op,
// so callers never need to guard on debug mode before calling it.
func (d *DPMatrix) Set(i, j, cost int) {
	if d == nil {
		return
	}
	d.cells[[2]int{i, j}] = cost
}

// Get reports the recorded cost at (i, j) and whether it was ever computed.
func (d *DPMatrix) Get(i, j int) (int, bool) {
	if d == nil {
		return 0, false
	}
	v, ok := d.cells[[2]int{i, j}]
	return v, ok
}

// Dims returns the matrix's (rows, cols) = (m+1, n+1).
func (d *DPMatrix) Dims() (int, int) {
	if d == nil {
		return 0, 0
	}
	return d.rows, d.cols
}

// Render draws a human-readable table, rows labeled by reference characters
// and columns by query characters. Absent cells render blank.
func (d *DPMatrix) Render(reference, query string) string {
	if d == nil {
		return ""
	}
	var b strings.Builder

	const cellWidth = 4
	fmt.Fprintf(&b, "%*s", cellWidth+1, "")
	fmt.Fprintf(&b, "%*s", cellWidth, "")
	for j := 1; j < d.cols; j++ {
		c := byte(' ')
		if j-1 < len(query) {
			c = query[j-1]
		}
		fmt.Fprintf(&b, "%*c", cellWidth, c)
	}
	b.WriteByte('\n')

	for i := 0; i < d.rows; i++ {
		label := byte(' ')
		if i > 0 && i-1 < len(reference) {
			label = reference[i-1]
		}
		fmt.Fprintf(&b, "%*c", cellWidth+1, label)
		for j := 0; j < d.cols; j++ {
			if v, ok := d.Get(i, j); ok {
				fmt.Fprintf(&b, "%*d", cellWidth, v)
			} else {
				fmt.Fprintf(&b, "%*s", cellWidth, "")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
