// internal/seqio/queries.go
package seqio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Query is one named sequence to locate against a reference, loaded from a
// two-column (id, sequence) tab- or whitespace-separated list file.
type Query struct {
	ID       string
	Sequence string
}

// ReadQueries reads one Query per non-blank, non-comment ("#"-prefixed)
// line of path. Lines with a single field use the field itself as both ID
// and sequence, matching how a bare list of adapter sequences is commonly
// supplied.
func ReadQueries(path string) ([]Query, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: %w", err)
	}
	defer fh.Close()

	var queries []Query
	sc := bufio.NewScanner(fh)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			queries = append(queries, Query{ID: fields[0], Sequence: fields[0]})
		case 2:
			queries = append(queries, Query{ID: fields[0], Sequence: fields[1]})
		default:
			return nil, fmt.Errorf("seqio: %s:%d: expected 1 or 2 fields, got %d", path, lineNo, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seqio: reading %s: %w", path, err)
	}
	return queries, nil
}
