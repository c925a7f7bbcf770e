// internal/seqio/fasta.go
package seqio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one FASTA entry: an identifier (the first whitespace-delimited
// token on the header line) and its sequence with all newlines removed.
type Record struct {
	ID  string
	Seq string
}

// ReadFasta reads every record from path, which may be "-" for stdin and
// may be gzip-compressed (detected by a ".gz" suffix). Sequence lines are
// concatenated verbatim; callers that need uppercasing or wildcard
// translation do it themselves via align.Config, not here.
func ReadFasta(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var records []Record
	var id string
	var seq strings.Builder

	flush := func() {
		if id != "" {
			records = append(records, Record{ID: id, Seq: seq.String()})
		}
	}

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("seqio: %s: header line %q has no identifier", path, line)
			}
			id = fields[0]
			seq.Reset()
			continue
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seqio: reading %s: %w", path, err)
	}
	flush()
	return records, nil
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: %w", err)
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, fmt.Errorf("seqio: %s: %w", path, err)
		}
		return gzipReadCloser{gr, fh}, nil
	}
	return fh, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	underlying *os.File
}

func (g gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if cerr := g.underlying.Close(); err == nil {
		err = cerr
	}
	return err
}
