// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"seqalign/internal/result"
)

// WriteText prints one tab-separated line per alignment.
func WriteText(w io.Writer, list []result.Hit) error {
	for _, h := range list {
		_, err := fmt.Fprintf(w,
			"%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			h.ReferenceID, h.QueryID,
			h.Alignment.RefStart, h.Alignment.RefStop,
			h.Alignment.QueryStart, h.Alignment.QueryStop,
			h.Alignment.Matches, h.Alignment.Errors,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
