// internal/app/align.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqalign-core/align"
	"seqalign/internal/cli"
	"seqalign/internal/cmdutil"
	"seqalign/internal/output"
	"seqalign/internal/result"
	"seqalign/internal/seqio"
	"seqalign/internal/version"
)

// RunAlign is the entry point for cmd/align: one reference, one query, one
// Alignment tuple printed as text or JSON.
func RunAlign(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("align")
	fs.SetOutput(io.Discard)

	var ac cli.AlignmentConfig
	cli.RegisterAlignmentFlags(fs, &ac)

	ref := fs.String("ref", "", "inline reference sequence")
	refFile := fs.String("ref-file", "", "FASTA file holding the reference (first record)")
	query := fs.String("query", "", "inline query sequence")
	queryFile := fs.String("query-file", "", "FASTA file holding the query (first record)")
	outputFormat := fs.String("output", "text", "output format: text|json")
	showVersion := fs.Bool("version", false, "print the version and exit")

	fs.Usage = func() {
		cli.PrintUsage(stdout, "align", "-ref SEQ|-ref-file PATH -query SEQ|-query-file PATH [flags]")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
	}

	if len(argv) == 0 {
		fs.Usage()
		return 0
	}
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "align version %s\n", version.Version)
		return 0
	}

	refSeq, refID, err := resolveOneSequence(*ref, *refFile, "ref")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	querySeq, queryID, err := resolveOneSequence(*query, *queryFile, "query")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := ac.Resolve()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if cfg.MinOverlap > len(refSeq) {
		cmdutil.Warnf(stderr, false, "min_overlap %d exceeds reference length %d; no alignment can ever satisfy it", cfg.MinOverlap, len(refSeq))
	}

	aligner, err := align.New(refSeq, cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	aln, found := aligner.Locate(querySeq)
	var hits []result.Hit
	if found {
		hits = append(hits, result.Hit{ReferenceID: refID, QueryID: queryID, Alignment: aln})
	}

	if ac.Debug {
		if m := aligner.DPMatrix(); m != nil {
			fmt.Fprint(stderr, m.Render(refSeq, querySeq))
		}
	}

	var werr error
	switch *outputFormat {
	case "json":
		werr = output.WriteJSON(stdout, hits)
	case "text":
		werr = output.WriteText(stdout, hits)
	default:
		fmt.Fprintf(stderr, "align: unknown -output %q, want text or json\n", *outputFormat)
		return 2
	}
	if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}

	if ctx.Err() != nil {
		return 130
	}
	if !found {
		return 1
	}
	return 0
}

// resolveOneSequence reads the first record of file if given, otherwise
// returns inline verbatim under a synthetic ID.
func resolveOneSequence(inline, file, label string) (seq, id string, err error) {
	if file != "" {
		recs, err := seqio.ReadFasta(file)
		if err != nil {
			return "", "", err
		}
		if len(recs) == 0 {
			return "", "", fmt.Errorf("align: %s-file %s contains no records", label, file)
		}
		return recs[0].Seq, recs[0].ID, nil
	}
	if inline == "" {
		return "", "", fmt.Errorf("align: one of -%s or -%s-file is required", label, label)
	}
	return inline, label, nil
}
