// internal/app/alignmany.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/pkg/profile"

	"seqalign-core/align"
	"seqalign/internal/cli"
	"seqalign/internal/cmdutil"
	"seqalign/internal/output"
	"seqalign/internal/result"
	"seqalign/internal/runner"
	"seqalign/internal/seqio"
	"seqalign/internal/version"
)

// RunAlignMany is the entry point for cmd/align-many: one reference, many
// queries loaded from a file, one Aligner per worker goroutine, results
// streamed through the chosen output format.
func RunAlignMany(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("align-many")
	fs.SetOutput(io.Discard)

	var ac cli.AlignmentConfig
	cli.RegisterAlignmentFlags(fs, &ac)

	ref := fs.String("ref", "", "inline reference sequence")
	refFile := fs.String("ref-file", "", "FASTA file holding the reference (first record)")
	queriesFile := fs.String("queries-file", "", "file of queries, one per line (id<TAB>sequence or a bare sequence)")
	format := fs.String("output", "text", "output format: text|json|jsonl")
	threads := fs.Int("threads", 0, "worker goroutines; 0 selects the number of CPUs")
	cpuprofile := fs.String("cpuprofile", "", "write a CPU profile to this directory on exit")
	memprofile := fs.String("memprofile", "", "write a memory profile to this directory on exit")
	showVersion := fs.Bool("version", false, "print the version and exit")

	fs.Usage = func() {
		cli.PrintUsage(stdout, "align-many", "-ref SEQ|-ref-file PATH -queries-file PATH [flags]")
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
		fmt.Fprintf(stdout, "align-many version %s\n", version.Version)
		return 0
	}

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile)).Stop()
	} else if *memprofile != "" {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*memprofile)).Stop()
	}

	refSeq, refID, err := resolveOneSequence(*ref, *refFile, "ref")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if *queriesFile == "" {
		fmt.Fprintln(stderr, "align-many: -queries-file is required")
		return 2
	}
	queries, err := seqio.ReadQueries(*queriesFile)
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
	wf, err := output.NewHitWriterFactory(*format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	visit := func(q seqio.Query, aln align.Alignment, found bool) (bool, result.Hit) {
		if !found {
			return false, result.Hit{}
		}
		return true, result.Hit{ReferenceID: refID, QueryID: q.ID, Alignment: aln, SourceFile: *queriesFile}
	}

	return runner.Run(ctx, stdout, stderr, runner.Options{
		Reference: refSeq,
		Config:    cfg,
		Threads:   *threads,
	}, queries, visit, wf)
}
