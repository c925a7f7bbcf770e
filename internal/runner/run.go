// internal/runner/run.go
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"seqalign-core/align"
	"seqalign/internal/seqio"
	"seqalign/internal/writers"
)

// WriterFactory starts the output-encoding goroutine for values of type T,
// mirroring the teacher's appcore.WriterFactory[T] shape trimmed to what
// this repository's output formats actually need.
type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// VisitorFunc converts one located alignment (or absence) for a query into
// the value the writer should emit, or reports keep=false to drop it.
type VisitorFunc[T any] func(query seqio.Query, aln align.Alignment, found bool) (keep bool, out T)

// Options configures one Run: the reference to search, the per-alignment
// tunables, and how many worker goroutines to run concurrently.
type Options struct {
	Reference string
	Config    align.Config
	Threads   int
}

// Run builds one align.Aligner per worker goroutine (an Aligner is not safe
// for concurrent use), fans queries out across them, and streams results through
// wf. It mirrors the teacher's appcore.Run[T]: a buffered stdout writer, a
// worker pool reading from a shared channel, and the same broken-pipe /
// cancellation exit-code conventions.
func Run[T any](parent context.Context, stdout, stderr io.Writer, o Options, queries []seqio.Query, visit VisitorFunc[T], wf WriterFactory[T]) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	if thr > len(queries) && len(queries) > 0 {
		thr = len(queries)
	}
	if thr < 1 {
		thr = 1
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jobs := make(chan seqio.Query)
	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	for w := 0; w < thr; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			aligner, err := align.New(o.Reference, o.Config)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				mu.Unlock()
				return
			}
			for q := range jobs {
				aln, found := aligner.Locate(q.Sequence)
				keep, out := visit(q, aln, found)
				if !keep {
					continue
				}
				select {
				case inCh <- out:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

feed:
	for _, q := range queries {
		select {
		case jobs <- q:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if firstErr != nil {
		fmt.Fprintln(stderr, firstErr)
		return 3
	}
	if ctx.Err() != nil && errors.Is(ctx.Err(), context.Canceled) {
		return 130
	}
	return 0
}
