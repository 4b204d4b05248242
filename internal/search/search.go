// Package search evaluates an indexed candidate space across a pool of
// workers and stops as soon as one candidate passes.
package search

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const defaultChunkSize = 64

// Options tunes a search. The zero value uses one worker per CPU.
type Options struct {
	Workers   int
	ChunkSize uint64
	// OnProgress is called from worker goroutines with the number of
	// candidates just tested. It must be safe for concurrent use.
	OnProgress func(n uint64)
}

// Result describes the outcome of one search. Tested counts candidates
// actually handed to the test function, which may be less than the space
// size when a hit cancels the remaining work.
type Result struct {
	Found     bool
	Index     uint64
	Candidate string
	Tested    uint64
}

type span struct {
	lo, hi uint64
}

// Run tests candidate(i) for every i in [0, size) until test returns true.
// Which hit wins is unspecified if several candidates pass. Run returns the
// context's error if ctx is cancelled before a hit or exhaustion.
func Run(ctx context.Context, size uint64, candidate func(uint64) string, test func(string) bool, opts Options) (Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	chunk := opts.ChunkSize
	if chunk == 0 {
		chunk = defaultChunkSize
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var found atomic.Bool
	var tested atomic.Uint64
	tasks := make(chan span, workers*4)
	resultCh := make(chan Result, 1)

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer close(tasks)
		for lo := uint64(0); lo < size; {
			hi := lo + chunk
			if hi > size || hi < lo {
				hi = size
			}
			select {
			case tasks <- span{lo, hi}:
			case <-gctx.Done():
				return nil
			}
			lo = hi
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for t := range tasks {
				var n uint64
				for i := t.lo; i < t.hi; i++ {
					if found.Load() {
						break
					}
					pw := candidate(i)
					n++
					if !test(pw) {
						continue
					}
					if found.CompareAndSwap(false, true) {
						resultCh <- Result{Found: true, Index: i, Candidate: pw}
						cancel()
					}
					break
				}
				tested.Add(n)
				if opts.OnProgress != nil && n > 0 {
					opts.OnProgress(n)
				}
				if found.Load() || gctx.Err() != nil {
					return nil
				}
			}
			return nil
		})
	}

	_ = g.Wait()
	close(resultCh)

	if res, ok := <-resultCh; ok {
		res.Tested = tested.Load()
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{Tested: tested.Load()}, err
	}
	return Result{Tested: tested.Load()}, nil
}

// Words tests every word of a list.
func Words(ctx context.Context, words []string, test func(string) bool, opts Options) (Result, error) {
	return Run(ctx, uint64(len(words)), func(i uint64) string { return words[i] }, test, opts)
}
