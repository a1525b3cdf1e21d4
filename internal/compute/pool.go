package compute

import (
	"context"
	"runtime"
	"sync"
)

// Pool runs row functions on a fixed number of workers.
type Pool struct {
	workers int
}

// NewPool returns a pool of n workers; n <= 0 uses one per CPU.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return &Pool{workers: n}
}

func (p *Pool) Workers() int { return p.workers }

// Rows calls fn for every row in [start, end). Each worker owns a
// contiguous chunk. Short ranges run on the calling goroutine. A cancelled
// context stops workers between rows and is reported as the error.
func (p *Pool) Rows(ctx context.Context, start, end int, fn func(row int)) error {
	n := end - start
	if n <= 0 {
		return ctx.Err()
	}

	if n < 4 || p.workers == 1 {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	workers := min(p.workers, n)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := start + w*chunkSize
		hi := min(lo+chunkSize, end)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return
				}
				fn(i)
			}
		}(lo, hi)
	}

	wg.Wait()
	return ctx.Err()
}
