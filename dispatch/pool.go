// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrNilTask is returned when Map is called without a task function.
var ErrNilTask = errors.New("dispatch: task is nil")

// Pool bounds the number of tasks that run at once.
type Pool struct {
	workers int
}

// New returns a Pool running at most workers tasks concurrently.
// workers <= 0 selects the available hardware parallelism; larger values
// are capped at min(GOMAXPROCS, NumCPU).
func New(workers int) *Pool {
	limit := hardwareLimit()
	if workers <= 0 || workers > limit {
		workers = limit
	}

	return &Pool{workers: workers}
}

// Workers reports the concurrency bound.
func (p *Pool) Workers() int {
	if p == nil {
		return hardwareLimit()
	}

	return p.workers
}

func hardwareLimit() int {
	n := runtime.GOMAXPROCS(0)
	if c := runtime.NumCPU(); c < n {
		n = c
	}
	if n < 1 {
		n = 1
	}

	return n
}

// Map runs task(0) … task(n-1) on p and returns their results in index
// order once all of them have completed.
//
// Behavior:
//   - n <= 0 returns an empty, non-nil slice.
//   - A nil p uses New(0).
//   - The first non-nil task error cancels the remaining tasks and is
//     returned; ctx cancellation returns ctx.Err(). In both cases the
//     result slice is nil.
//
// Tasks must not retain or mutate shared state; they receive only their
// index.
func Map[T any](ctx context.Context, p *Pool, n int, task func(i int) (T, error)) ([]T, error) {
	if task == nil {
		return nil, ErrNilTask
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []T{}, nil
	}
	if p == nil {
		p = New(0)
	}

	out := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i := 0; i < n; i++ {
		// Stop submitting once the batch is doomed; Go blocks while the
		// limit is reached, so this check runs at most once per free slot.
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := task(i)
			if err != nil {
				return err
			}
			out[i] = v // each index is written by exactly one goroutine

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Prefer the caller's cancellation cause over the derived context's.
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}

		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
