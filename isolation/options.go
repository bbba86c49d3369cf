// SPDX-License-Identifier: MIT

package isolation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/isoscore/dispatch"
)

// Defaults.
const (
	DefaultLambda = 10.0
	DefaultSpeed  = 1
)

// Option configures ScoreChannel via functional arguments. An invalid
// Option is recorded and surfaced as ErrOptionViolation when ScoreChannel
// runs.
type Option func(*Options)

// Options holds the parameters of one scoring run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Lambda is the kernel sensitivity; must be finite and > 0.
	Lambda float64

	// Speed keeps every Speed-th waveform of each unit; must be ≥ 1.
	Speed int

	// Pool runs the per-unit batches. nil builds a pool from Workers.
	Pool *dispatch.Pool

	// Workers bounds the pool when Pool is nil; 0 selects the hardware limit.
	Workers int

	// Logger receives debug records at phase boundaries.
	Logger *slog.Logger

	// OnUnitScored is called once per eligible unit, in index order, after
	// its score is final.
	OnUnitScored func(UnitScore)

	err error
}

// DefaultOptions returns λ = 10, speed = 1, hardware-sized pool,
// background context, a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Lambda:       DefaultLambda,
		Speed:        DefaultSpeed,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnUnitScored: func(UnitScore) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLambda sets the kernel sensitivity.
func WithLambda(lambda float64) Option {
	return func(o *Options) {
		if !(lambda > 0) || math.IsInf(lambda, 0) {
			o.err = fmt.Errorf("%w: lambda must be finite and positive (%g)", ErrOptionViolation, lambda)
			return
		}
		o.Lambda = lambda
	}
}

// WithSpeed sets the subsampling stride.
func WithSpeed(speed int) Option {
	return func(o *Options) {
		if speed < 1 {
			o.err = fmt.Errorf("%w: speed must be >= 1 (%d)", ErrOptionViolation, speed)
			return
		}
		o.Speed = speed
	}
}

// WithWorkers bounds the worker pool. 0 selects the hardware limit.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithPool reuses a caller-owned pool; it takes precedence over WithWorkers.
func WithPool(p *dispatch.Pool) Option {
	return func(o *Options) {
		if p != nil {
			o.Pool = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnUnitScored registers a hook called for every eligible unit.
func WithOnUnitScored(fn func(UnitScore)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnUnitScored = fn
		}
	}
}
