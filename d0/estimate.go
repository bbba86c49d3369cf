// SPDX-License-Identifier: MIT

package d0

import (
	"context"
	"fmt"

	"github.com/katalvlaran/isoscore/dispatch"
	"github.com/katalvlaran/isoscore/kernel"
)

// Estimate returns the mean pairwise Euclidean distance of waveforms,
// running the pair distances on pool.
//
// Errors:
//   - ErrInsufficientSamples — len(waveforms) < 2.
//   - ErrDimensionMismatch   — empty waveforms or unequal lengths.
//   - ctx.Err()              — cancellation while the batch runs.
func Estimate(ctx context.Context, pool *dispatch.Pool, waveforms [][]float64) (float64, error) {
	// Stage 1 (Validate).
	n := len(waveforms)
	if n < 2 {
		return 0, fmt.Errorf("%w: have %d", ErrInsufficientSamples, n)
	}
	dim := len(waveforms[0])
	if dim == 0 {
		return 0, fmt.Errorf("%w: waveform 0 is empty", ErrDimensionMismatch)
	}
	for i, w := range waveforms {
		if len(w) != dim {
			return 0, fmt.Errorf("%w: waveform %d has %d samples, want %d", ErrDimensionMismatch, i, len(w), dim)
		}
	}

	// Stage 2 (Dispatch): row i holds the distances to every j > i.
	rows, err := dispatch.Map(ctx, pool, n-1, func(i int) ([]float64, error) {
		row := make([]float64, n-1-i)
		for j := i + 1; j < n; j++ {
			row[j-i-1] = kernel.Distance(waveforms[i], waveforms[j])
		}

		return row, nil
	})
	if err != nil {
		return 0, err
	}

	// Stage 3 (Reduce): full collection is in hand; sum in row-major order.
	var sum float64
	for _, row := range rows {
		for _, d := range row {
			sum += d
		}
	}
	pairs := float64(n) * float64(n-1) / 2

	return sum / pairs, nil
}
