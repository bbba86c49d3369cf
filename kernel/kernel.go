// SPDX-License-Identifier: MIT

package kernel

import "math"

// Euclidean returns ‖x − y‖₂.
//
// Errors:
//   - ErrEmptyInput        — len(x) == 0 or len(y) == 0.
//   - ErrDimensionMismatch — len(x) != len(y).
//
// Complexity: O(D).
func Euclidean(x, y []float64) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptyInput
	}
	if len(x) != len(y) {
		return 0, ErrDimensionMismatch
	}

	return Distance(x, y), nil
}

// Distance returns ‖x − y‖₂ without validation. Callers must guarantee
// len(x) == len(y); extra samples in y are ignored.
func Distance(x, y []float64) float64 {
	var sum, d float64
	y = y[:len(x)] // hoist the bounds check out of the loop
	for i := range x {
		d = x[i] - y[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Similarity returns exp(-‖x − y‖₂ · λ / d0).
//
// Contract:
//   - Similarity(x, x, λ, d0) == 1 for every λ > 0, d0 > 0.
//   - Strictly decreasing in ‖x − y‖₂ (until floating underflow to 0).
//
// Errors:
//   - ErrBadLambda, ErrZeroD0, ErrBadD0 — invalid parameters.
//   - ErrEmptyInput, ErrDimensionMismatch — invalid waveforms.
func Similarity(x, y []float64, lambda, d0 float64) (float64, error) {
	k, err := New(lambda, d0)
	if err != nil {
		return 0, err
	}
	dist, err := Euclidean(x, y)
	if err != nil {
		return 0, err
	}

	return k.FromDistance(dist), nil
}

// New validates λ and d0 and returns a reusable Kernel.
func New(lambda, d0 float64) (Kernel, error) {
	if !(lambda > 0) || math.IsInf(lambda, 0) {
		return Kernel{}, ErrBadLambda
	}
	if d0 == 0 {
		return Kernel{}, ErrZeroD0
	}
	if !(d0 > 0) || math.IsInf(d0, 0) {
		return Kernel{}, ErrBadD0
	}

	return Kernel{lambda: lambda, d0: d0, scale: lambda / d0}, nil
}

// Eval returns the similarity of x and y. Both waveforms must have the
// same length; Eval does not validate.
func (k Kernel) Eval(x, y []float64) float64 {
	return k.FromDistance(Distance(x, y))
}

// FromDistance maps a precomputed Euclidean distance to a similarity.
func (k Kernel) FromDistance(dist float64) float64 {
	if dist == 0 {
		return 1
	}

	return math.Exp(-dist * k.scale)
}
