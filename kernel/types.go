// SPDX-License-Identifier: MIT

package kernel

import "errors"

// Sentinel errors for kernel evaluation.
var (
	// ErrEmptyInput indicates that one or both waveforms have no samples.
	ErrEmptyInput = errors.New("kernel: waveforms must be non-empty")

	// ErrDimensionMismatch indicates waveforms of different lengths.
	ErrDimensionMismatch = errors.New("kernel: waveform length mismatch")

	// ErrZeroD0 indicates a zero normalisation distance; the kernel is undefined.
	ErrZeroD0 = errors.New("kernel: d0 is zero")

	// ErrBadD0 indicates a negative, NaN or infinite normalisation distance.
	ErrBadD0 = errors.New("kernel: d0 must be finite and positive")

	// ErrBadLambda indicates a non-positive, NaN or infinite λ.
	ErrBadLambda = errors.New("kernel: lambda must be finite and positive")
)

// Kernel is a validated (λ, d0) pair. The zero value is not usable; build
// one with New.
type Kernel struct {
	lambda float64
	d0     float64
	scale  float64 // λ / d0
}

// Lambda returns the sensitivity λ.
func (k Kernel) Lambda() float64 { return k.lambda }

// D0 returns the normalisation distance.
func (k Kernel) D0() float64 { return k.d0 }
