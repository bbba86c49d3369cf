// SPDX-License-Identifier: MIT

// Package kernel scores how close two waveforms are.
//
// 🚀 What is the similarity kernel?
//
//	Given two equal-length sample vectors x and y, a sensitivity λ and a
//	normalisation distance d0, the kernel is
//
//	    sim(x, y) = exp(-‖x − y‖₂ · λ / d0)
//
//	so identical waveforms score exactly 1 and the score decays
//	monotonically towards 0 as the Euclidean distance grows. d0 is the
//	per-unit mean pairwise distance (see package d0); dividing by it makes λ
//	scale-free across units with very different amplitudes.
//
// ✨ Key features:
//   - Euclidean     — checked L2 distance (length + emptiness validation)
//   - Similarity    — checked kernel; d0 == 0 fails with ErrZeroD0 instead of
//     producing NaN or +Inf
//   - Kernel        — pre-validated λ/d0 pair for hot loops (Eval)
//
// ⚙️ Usage:
//
//	k, err := kernel.New(10, d0)
//	if err != nil {
//	  // ErrBadLambda, ErrZeroD0, ErrBadD0
//	}
//	s := k.Eval(x, y)
//
// Performance:
//
//   - Time:   O(D) per evaluation, D = waveform length
//   - Memory: O(1)
package kernel
