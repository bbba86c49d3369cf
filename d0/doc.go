// SPDX-License-Identifier: MIT

// Package d0 estimates the per-unit normalisation distance used by the
// isolation kernel.
//
// 🚀 What is d0?
//
//	For a unit with waveforms w₀ … wₙ₋₁, d0 is the mean Euclidean distance
//	over all n·(n−1)/2 unordered pairs:
//
//	    d0 = Σ_{i<j} ‖wᵢ − wⱼ‖₂ / (n·(n−1)/2)
//
// Algorithm Outline:
//  1. Validate: n ≥ 2, equal non-zero lengths.
//  2. Dispatch one task per row i computing ‖wᵢ − wⱼ‖ for every j > i.
//  3. Barrier: wait for every row.
//  4. Sum all distances in fixed row-major order, divide by the pair count.
//
// Because the reduction order is fixed, the estimate is bitwise identical
// for any worker count. It is invariant (up to floating rounding) under any
// permutation of the input.
//
// Complexity:
//
//	Time   = O(n²·D)
//	Memory = O(n²) for the collected pair distances
//
// Table freezes the estimates of one scoring run into a read-only lookup.
package d0
