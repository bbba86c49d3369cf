// SPDX-License-Identifier: MIT

// Package synth generates deterministic synthetic spike clusters.
//
// Goals:
//   - Determinism: same seed ⇒ identical waveforms across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources.
//   - Independence: each unit draws from its own derived stream, so adding
//     a unit never perturbs the waveforms of the others.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; derive one per generator.
package synth

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, giving well-separated substreams.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
