// SPDX-License-Identifier: MIT

package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrBadParams is returned for non-positive sizes or invalid spreads.
var ErrBadParams = errors.New("synth: invalid generator parameters")

// Cluster draws n waveforms around center with isotropic Gaussian noise of
// standard deviation spread.
func Cluster(rng *rand.Rand, center []float64, spread float64, n int) ([][]float64, error) {
	if rng == nil {
		rng = NewRand(0)
	}
	if len(center) == 0 || n < 0 || spread < 0 || math.IsNaN(spread) || math.IsInf(spread, 0) {
		return nil, fmt.Errorf("%w: dim=%d n=%d spread=%g", ErrBadParams, len(center), n, spread)
	}

	out := make([][]float64, n)
	for i := range out {
		w := make([]float64, len(center))
		for d, c := range center {
			w[d] = c + rng.NormFloat64()*spread
		}
		out[i] = w
	}

	return out, nil
}

// Params describes a synthetic channel: Units clusters of Spikes waveforms,
// each Dim samples long. Unit k is centred at Separation·k on the first
// axis and zero elsewhere, with Gaussian noise of deviation Spread.
type Params struct {
	Units      int
	Spikes     int
	Dim        int
	Separation float64
	Spread     float64
	Seed       int64
}

// Channel generates one waveform set per unit according to params.
// Unit k draws from the stream DeriveSeed(seed, k).
func Channel(params Params) ([][][]float64, error) {
	if params.Units <= 0 || params.Spikes <= 0 || params.Dim <= 0 {
		return nil, fmt.Errorf("%w: units=%d spikes=%d dim=%d", ErrBadParams, params.Units, params.Spikes, params.Dim)
	}
	seed := params.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	units := make([][][]float64, params.Units)
	for k := range units {
		center := make([]float64, params.Dim)
		center[0] = params.Separation * float64(k)
		rng := rand.New(rand.NewSource(DeriveSeed(seed, uint64(k))))
		set, err := Cluster(rng, center, params.Spread, params.Spikes)
		if err != nil {
			return nil, err
		}
		units[k] = set
	}

	return units, nil
}
