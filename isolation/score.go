// SPDX-License-Identifier: MIT

package isolation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/isoscore/d0"
	"github.com/katalvlaran/isoscore/dispatch"
	"github.com/katalvlaran/isoscore/kernel"
)

// spikeMass is the similarity mass of one spike, split into the part owed
// to its own unit and the part owed to every other non-noise unit.
type spikeMass struct {
	own     float64
	foreign float64
}

// ScoreChannel computes the isolation score of every classified unit of a
// channel.
//
// Algorithm Outline:
//  1. Validate options, count classified units (≥ 2), validate waveforms.
//  2. Subsample every non-noise unit with stride Speed.
//  3. Phase 1: estimate d0 for every classified unit; freeze into a d0.Table.
//  4. Phase 2: for every classified unit U and every subsampled spike s ∈ U:
//     own   = Σ sim(s, w), w ∈ U, w ≠ s
//     total = own + Σ sim(s, v), v in every other non-noise unit
//     ratio = own / total, with sim built from d0[U].
//  5. score(U) = mean ratio over spikes whose total is non-zero.
//
// Unclassified units receive a fixed 0 slot, yet their waveforms are part
// of every total. Noise units receive a 0 slot and are otherwise ignored.
//
// Errors (fatal, returned before any batch is dispatched unless noted):
//   - ErrOptionViolation   — invalid λ, speed or worker count.
//   - ErrInsufficientUnits — fewer than 2 classified units.
//   - ErrDimensionMismatch — non-noise waveforms of unequal or zero length.
//   - ErrNonFinite         — NaN or ±Inf sample in a non-noise unit.
//   - context errors       — cancellation while batches run.
//
// Local conditions never abort the call; they are reported per unit:
//   - d0.ErrInsufficientSamples, kernel.ErrZeroD0 → StateUndefined.
//   - ErrUndefinedRatio → the spike is excluded (StatePartial), or the unit
//     is StateUndefined when no spike remains.
//
// Complexity: O(N·Nᵤ·D) per unit, N = subsampled waveforms in the channel,
// Nᵤ = subsampled waveforms of the unit, D = waveform length.
func ScoreChannel(units []Unit, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Stage 1 (Validate).
	classes := make([]Class, len(units))
	eligible := 0
	for i := range units {
		classes[i] = units[i].Class()
		if classes[i] == ClassNormal {
			eligible++
		}
	}
	if eligible < 2 {
		return nil, fmt.Errorf("%w, have %d", ErrInsufficientUnits, eligible)
	}
	if err := validateWaveforms(units, classes); err != nil {
		return nil, err
	}

	pool := o.Pool
	if pool == nil {
		pool = dispatch.New(o.Workers)
	}
	log := o.Logger.With("lambda", o.Lambda, "speed", o.Speed, "workers", pool.Workers())

	// Stage 2 (Subsample): noise units keep a nil set.
	sets := make([][][]float64, len(units))
	for i := range units {
		if classes[i] != ClassNoise {
			sets[i] = Subsample(units[i].Waveforms, o.Speed)
		}
	}

	scores := make([]UnitScore, len(units))
	for i := range units {
		scores[i] = UnitScore{Index: i, Label: units[i].Label, Class: classes[i]}
		switch classes[i] {
		case ClassNoise:
			scores[i].State = StateNoise
		case ClassUnclassified:
			scores[i].State = StateUnclassified
		}
	}

	// Stage 3 (Phase 1): every d0 is known before any score sum starts.
	start := time.Now()
	table, err := estimateAll(o, pool, sets, classes, scores)
	if err != nil {
		return nil, err
	}
	log.Debug("d0 phase complete", "estimated", table.Len(), "elapsed", time.Since(start))

	// Stage 4 (Phase 2).
	start = time.Now()
	for u := range units {
		if classes[u] != ClassNormal {
			continue
		}
		if scores[u].State != StateUndefined {
			if err := scoreUnit(o, pool, sets, u, table, &scores[u]); err != nil {
				return nil, err
			}
		}
		log.Debug("unit scored",
			"unit", u,
			"state", scores[u].State.String(),
			"score", scores[u].Score,
			"excluded", scores[u].Excluded)
		o.OnUnitScored(scores[u])
	}
	log.Debug("score phase complete", "elapsed", time.Since(start))

	return &Report{
		Scores:  scores,
		Lambda:  o.Lambda,
		Speed:   o.Speed,
		Workers: pool.Workers(),
		D0:      table,
	}, nil
}

// Subsample keeps every speed-th waveform starting at index 0. speed <= 1
// returns ws unchanged.
func Subsample(ws [][]float64, speed int) [][]float64 {
	if speed <= 1 {
		return ws
	}
	out := make([][]float64, 0, (len(ws)+speed-1)/speed)
	for i := 0; i < len(ws); i += speed {
		out = append(out, ws[i])
	}

	return out
}

// validateWaveforms checks that every non-noise waveform has the same
// non-zero length and only finite samples.
func validateWaveforms(units []Unit, classes []Class) error {
	dim := -1
	for u := range units {
		if classes[u] == ClassNoise {
			continue
		}
		for k, w := range units[u].Waveforms {
			if dim < 0 {
				dim = len(w)
				if dim == 0 {
					return fmt.Errorf("%w: unit %d waveform %d is empty", ErrDimensionMismatch, u, k)
				}
			}
			if len(w) != dim {
				return fmt.Errorf("%w: unit %d waveform %d has %d samples, want %d",
					ErrDimensionMismatch, u, k, len(w), dim)
			}
			for _, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%w: unit %d waveform %d", ErrNonFinite, u, k)
				}
			}
		}
	}

	return nil
}

// estimateAll runs phase 1. Per-unit failures mark the slot undefined;
// anything else (cancellation) aborts.
func estimateAll(o Options, pool *dispatch.Pool, sets [][][]float64, classes []Class, scores []UnitScore) (d0.Table, error) {
	values := make(map[int]float64)
	for u := range sets {
		if classes[u] != ClassNormal {
			continue
		}
		v, err := d0.Estimate(o.Ctx, pool, sets[u])
		switch {
		case errors.Is(err, d0.ErrInsufficientSamples):
			markUndefined(&scores[u], err)
			continue
		case err != nil:
			return d0.Table{}, fmt.Errorf("isolation: d0 of unit %d: %w", u, err)
		}
		values[u] = v
		scores[u].D0 = v
	}

	return d0.NewTable(values), nil
}

// scoreUnit runs phase 2 for unit u and fills *out.
func scoreUnit(o Options, pool *dispatch.Pool, sets [][][]float64, u int, table d0.Table, out *UnitScore) error {
	dist, _ := table.Lookup(u)
	k, err := kernel.New(o.Lambda, dist)
	if err != nil {
		// d0 == 0: every waveform of the unit is identical.
		markUndefined(out, err)
		return nil
	}

	own := sets[u]
	masses, err := dispatch.Map(o.Ctx, pool, len(own), func(s int) (spikeMass, error) {
		var m spikeMass
		x := own[s]
		for j, w := range own {
			if j != s {
				m.own += k.Eval(x, w)
			}
		}
		for v, set := range sets {
			if v == u {
				continue
			}
			for _, w := range set {
				m.foreign += k.Eval(x, w)
			}
		}

		return m, nil
	})
	if err != nil {
		return fmt.Errorf("isolation: scoring unit %d: %w", u, err)
	}

	var sum float64
	defined := 0
	for _, m := range masses {
		total := m.own + m.foreign
		ratio := m.own / total
		if total == 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			continue
		}
		sum += ratio
		defined++
	}

	out.Spikes = len(masses)
	out.Excluded = len(masses) - defined
	switch {
	case defined == 0:
		markUndefined(out, ErrUndefinedRatio)
	case out.Excluded > 0:
		out.State = StatePartial
		out.Score = sum / float64(defined)
		out.Err = fmt.Errorf("%w: %d of %d spikes excluded", ErrUndefinedRatio, out.Excluded, out.Spikes)
	default:
		out.State = StateScored
		out.Score = sum / float64(defined)
	}

	return nil
}

func markUndefined(s *UnitScore, err error) {
	s.State = StateUndefined
	s.Score = math.NaN()
	s.Err = err
}
