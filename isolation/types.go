// SPDX-License-Identifier: MIT

package isolation

import (
	"errors"
	"strings"

	"github.com/katalvlaran/isoscore/d0"
)

// Sentinel errors for channel scoring.
var (
	// ErrInsufficientUnits is returned when fewer than two units are neither
	// noise nor unclassified. No report is produced.
	ErrInsufficientUnits = errors.New("isolation: need at least 2 classified units")

	// ErrDimensionMismatch is returned when the non-noise waveforms of a
	// channel do not share one non-zero length.
	ErrDimensionMismatch = errors.New("isolation: waveform length mismatch")

	// ErrNonFinite is returned when a non-noise waveform holds NaN or ±Inf.
	ErrNonFinite = errors.New("isolation: NaN or Inf sample")

	// ErrUndefinedRatio marks a spike (or a whole unit) whose total
	// similarity mass is zero, so own/total is undefined.
	ErrUndefinedRatio = errors.New("isolation: total similarity mass is zero")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("isolation: invalid option supplied")
)

// Class is the classification of a unit.
type Class int

const (
	// ClassNormal units are scored.
	ClassNormal Class = iota
	// ClassNoise units are ignored by every stage.
	ClassNoise
	// ClassUnclassified units get a zero slot but still contribute their
	// waveforms to every other unit's total similarity mass.
	ClassUnclassified
)

// Tag values with special meaning; every other tag is ClassNormal.
const (
	TagNoise        = "noise"
	TagUnclassified = "unclassified"
)

// ParseClass maps a textual tag to a Class. Matching ignores case and
// surrounding whitespace.
func ParseClass(tag string) Class {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case TagNoise:
		return ClassNoise
	case TagUnclassified:
		return ClassUnclassified
	default:
		return ClassNormal
	}
}

// String returns the canonical tag.
func (c Class) String() string {
	switch c {
	case ClassNoise:
		return TagNoise
	case ClassUnclassified:
		return TagUnclassified
	default:
		return "normal"
	}
}

// Unit is one spike-sorted cluster of a channel.
type Unit struct {
	Label     string
	Tag       string
	Waveforms [][]float64
}

// Class parses u.Tag.
func (u Unit) Class() Class { return ParseClass(u.Tag) }

// State tags the outcome of one output slot.
type State int

const (
	// StateScored means every subsampled spike produced a ratio.
	StateScored State = iota
	// StatePartial means some spikes were excluded (zero total mass); the
	// score averages the remaining ones.
	StatePartial
	// StateUndefined means no score could be computed for the unit; see Err.
	StateUndefined
	// StateUnclassified is the fixed zero slot of an unclassified unit.
	StateUnclassified
	// StateNoise is the fixed zero slot of a noise unit.
	StateNoise
)

// String returns a short lowercase name.
func (s State) String() string {
	switch s {
	case StateScored:
		return "scored"
	case StatePartial:
		return "partial"
	case StateUndefined:
		return "undefined"
	case StateUnclassified:
		return "unclassified"
	case StateNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// UnitScore is the result for one channel position.
type UnitScore struct {
	Index int
	Label string
	Class Class
	State State

	// Score is the mean own/total ratio. It is 0 for sentinel slots and
	// NaN for StateUndefined.
	Score float64

	// D0 is the normalisation distance; 0 when not estimated.
	D0 float64

	// Spikes is the number of subsampled spikes evaluated; Excluded counts
	// those whose ratio was undefined.
	Spikes   int
	Excluded int

	// Err explains StateUndefined and StatePartial.
	Err error
}

// Status summarises a Report.
type Status int

const (
	// StatusComplete means every eligible unit is StateScored.
	StatusComplete Status = iota
	// StatusDegraded means at least one eligible unit is partial or undefined.
	StatusDegraded
)

// String returns a short lowercase name.
func (s Status) String() string {
	if s == StatusComplete {
		return "complete"
	}

	return "degraded"
}

// Report is the outcome of ScoreChannel. Scores is aligned with the input
// unit positions.
type Report struct {
	Scores  []UnitScore
	Lambda  float64
	Speed   int
	Workers int
	D0      d0.Table
}

// Vector returns the score vector: sentinel slots are 0, undefined units NaN.
func (r *Report) Vector() []float64 {
	out := make([]float64, len(r.Scores))
	for i, s := range r.Scores {
		out[i] = s.Score
	}

	return out
}

// Status reports whether any eligible unit was degraded.
func (r *Report) Status() Status {
	for _, s := range r.Scores {
		if s.State == StatePartial || s.State == StateUndefined {
			return StatusDegraded
		}
	}

	return StatusComplete
}

// Unit returns the score at position i.
func (r *Report) Unit(i int) (UnitScore, bool) {
	if i < 0 || i >= len(r.Scores) {
		return UnitScore{}, false
	}

	return r.Scores[i], true
}
