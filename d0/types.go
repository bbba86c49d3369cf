// SPDX-License-Identifier: MIT

package d0

import (
	"errors"
	"sort"
)

// Sentinel errors for d0 estimation.
var (
	// ErrInsufficientSamples indicates fewer than two waveforms; no pairs exist.
	ErrInsufficientSamples = errors.New("d0: need at least 2 waveforms")

	// ErrDimensionMismatch indicates waveforms of different or zero length.
	ErrDimensionMismatch = errors.New("d0: waveform length mismatch")
)

// Table maps unit index → d0 for one scoring run. It is built once with
// NewTable and has no mutators; the zero value is an empty table.
type Table struct {
	values map[int]float64
}

// NewTable copies values into a new Table.
func NewTable(values map[int]float64) Table {
	cp := make(map[int]float64, len(values))
	for k, v := range values {
		cp[k] = v
	}

	return Table{values: cp}
}

// Lookup returns the d0 of unit i and whether it was estimated.
func (t Table) Lookup(i int) (float64, bool) {
	v, ok := t.values[i]

	return v, ok
}

// Len reports the number of units with an estimate.
func (t Table) Len() int { return len(t.values) }

// Indices returns the unit indices in ascending order.
func (t Table) Indices() []int {
	out := make([]int, 0, len(t.values))
	for k := range t.values {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
