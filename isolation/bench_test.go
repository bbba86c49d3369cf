package isolation_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/isoscore/isolation"
	"github.com/katalvlaran/isoscore/synth"
)

// BenchmarkScoreChannel runs a 4-unit, 48-sample channel at several speeds
// to show the quadratic effect of subsampling.
func BenchmarkScoreChannel(b *testing.B) {
	sets, err := synth.Channel(synth.Params{Units: 4, Spikes: 200, Dim: 48, Separation: 3, Spread: 1, Seed: 1})
	if err != nil {
		b.Fatal(err)
	}
	units := make([]isolation.Unit, len(sets))
	for i, set := range sets {
		units[i] = isolation.Unit{Waveforms: set}
	}

	for _, speed := range []int{1, 2, 4} {
		b.Run(fmt.Sprintf("speed=%d", speed), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := isolation.ScoreChannel(units, isolation.WithSpeed(speed)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
