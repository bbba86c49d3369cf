package isolation_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isoscore/isolation"
)

// ExampleScoreChannel scores two 2-D clusters that sit far apart next to a
// noise unit. Both classified units are essentially perfectly isolated and
// the noise slot is a fixed zero.
func ExampleScoreChannel() {
	units := []isolation.Unit{
		{Label: "a", Waveforms: [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{Label: "b", Waveforms: [][]float64{{50, 50}, {51, 50}, {50, 51}, {51, 51}}},
		{Label: "junk", Tag: "noise", Waveforms: [][]float64{{25, 25}}},
	}

	rep, err := isolation.ScoreChannel(units, isolation.WithLambda(10))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range rep.Scores {
		fmt.Printf("%s %s %.3f\n", s.Label, s.State, s.Score)
	}
	fmt.Println(rep.Status())
	// Output:
	// a scored 1.000
	// b scored 1.000
	// junk noise 0.000
	// complete
}

// ExampleScoreChannel_notComputable shows the "not computable" outcome.
func ExampleScoreChannel_notComputable() {
	units := []isolation.Unit{
		{Label: "a", Waveforms: [][]float64{{0}, {1}}},
		{Label: "b", Tag: "unclassified", Waveforms: [][]float64{{5}, {6}}},
	}

	_, err := isolation.ScoreChannel(units)
	fmt.Println(errors.Is(err, isolation.ErrInsufficientUnits))
	fmt.Println(err)
	// Output:
	// true
	// isolation: need at least 2 classified units, have 1
}
