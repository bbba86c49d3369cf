package kernel_test

import (
	"fmt"

	"github.com/katalvlaran/isoscore/kernel"
)

// ExampleSimilarity scores two waveforms five units apart with λ=1, d0=5,
// so the result is exp(-1).
func ExampleSimilarity() {
	x := []float64{0, 0}
	y := []float64{3, 4}

	s, err := kernel.Similarity(x, y, 1, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("similarity=%.4f\n", s)
	// Output:
	// similarity=0.3679
}
