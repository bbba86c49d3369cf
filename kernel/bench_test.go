package kernel_test

import (
	"testing"

	"github.com/katalvlaran/isoscore/kernel"
)

// BenchmarkKernel_Eval measures one similarity evaluation on a 48-sample
// waveform, a typical spike snippet length.
func BenchmarkKernel_Eval(b *testing.B) {
	const dim = 48
	x := make([]float64, dim)
	y := make([]float64, dim)
	for i := 0; i < dim; i++ {
		x[i] = float64(i) * 0.01
		y[i] = float64(dim-i) * 0.01
	}
	k, err := kernel.New(10, 1.5)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = k.Eval(x, y)
	}
}
