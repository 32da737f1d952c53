// Package fractal_test — benchmarks for octave summation over the
// gradient-noise field.
//
// Policy:
//   - Fixed seed, options built outside the timer.
//   - Coordinates stride so octave evaluations cross cell boundaries.
package fractal_test

import (
	"testing"

	"github.com/lmbarros/simplectic/fractal"
	"github.com/lmbarros/simplectic/opensimplex"
)

var benchSink float64

func BenchmarkSum2_4Octaves(b *testing.B) {
	gen := opensimplex.New(42)
	opts := fractal.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := fractal.Sum2(gen.Eval2, float64(i)*0.017, float64(i)*0.013, opts)
		benchSink = v
	}
}

func BenchmarkSum3_8Octaves(b *testing.B) {
	gen := opensimplex.New(42)
	opts := fractal.DefaultOptions()
	opts.Octaves = 8
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := fractal.Sum3(gen.Eval3, float64(i)*0.017, float64(i)*0.013, float64(i)*0.011, opts)
		benchSink = v
	}
}
