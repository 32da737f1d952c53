// Package opensimplex_test — benchmarks for single-point evaluation.
//
// Policy:
//   - Fixed seed, pre-built generator; measure only the evaluator core.
//   - Coordinates stride across cells so all decomposition regions are hit.
package opensimplex_test

import (
	"testing"

	"github.com/lmbarros/simplectic/opensimplex"
)

var benchSink float64

func BenchmarkEval2(b *testing.B) {
	g := opensimplex.New(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = g.Eval2(float64(i)*0.017, float64(i)*0.013)
	}
}

func BenchmarkEval3(b *testing.B) {
	g := opensimplex.New(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = g.Eval3(float64(i)*0.017, float64(i)*0.013, float64(i)*0.011)
	}
}

func BenchmarkEval4(b *testing.B) {
	g := opensimplex.New(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = g.Eval4(float64(i)*0.017, float64(i)*0.013, float64(i)*0.011, float64(i)*0.007)
	}
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := opensimplex.New(int64(i))
		benchSink = g.Eval2(0.5, 0.5)
	}
}
