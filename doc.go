// Package simplectic is a small, pure-Go toolkit for coherent
// procedural noise on the simplectic honeycomb: OpenSimplex-style
// gradient noise in 2, 3 and 4 dimensions, plus a fractal combinator.
//
// 🚀 What is simplectic?
//
//	A deterministic, allocation-light noise library that brings together:
//		• Seeded generators: one 64-bit seed ⇒ one reproducible noise field
//		• 2D / 3D / 4D evaluation over a simplex lattice (no directional bias)
//		• Quartic falloff blending — continuous, seam-free output
//		• Fractal (octave) summation with lacunarity & gain controls
//
// ✨ Why choose simplectic?
//
//   - Deterministic – same seed and coordinates ⇒ identical values, always
//   - Concurrency-ready – generators are immutable after construction;
//     share one instance across any number of goroutines, no locks
//   - Pure Go – no cgo, no hidden deps
//   - Patent-free – uses the open simplectic-honeycomb lattice, not the
//     encumbered classic simplex algorithm
//
// Everything is organized under two subpackages:
//
//	opensimplex/ — the core generator: seeded permutation table, lattice
//	               decomposition, gradient extrapolation, Eval2/Eval3/Eval4
//	fractal/     — octave summation over any pure noise function
//
// Quick taste:
//
//	g := opensimplex.New(42)
//	h := g.Eval2(x*0.05, y*0.05) // smooth value in roughly [-1, 1]
//
// Dive into each package's doc.go for the full contract, and into the
// example_test.go files for runnable scenarios.
//
//	go get github.com/lmbarros/simplectic
package simplectic
