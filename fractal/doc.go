// Package fractal sums octaves of a base noise field into fractal
// Brownian motion (fBm), the standard way to turn smooth gradient
// noise into natural-looking detail.
//
// 🚀 What is fBm?
//
//	A single noise octave is smooth and featureless at small scales.
//	fBm layers several octaves of the same field, each at a higher
//	frequency and lower amplitude, so large shapes get progressively
//	finer detail. It's widely used for:
//	  • Terrain heightfields and coastlines
//	  • Cloud, smoke, and water textures
//	  • Turbulence-like displacement fields
//
// ✨ Key features:
//   - works with any 2D/3D/4D field via the Func2/Func3/Func4 types
//   - per-call Options: octave count, lacunarity, gain, base frequency
//   - optional normalization to keep output within the base field's range
//   - pure functions: as safe for concurrent use as the field they wrap
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/lmbarros/simplectic/fractal"
//	  "github.com/lmbarros/simplectic/opensimplex"
//	)
//
//	gen := opensimplex.New(1977)
//	opts := fractal.DefaultOptions()
//	opts.Octaves = 6
//
//	h, err := fractal.Sum2(gen.Eval2, 12.3, 45.6, opts)
//
// Performance:
//
//   - Time:   O(Octaves) calls into the base field
//   - Memory: O(1), no allocations
package fractal
