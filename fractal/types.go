// Package fractal defines the field function types and summation options.
package fractal

// Func2 is any 2D scalar field, e.g. opensimplex.Generator.Eval2.
type Func2 func(x, y float64) float64

// Func3 is any 3D scalar field, e.g. opensimplex.Generator.Eval3.
type Func3 func(x, y, z float64) float64

// Func4 is any 4D scalar field, e.g. opensimplex.Generator.Eval4.
type Func4 func(x, y, z, w float64) float64

// Options configures octave summation.
//
// Fields:
//   - Octaves    — number of layers to sum; must be ≥ 1.
//   - Lacunarity — frequency multiplier between octaves; must be > 1.
//     2.0 (each octave twice as fine) is the conventional choice.
//   - Gain       — amplitude multiplier between octaves; must be in (0, 1).
//     0.5 gives the classic 1/f amplitude falloff.
//   - Frequency  — base frequency applied to the first octave.
//   - Normalize  — divide the sum by the total amplitude so the result
//     stays within the base field's output range.
//
// Example:
//
//	opts := fractal.DefaultOptions()
//	opts.Octaves = 6        // more fine detail
//	opts.Frequency = 0.01   // one large feature per ~100 units
//	h, err := fractal.Sum2(gen.Eval2, x, y, opts)
type Options struct {
	Octaves    int
	Lacunarity float64
	Gain       float64
	Frequency  float64
	Normalize  bool
}

// DefaultOptions returns the conventional fBm parameters: 4 octaves,
// lacunarity 2, gain 0.5, unit base frequency, normalized output.
func DefaultOptions() Options {
	return Options{
		Octaves:    4,
		Lacunarity: 2.0,
		Gain:       0.5,
		Frequency:  1.0,
		Normalize:  true,
	}
}
