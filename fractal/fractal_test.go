// Package fractal_test validates octave summation arithmetic using
// analytic stand-in fields, plus option validation and noise wiring.
package fractal_test

import (
	"math"
	"testing"

	"github.com/lmbarros/simplectic/fractal"
	"github.com/lmbarros/simplectic/opensimplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSum2_AnalyticField checks the octave arithmetic against a field
// whose fBm sum has a closed form: f(x,y)=1 gives sum Σ gain^o, and
// normalization collapses it back to exactly 1.
func TestSum2_AnalyticField(t *testing.T) {
	one := func(x, y float64) float64 { return 1 }

	opts := fractal.DefaultOptions()
	opts.Normalize = false
	got, err := fractal.Sum2(one, 3, 4, opts)
	require.NoError(t, err)
	// 1 + 0.5 + 0.25 + 0.125
	require.InDelta(t, 1.875, got, 1e-15)

	opts.Normalize = true
	got, err = fractal.Sum2(one, 3, 4, opts)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-15)
}

// TestSum2_LinearField checks frequency scaling: for f(x,y)=x+y each
// octave contributes amp*freq*(x+y), so gain*lacunarity=1 makes every
// octave contribute equally.
func TestSum2_LinearField(t *testing.T) {
	linear := func(x, y float64) float64 { return x + y }

	opts := fractal.Options{
		Octaves:    3,
		Lacunarity: 2.0,
		Gain:       0.5,
		Frequency:  1.0,
		Normalize:  false,
	}
	got, err := fractal.Sum2(linear, 0.25, 0.5, opts)
	require.NoError(t, err)
	// Each octave contributes (0.25+0.5) = 0.75.
	require.InDelta(t, 2.25, got, 1e-15)
}

// TestSum3_Sum4_AnalyticField repeats the constant-field check in the
// higher dimensions.
func TestSum3_Sum4_AnalyticField(t *testing.T) {
	opts := fractal.DefaultOptions()
	opts.Normalize = false

	got3, err := fractal.Sum3(func(x, y, z float64) float64 { return 2 }, 1, 2, 3, opts)
	require.NoError(t, err)
	require.InDelta(t, 3.75, got3, 1e-15)

	got4, err := fractal.Sum4(func(x, y, z, w float64) float64 { return -1 }, 1, 2, 3, 4, opts)
	require.NoError(t, err)
	require.InDelta(t, -1.875, got4, 1e-15)
}

// TestSum_OptionValidation covers every rejected option combination.
func TestSum_OptionValidation(t *testing.T) {
	f := func(x, y float64) float64 { return 0 }

	_, err := fractal.Sum2(nil, 0, 0, fractal.DefaultOptions())
	assert.ErrorIs(t, err, fractal.ErrNilField)

	bad := fractal.DefaultOptions()
	bad.Octaves = 0
	_, err = fractal.Sum2(f, 0, 0, bad)
	assert.ErrorIs(t, err, fractal.ErrBadOctaves)

	bad = fractal.DefaultOptions()
	bad.Lacunarity = 1.0
	_, err = fractal.Sum2(f, 0, 0, bad)
	assert.ErrorIs(t, err, fractal.ErrBadLacunarity)

	bad = fractal.DefaultOptions()
	bad.Gain = 1.0
	_, err = fractal.Sum2(f, 0, 0, bad)
	assert.ErrorIs(t, err, fractal.ErrBadGain)

	bad = fractal.DefaultOptions()
	bad.Gain = 0
	_, err = fractal.Sum2(f, 0, 0, bad)
	assert.ErrorIs(t, err, fractal.ErrBadGain)

	bad = fractal.DefaultOptions()
	bad.Frequency = 0
	_, err = fractal.Sum2(f, 0, 0, bad)
	assert.ErrorIs(t, err, fractal.ErrBadFrequency)
}

// TestSum2_NoiseField wires the summation to the real noise generator
// and checks determinism and the normalized output range.
func TestSum2_NoiseField(t *testing.T) {
	gen := opensimplex.New(1977)
	opts := fractal.DefaultOptions()
	opts.Octaves = 6
	opts.Frequency = 0.05

	for i := 0; i < 40; i++ {
		x := float64(i) * 3.1
		y := float64(i) * -1.7
		a, err := fractal.Sum2(gen.Eval2, x, y, opts)
		require.NoError(t, err)
		b, err := fractal.Sum2(gen.Eval2, x, y, opts)
		require.NoError(t, err)
		require.Equal(t, a, b)
		assert.Less(t, math.Abs(a), 1.0)
	}
}

// TestSingleOctaveMatchesBaseField checks one octave at unit frequency
// reduces to a plain field evaluation.
func TestSingleOctaveMatchesBaseField(t *testing.T) {
	gen := opensimplex.New(5)
	opts := fractal.Options{
		Octaves:    1,
		Lacunarity: 2.0,
		Gain:       0.5,
		Frequency:  1.0,
		Normalize:  true,
	}
	got, err := fractal.Sum3(gen.Eval3, 0.3, 0.6, 0.9, opts)
	require.NoError(t, err)
	require.Equal(t, gen.Eval3(0.3, 0.6, 0.9), got)
}
