package fractal

import "errors"

// Errors:
//   - ErrNilField       — if the base field function is nil.
//   - ErrBadOctaves     — if Options.Octaves < 1.
//   - ErrBadLacunarity  — if Options.Lacunarity ≤ 1.
//   - ErrBadGain        — if Options.Gain is outside (0, 1).
//   - ErrBadFrequency   — if Options.Frequency ≤ 0.
var (
	// ErrNilField indicates no base field function was supplied.
	ErrNilField = errors.New("fractal: base field function must not be nil")

	// ErrBadOctaves indicates a non-positive octave count.
	ErrBadOctaves = errors.New("fractal: Octaves must be at least 1")

	// ErrBadLacunarity indicates a lacunarity that does not increase frequency.
	ErrBadLacunarity = errors.New("fractal: Lacunarity must be greater than 1")

	// ErrBadGain indicates a gain outside the decaying range (0, 1).
	ErrBadGain = errors.New("fractal: Gain must be in (0, 1)")

	// ErrBadFrequency indicates a non-positive base frequency.
	ErrBadFrequency = errors.New("fractal: Frequency must be positive")
)

func validate(opts Options) error {
	if opts.Octaves < 1 {
		return ErrBadOctaves
	}
	if opts.Lacunarity <= 1 {
		return ErrBadLacunarity
	}
	if opts.Gain <= 0 || opts.Gain >= 1 {
		return ErrBadGain
	}
	if opts.Frequency <= 0 {
		return ErrBadFrequency
	}

	return nil
}

// Sum2 layers opts.Octaves evaluations of f at (x, y) into an fBm value.
//
// Each octave scales the coordinates by Lacunarity and the contribution
// by Gain. With Normalize set, the sum is divided by the total amplitude
// so the result stays within f's own output range.
func Sum2(f Func2, x, y float64, opts Options) (float64, error) {
	if f == nil {
		return 0, ErrNilField
	}
	if err := validate(opts); err != nil {
		return 0, err
	}

	freq := opts.Frequency
	amp := 1.0
	var sum, totalAmp float64
	for o := 0; o < opts.Octaves; o++ {
		sum += amp * f(x*freq, y*freq)
		totalAmp += amp
		freq *= opts.Lacunarity
		amp *= opts.Gain
	}
	if opts.Normalize {
		sum /= totalAmp
	}

	return sum, nil
}

// Sum3 is the 3D counterpart of Sum2.
func Sum3(f Func3, x, y, z float64, opts Options) (float64, error) {
	if f == nil {
		return 0, ErrNilField
	}
	if err := validate(opts); err != nil {
		return 0, err
	}

	freq := opts.Frequency
	amp := 1.0
	var sum, totalAmp float64
	for o := 0; o < opts.Octaves; o++ {
		sum += amp * f(x*freq, y*freq, z*freq)
		totalAmp += amp
		freq *= opts.Lacunarity
		amp *= opts.Gain
	}
	if opts.Normalize {
		sum /= totalAmp
	}

	return sum, nil
}

// Sum4 is the 4D counterpart of Sum2.
func Sum4(f Func4, x, y, z, w float64, opts Options) (float64, error) {
	if f == nil {
		return 0, ErrNilField
	}
	if err := validate(opts); err != nil {
		return 0, err
	}

	freq := opts.Frequency
	amp := 1.0
	var sum, totalAmp float64
	for o := 0; o < opts.Octaves; o++ {
		sum += amp * f(x*freq, y*freq, z*freq, w*freq)
		totalAmp += amp
		freq *= opts.Lacunarity
		amp *= opts.Gain
	}
	if opts.Normalize {
		sum /= totalAmp
	}

	return sum, nil
}
