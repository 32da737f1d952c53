package opensimplex

import "errors"

var (
	// ErrCoordinateOutOfRange indicates an Eval call whose stretched,
	// floored coordinate does not fit strictly inside the signed 32-bit
	// integer range. Eval2/Eval3/Eval4 panic with an error wrapping this
	// sentinel; use errors.Is on the recovered value to detect it.
	ErrCoordinateOutOfRange = errors.New("opensimplex: coordinate outside evaluable lattice range")

	// ErrInvalidPermutation indicates a table passed to NewFromPermutation
	// that is not a 256-entry bijection on [0,255].
	ErrInvalidPermutation = errors.New("opensimplex: permutation must be a 256-entry bijection on [0,255]")
)
