package opensimplex

import "fmt"

// Eval2 returns the noise value at (x, y), in (-1, 1).
//
// Panics with an error wrapping ErrCoordinateOutOfRange when the
// stretched coordinates fall outside the evaluable lattice range.
func (g *Generator) Eval2(x, y float64) float64 {
	set, err := decompose2(x, y)
	if err != nil {
		panic(fmt.Errorf("%w: Eval2(%v, %v)", err, x, y))
	}

	var value float64
	for i := 0; i < set.n; i++ {
		c := &set.at[i]
		attn := 2 - c.dx*c.dx - c.dy*c.dy
		if attn > 0 {
			attn *= attn
			value += attn * attn * g.extrapolate2(c.xsb, c.ysb, c.dx, c.dy)
		}
	}
	return value / normConstant2D
}

// Eval3 returns the noise value at (x, y, z), in (-1, 1).
//
// Panics with an error wrapping ErrCoordinateOutOfRange when the
// stretched coordinates fall outside the evaluable lattice range.
func (g *Generator) Eval3(x, y, z float64) float64 {
	set, err := decompose3(x, y, z)
	if err != nil {
		panic(fmt.Errorf("%w: Eval3(%v, %v, %v)", err, x, y, z))
	}

	var value float64
	for i := 0; i < set.n; i++ {
		c := &set.at[i]
		attn := 2 - c.dx*c.dx - c.dy*c.dy - c.dz*c.dz
		if attn > 0 {
			attn *= attn
			value += attn * attn * g.extrapolate3(c.xsb, c.ysb, c.zsb, c.dx, c.dy, c.dz)
		}
	}
	return value / normConstant3D
}

// Eval4 returns the noise value at (x, y, z, w), in (-1, 1).
//
// Panics with an error wrapping ErrCoordinateOutOfRange when the
// stretched coordinates fall outside the evaluable lattice range.
func (g *Generator) Eval4(x, y, z, w float64) float64 {
	set, err := decompose4(x, y, z, w)
	if err != nil {
		panic(fmt.Errorf("%w: Eval4(%v, %v, %v, %v)", err, x, y, z, w))
	}

	var value float64
	for i := 0; i < set.n; i++ {
		c := &set.at[i]
		attn := 2 - c.dx*c.dx - c.dy*c.dy - c.dz*c.dz - c.dw*c.dw
		if attn > 0 {
			attn *= attn
			value += attn * attn * g.extrapolate4(c.xsb, c.ysb, c.zsb, c.wsb, c.dx, c.dy, c.dz, c.dw)
		}
	}
	return value / normConstant4D
}
