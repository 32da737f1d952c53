package opensimplex

import "math"

// Lattice decomposition, 2D.
//
// decompose2 maps a sample point onto the 2D simplectic honeycomb (a
// tiling by triangles) and reports every lattice vertex whose falloff
// kernel may reach the sample, paired with the sample's displacement
// from that vertex in input space. The caller attenuates and sums; the
// branch logic here only answers "which lattice points matter".

// maxContrib2 bounds the 2D contribution count: the 3 corners of the
// containing triangle plus 1 extra vertex from the adjoining triangle.
const maxContrib2 = 4

// contribution2 is one lattice vertex (simplex-grid integer
// coordinates) with the sample's offset from it (input space).
type contribution2 struct {
	xsb, ysb int32
	dx, dy   float64
}

// contribSet2 is a fixed-capacity collection of 2D contributions.
type contribSet2 struct {
	at [maxContrib2]contribution2
	n  int
}

func (s *contribSet2) add(xsb, ysb int32, dx, dy float64) {
	s.at[s.n] = contribution2{xsb: xsb, ysb: ysb, dx: dx, dy: dy}
	s.n++
}

// decompose2 returns the contributing lattice vertices for (x, y), in
// the fixed order the evaluator sums them. It fails only when a
// stretched coordinate floors outside the signed 32-bit range.
func decompose2(x, y float64) (contribSet2, error) {
	var set contribSet2

	// Into simplex-grid space.
	stretchOffset := (x + y) * stretchConstant2D
	xs := x + stretchOffset
	ys := y + stretchOffset

	// Grid cell origin (rhombus super-cell).
	xsf := math.Floor(xs)
	ysf := math.Floor(ys)
	if !inLatticeRange(xsf) || !inLatticeRange(ysf) {
		return set, ErrCoordinateOutOfRange
	}
	xsb := int32(xsf)
	ysb := int32(ysf)

	// Cell origin back in input space.
	squishOffset := float64(xsb+ysb) * squishConstant2D
	xb := float64(xsb) + squishOffset
	yb := float64(ysb) + squishOffset

	// Position within the cell, grid space; the sum picks the triangle.
	xins := xs - float64(xsb)
	yins := ys - float64(ysb)
	inSum := xins + yins

	// Displacement from the cell origin, input space.
	dx0 := x - xb
	dy0 := y - yb

	// Vertices (1,0) and (0,1) belong to both triangles of the cell.
	set.add(xsb+1, ysb+0, dx0-1-squishConstant2D, dy0-0-squishConstant2D)
	set.add(xsb+0, ysb+1, dx0-0-squishConstant2D, dy0-1-squishConstant2D)

	var dxExt, dyExt float64
	var xsvExt, ysvExt int32

	if inSum <= 1 {
		// Inside the triangle at (0,0).
		zins := 1 - inSum
		if zins > xins || zins > yins {
			// (0,0) is one of the two closest vertices; the extra vertex
			// sits across the nearer of the two far edges.
			if xins > yins {
				xsvExt = xsb + 1
				ysvExt = ysb - 1
				dxExt = dx0 - 1
				dyExt = dy0 + 1
			} else {
				xsvExt = xsb - 1
				ysvExt = ysb + 1
				dxExt = dx0 + 1
				dyExt = dy0 - 1
			}
		} else {
			// (1,0) and (0,1) are the two closest; the extra vertex is (1,1).
			xsvExt = xsb + 1
			ysvExt = ysb + 1
			dxExt = dx0 - 1 - 2*squishConstant2D
			dyExt = dy0 - 1 - 2*squishConstant2D
		}
	} else {
		// Inside the triangle at (1,1).
		zins := 2 - inSum
		if zins < xins || zins < yins {
			// (1,1) is one of the two closest vertices.
			if xins > yins {
				xsvExt = xsb + 2
				ysvExt = ysb + 0
				dxExt = dx0 - 2 - 2*squishConstant2D
				dyExt = dy0 + 0 - 2*squishConstant2D
			} else {
				xsvExt = xsb + 0
				ysvExt = ysb + 2
				dxExt = dx0 + 0 - 2*squishConstant2D
				dyExt = dy0 - 2 - 2*squishConstant2D
			}
		} else {
			// (1,0) and (0,1) are the two closest; the extra vertex is (0,0).
			dxExt = dx0
			dyExt = dy0
			xsvExt = xsb
			ysvExt = ysb
		}
		// Rebase onto (1,1), the triangle's own near corner.
		xsb += 1
		ysb += 1
		dx0 = dx0 - 1 - 2*squishConstant2D
		dy0 = dy0 - 1 - 2*squishConstant2D
	}

	// Near corner of the containing triangle, then the extra vertex.
	set.add(xsb, ysb, dx0, dy0)
	set.add(xsvExt, ysvExt, dxExt, dyExt)

	return set, nil
}

// inLatticeRange reports whether a floored, stretched coordinate lies
// strictly inside the signed 32-bit range. NaN fails the comparison and
// is rejected with the rest.
func inLatticeRange(f float64) bool {
	return f > math.MinInt32 && f < math.MaxInt32
}
