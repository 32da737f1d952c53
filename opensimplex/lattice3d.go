package opensimplex

import "math"

// Lattice decomposition, 3D.
//
// The 3D simplectic honeycomb splits each stretched cube into two
// tetrahedra (the inSum ≤ 1 and inSum ≥ 2 regions) and one octahedron —
// a rectified simplex — in between. Each region contributes its own
// vertices plus two extra vertices chosen from the adjoining regions by
// a closest-point rule, so the kernels tile space without seams.

// maxContrib3 bounds the 3D contribution count: the octahedral region
// touches 6 of the cell's vertices, plus 2 extra vertices.
const maxContrib3 = 8

// contribution3 is one lattice vertex with the sample's offset from it.
type contribution3 struct {
	xsb, ysb, zsb int32
	dx, dy, dz    float64
}

// contribSet3 is a fixed-capacity collection of 3D contributions.
type contribSet3 struct {
	at [maxContrib3]contribution3
	n  int
}

func (s *contribSet3) add(xsb, ysb, zsb int32, dx, dy, dz float64) {
	s.at[s.n] = contribution3{xsb: xsb, ysb: ysb, zsb: zsb, dx: dx, dy: dy, dz: dz}
	s.n++
}

// decompose3 returns the contributing lattice vertices for (x, y, z),
// in the fixed order the evaluator sums them.
//
// Vertex sets are tracked as axis bitmasks (0x01 = x, 0x02 = y,
// 0x04 = z); e.g. 0x05 is the vertex reached by incrementing x and z.
func decompose3(x, y, z float64) (contribSet3, error) {
	var set contribSet3

	// Into simplex-grid space.
	stretchOffset := (x + y + z) * stretchConstant3D
	xs := x + stretchOffset
	ys := y + stretchOffset
	zs := z + stretchOffset

	// Grid cell origin (rhombohedron super-cell).
	xsf := math.Floor(xs)
	ysf := math.Floor(ys)
	zsf := math.Floor(zs)
	if !inLatticeRange(xsf) || !inLatticeRange(ysf) || !inLatticeRange(zsf) {
		return set, ErrCoordinateOutOfRange
	}
	xsb := int32(xsf)
	ysb := int32(ysf)
	zsb := int32(zsf)

	// Cell origin back in input space.
	squishOffset := float64(xsb+ysb+zsb) * squishConstant3D
	xb := float64(xsb) + squishOffset
	yb := float64(ysb) + squishOffset
	zb := float64(zsb) + squishOffset

	// Position within the cell, grid space; the sum picks the region.
	xins := xs - float64(xsb)
	yins := ys - float64(ysb)
	zins := zs - float64(zsb)
	inSum := xins + yins + zins

	// Displacement from the cell origin, input space.
	dx0 := x - xb
	dy0 := y - yb
	dz0 := z - zb

	var dxExt0, dyExt0, dzExt0 float64
	var dxExt1, dyExt1, dzExt1 float64
	var xsvExt0, ysvExt0, zsvExt0 int32
	var xsvExt1, ysvExt1, zsvExt1 int32

	switch {
	case inSum <= 1:
		// Inside the tetrahedron at (0,0,0).

		// Rank which two of (1,0,0), (0,1,0), (0,0,1) are closest.
		aPoint := uint8(0x01)
		bPoint := uint8(0x02)
		aScore := xins
		bScore := yins
		if aScore >= bScore && zins > bScore {
			bScore = zins
			bPoint = 0x04
		} else if aScore < bScore && zins > aScore {
			aScore = zins
			aPoint = 0x04
		}

		// The two extra vertices depend on whether (0,0,0) itself is
		// among the two closest tetrahedral vertices.
		wins := 1 - inSum
		if wins > aScore || wins > bScore {
			// (0,0,0) is one of the closest two; the other is the best of a, b.
			var c uint8
			if bScore > aScore {
				c = bPoint
			} else {
				c = aPoint
			}

			if c&0x01 == 0 {
				xsvExt0 = xsb - 1
				xsvExt1 = xsb
				dxExt0 = dx0 + 1
				dxExt1 = dx0
			} else {
				xsvExt1 = xsb + 1
				xsvExt0 = xsvExt1
				dxExt1 = dx0 - 1
				dxExt0 = dxExt1
			}

			if c&0x02 == 0 {
				ysvExt1 = ysb
				ysvExt0 = ysvExt1
				dyExt1 = dy0
				dyExt0 = dyExt1
				if c&0x01 == 0 {
					ysvExt1 -= 1
					dyExt1 += 1
				} else {
					ysvExt0 -= 1
					dyExt0 += 1
				}
			} else {
				ysvExt1 = ysb + 1
				ysvExt0 = ysvExt1
				dyExt1 = dy0 - 1
				dyExt0 = dyExt1
			}

			if c&0x04 == 0 {
				zsvExt0 = zsb
				zsvExt1 = zsb - 1
				dzExt0 = dz0
				dzExt1 = dz0 + 1
			} else {
				zsvExt1 = zsb + 1
				zsvExt0 = zsvExt1
				dzExt1 = dz0 - 1
				dzExt0 = dzExt1
			}
		} else {
			// (0,0,0) is not among the closest two; the extra vertices
			// follow from the closest pair combined.
			c := aPoint | bPoint

			if c&0x01 == 0 {
				xsvExt0 = xsb
				xsvExt1 = xsb - 1
				dxExt0 = dx0 - 2*squishConstant3D
				dxExt1 = dx0 + 1 - squishConstant3D
			} else {
				xsvExt1 = xsb + 1
				xsvExt0 = xsvExt1
				dxExt0 = dx0 - 1 - 2*squishConstant3D
				dxExt1 = dx0 - 1 - squishConstant3D
			}

			if c&0x02 == 0 {
				ysvExt0 = ysb
				ysvExt1 = ysb - 1
				dyExt0 = dy0 - 2*squishConstant3D
				dyExt1 = dy0 + 1 - squishConstant3D
			} else {
				ysvExt1 = ysb + 1
				ysvExt0 = ysvExt1
				dyExt0 = dy0 - 1 - 2*squishConstant3D
				dyExt1 = dy0 - 1 - squishConstant3D
			}

			if c&0x04 == 0 {
				zsvExt0 = zsb
				zsvExt1 = zsb - 1
				dzExt0 = dz0 - 2*squishConstant3D
				dzExt1 = dz0 + 1 - squishConstant3D
			} else {
				zsvExt1 = zsb + 1
				zsvExt0 = zsvExt1
				dzExt0 = dz0 - 1 - 2*squishConstant3D
				dzExt1 = dz0 - 1 - squishConstant3D
			}
		}

		// Tetrahedron corners: (0,0,0), (1,0,0), (0,1,0), (0,0,1).
		set.add(xsb+0, ysb+0, zsb+0, dx0, dy0, dz0)
		set.add(xsb+1, ysb+0, zsb+0,
			dx0-1-squishConstant3D, dy0-0-squishConstant3D, dz0-0-squishConstant3D)
		set.add(xsb+0, ysb+1, zsb+0,
			dx0-0-squishConstant3D, dy0-1-squishConstant3D, dz0-0-squishConstant3D)
		set.add(xsb+0, ysb+0, zsb+1,
			dx0-0-squishConstant3D, dy0-0-squishConstant3D, dz0-1-squishConstant3D)

	case inSum >= 2:
		// Inside the tetrahedron at (1,1,1).

		// Rank which two of (1,1,0), (1,0,1), (0,1,1) are closest.
		aPoint := uint8(0x06)
		aScore := xins
		bPoint := uint8(0x05)
		bScore := yins
		if aScore <= bScore && zins < bScore {
			bScore = zins
			bPoint = 0x03
		} else if aScore > bScore && zins < aScore {
			aScore = zins
			aPoint = 0x03
		}

		wins := 3 - inSum
		if wins < aScore || wins < bScore {
			// (1,1,1) is one of the closest two; the other is the best of a, b.
			var c uint8
			if bScore < aScore {
				c = bPoint
			} else {
				c = aPoint
			}

			if c&0x01 != 0 {
				xsvExt0 = xsb + 2
				xsvExt1 = xsb + 1
				dxExt0 = dx0 - 2 - 3*squishConstant3D
				dxExt1 = dx0 - 1 - 3*squishConstant3D
			} else {
				xsvExt1 = xsb
				xsvExt0 = xsvExt1
				dxExt1 = dx0 - 3*squishConstant3D
				dxExt0 = dxExt1
			}

			if c&0x02 != 0 {
				ysvExt1 = ysb + 1
				ysvExt0 = ysvExt1
				dyExt1 = dy0 - 1 - 3*squishConstant3D
				dyExt0 = dyExt1
				if c&0x01 != 0 {
					ysvExt1 += 1
					dyExt1 -= 1
				} else {
					ysvExt0 += 1
					dyExt0 -= 1
				}
			} else {
				ysvExt1 = ysb
				ysvExt0 = ysvExt1
				dyExt1 = dy0 - 3*squishConstant3D
				dyExt0 = dyExt1
			}

			if c&0x04 != 0 {
				zsvExt0 = zsb + 1
				zsvExt1 = zsb + 2
				dzExt0 = dz0 - 1 - 3*squishConstant3D
				dzExt1 = dz0 - 2 - 3*squishConstant3D
			} else {
				zsvExt1 = zsb
				zsvExt0 = zsvExt1
				dzExt1 = dz0 - 3*squishConstant3D
				dzExt0 = dzExt1
			}
		} else {
			// (1,1,1) is not among the closest two; the extra vertices
			// follow from the axis shared by the closest pair.
			c := aPoint & bPoint

			if c&0x01 != 0 {
				xsvExt0 = xsb + 1
				xsvExt1 = xsb + 2
				dxExt0 = dx0 - 1 - squishConstant3D
				dxExt1 = dx0 - 2 - 2*squishConstant3D
			} else {
				xsvExt1 = xsb
				xsvExt0 = xsvExt1
				dxExt0 = dx0 - squishConstant3D
				dxExt1 = dx0 - 2*squishConstant3D
			}

			if c&0x02 != 0 {
				ysvExt0 = ysb + 1
				ysvExt1 = ysb + 2
				dyExt0 = dy0 - 1 - squishConstant3D
				dyExt1 = dy0 - 2 - 2*squishConstant3D
			} else {
				ysvExt1 = ysb
				ysvExt0 = ysvExt1
				dyExt0 = dy0 - squishConstant3D
				dyExt1 = dy0 - 2*squishConstant3D
			}

			if c&0x04 != 0 {
				zsvExt0 = zsb + 1
				zsvExt1 = zsb + 2
				dzExt0 = dz0 - 1 - squishConstant3D
				dzExt1 = dz0 - 2 - 2*squishConstant3D
			} else {
				zsvExt1 = zsb
				zsvExt0 = zsvExt1
				dzExt0 = dz0 - squishConstant3D
				dzExt1 = dz0 - 2*squishConstant3D
			}
		}

		// Tetrahedron corners: (1,1,0), (1,0,1), (0,1,1), (1,1,1).
		set.add(xsb+1, ysb+1, zsb+0,
			dx0-1-2*squishConstant3D, dy0-1-2*squishConstant3D, dz0-0-2*squishConstant3D)
		set.add(xsb+1, ysb+0, zsb+1,
			dx0-1-2*squishConstant3D, dy0-0-2*squishConstant3D, dz0-1-2*squishConstant3D)
		set.add(xsb+0, ysb+1, zsb+1,
			dx0-0-2*squishConstant3D, dy0-1-2*squishConstant3D, dz0-1-2*squishConstant3D)
		set.add(xsb+1, ysb+1, zsb+1,
			dx0-1-3*squishConstant3D, dy0-1-3*squishConstant3D, dz0-1-3*squishConstant3D)

	default:
		// Inside the octahedron (rectified 3-simplex) in between.
		var aScore, bScore float64
		var aPoint, bPoint uint8
		var aIsFurtherSide, bIsFurtherSide bool

		// Decide between (1,1,0) and (0,0,1) as one closest vertex.
		p1 := xins + yins
		if p1 > 1 {
			aScore = p1 - 1
			aPoint = 0x03
			aIsFurtherSide = true
		} else {
			aScore = 1 - p1
			aPoint = 0x04
			aIsFurtherSide = false
		}

		// Decide between (1,0,1) and (0,1,0) as the other.
		p2 := xins + zins
		if p2 > 1 {
			bScore = p2 - 1
			bPoint = 0x05
			bIsFurtherSide = true
		} else {
			bScore = 1 - p2
			bPoint = 0x02
			bIsFurtherSide = false
		}

		// The closer of (0,1,1) and (1,0,0) replaces the further of the
		// two picks above, if it beats it.
		p3 := yins + zins
		if p3 > 1 {
			score := p3 - 1
			if aScore <= bScore && aScore < score {
				aScore = score
				aPoint = 0x06
				aIsFurtherSide = true
			} else if aScore > bScore && bScore < score {
				bScore = score
				bPoint = 0x06
				bIsFurtherSide = true
			}
		} else {
			score := 1 - p3
			if aScore <= bScore && aScore < score {
				aScore = score
				aPoint = 0x01
				aIsFurtherSide = false
			} else if aScore > bScore && bScore < score {
				bScore = score
				bPoint = 0x01
				bIsFurtherSide = false
			}
		}

		// Which side each closest vertex lies on fixes the extra pair.
		if aIsFurtherSide == bIsFurtherSide {
			if aIsFurtherSide {
				// Both on the (1,1,1) side: one extra vertex is (1,1,1),
				// the other extends along the shared axis.
				dxExt0 = dx0 - 1 - 3*squishConstant3D
				dyExt0 = dy0 - 1 - 3*squishConstant3D
				dzExt0 = dz0 - 1 - 3*squishConstant3D
				xsvExt0 = xsb + 1
				ysvExt0 = ysb + 1
				zsvExt0 = zsb + 1

				c := aPoint & bPoint
				if c&0x01 != 0 {
					dxExt1 = dx0 - 2 - 2*squishConstant3D
					dyExt1 = dy0 - 2*squishConstant3D
					dzExt1 = dz0 - 2*squishConstant3D
					xsvExt1 = xsb + 2
					ysvExt1 = ysb
					zsvExt1 = zsb
				} else if c&0x02 != 0 {
					dxExt1 = dx0 - 2*squishConstant3D
					dyExt1 = dy0 - 2 - 2*squishConstant3D
					dzExt1 = dz0 - 2*squishConstant3D
					xsvExt1 = xsb
					ysvExt1 = ysb + 2
					zsvExt1 = zsb
				} else {
					dxExt1 = dx0 - 2*squishConstant3D
					dyExt1 = dy0 - 2*squishConstant3D
					dzExt1 = dz0 - 2 - 2*squishConstant3D
					xsvExt1 = xsb
					ysvExt1 = ysb
					zsvExt1 = zsb + 2
				}
			} else {
				// Both on the (0,0,0) side: one extra vertex is (0,0,0),
				// the other reflects across the omitted axis.
				dxExt0 = dx0
				dyExt0 = dy0
				dzExt0 = dz0
				xsvExt0 = xsb
				ysvExt0 = ysb
				zsvExt0 = zsb

				c := aPoint | bPoint
				if c&0x01 == 0 {
					dxExt1 = dx0 + 1 - squishConstant3D
					dyExt1 = dy0 - 1 - squishConstant3D
					dzExt1 = dz0 - 1 - squishConstant3D
					xsvExt1 = xsb - 1
					ysvExt1 = ysb + 1
					zsvExt1 = zsb + 1
				} else if c&0x02 == 0 {
					dxExt1 = dx0 - 1 - squishConstant3D
					dyExt1 = dy0 + 1 - squishConstant3D
					dzExt1 = dz0 - 1 - squishConstant3D
					xsvExt1 = xsb + 1
					ysvExt1 = ysb - 1
					zsvExt1 = zsb + 1
				} else {
					dxExt1 = dx0 - 1 - squishConstant3D
					dyExt1 = dy0 - 1 - squishConstant3D
					dzExt1 = dz0 + 1 - squishConstant3D
					xsvExt1 = xsb + 1
					ysvExt1 = ysb + 1
					zsvExt1 = zsb - 1
				}
			}
		} else {
			// One closest vertex on each side.
			var c1, c2 uint8
			if aIsFurtherSide {
				c1 = aPoint
				c2 = bPoint
			} else {
				c1 = bPoint
				c2 = aPoint
			}

			// One extra vertex is a permutation of (1,1,-1) from the
			// further-side pick.
			if c1&0x01 == 0 {
				dxExt0 = dx0 + 1 - squishConstant3D
				dyExt0 = dy0 - 1 - squishConstant3D
				dzExt0 = dz0 - 1 - squishConstant3D
				xsvExt0 = xsb - 1
				ysvExt0 = ysb + 1
				zsvExt0 = zsb + 1
			} else if c1&0x02 == 0 {
				dxExt0 = dx0 - 1 - squishConstant3D
				dyExt0 = dy0 + 1 - squishConstant3D
				dzExt0 = dz0 - 1 - squishConstant3D
				xsvExt0 = xsb + 1
				ysvExt0 = ysb - 1
				zsvExt0 = zsb + 1
			} else {
				dxExt0 = dx0 - 1 - squishConstant3D
				dyExt0 = dy0 - 1 - squishConstant3D
				dzExt0 = dz0 + 1 - squishConstant3D
				xsvExt0 = xsb + 1
				ysvExt0 = ysb + 1
				zsvExt0 = zsb - 1
			}

			// The other is a permutation of (0,0,2) from the nearer-side pick.
			dxExt1 = dx0 - 2*squishConstant3D
			dyExt1 = dy0 - 2*squishConstant3D
			dzExt1 = dz0 - 2*squishConstant3D
			xsvExt1 = xsb
			ysvExt1 = ysb
			zsvExt1 = zsb
			if c2&0x01 != 0 {
				dxExt1 -= 2
				xsvExt1 += 2
			} else if c2&0x02 != 0 {
				dyExt1 -= 2
				ysvExt1 += 2
			} else {
				dzExt1 -= 2
				zsvExt1 += 2
			}
		}

		// Octahedron corners: all six single- and double-increment vertices.
		set.add(xsb+1, ysb+0, zsb+0,
			dx0-1-squishConstant3D, dy0-0-squishConstant3D, dz0-0-squishConstant3D)
		set.add(xsb+0, ysb+1, zsb+0,
			dx0-0-squishConstant3D, dy0-1-squishConstant3D, dz0-0-squishConstant3D)
		set.add(xsb+0, ysb+0, zsb+1,
			dx0-0-squishConstant3D, dy0-0-squishConstant3D, dz0-1-squishConstant3D)
		set.add(xsb+1, ysb+1, zsb+0,
			dx0-1-2*squishConstant3D, dy0-1-2*squishConstant3D, dz0-0-2*squishConstant3D)
		set.add(xsb+1, ysb+0, zsb+1,
			dx0-1-2*squishConstant3D, dy0-0-2*squishConstant3D, dz0-1-2*squishConstant3D)
		set.add(xsb+0, ysb+1, zsb+1,
			dx0-0-2*squishConstant3D, dy0-1-2*squishConstant3D, dz0-1-2*squishConstant3D)
	}

	set.add(xsvExt0, ysvExt0, zsvExt0, dxExt0, dyExt0, dzExt0)
	set.add(xsvExt1, ysvExt1, zsvExt1, dxExt1, dyExt1, dzExt1)

	return set, nil
}
