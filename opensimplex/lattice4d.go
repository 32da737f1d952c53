package opensimplex

import "math"

// Lattice decomposition, 4D.
//
// The 4D simplectic honeycomb splits each stretched hypercube into two
// pentachora (4-simplices, the inSum ≤ 1 and inSum ≥ 3 regions) and two
// dispentachora (rectified 4-simplices) in between. The two interior
// bands touch up to 10 cell vertices each and take three extra vertices
// from adjoining regions, again by the closest-point rule.

// maxContrib4 bounds the 4D contribution count: 10 vertices in an
// interior band plus 3 extra vertices.
const maxContrib4 = 13

// contribution4 is one lattice vertex with the sample's offset from it.
type contribution4 struct {
	xsb, ysb, zsb, wsb int32
	dx, dy, dz, dw     float64
}

// contribSet4 is a fixed-capacity collection of 4D contributions.
type contribSet4 struct {
	at [maxContrib4]contribution4
	n  int
}

func (s *contribSet4) add(xsb, ysb, zsb, wsb int32, dx, dy, dz, dw float64) {
	s.at[s.n] = contribution4{
		xsb: xsb, ysb: ysb, zsb: zsb, wsb: wsb,
		dx: dx, dy: dy, dz: dz, dw: dw,
	}
	s.n++
}

// decompose4 returns the contributing lattice vertices for
// (x, y, z, w), in the fixed order the evaluator sums them.
//
// Vertex sets are tracked as axis bitmasks (0x01 = x, 0x02 = y,
// 0x04 = z, 0x08 = w).
func decompose4(x, y, z, w float64) (contribSet4, error) {
	var set contribSet4

	// Into simplex-grid space.
	stretchOffset := (x + y + z + w) * stretchConstant4D
	xs := x + stretchOffset
	ys := y + stretchOffset
	zs := z + stretchOffset
	ws := w + stretchOffset

	// Grid cell origin (rhombo-hypercube super-cell).
	xsf := math.Floor(xs)
	ysf := math.Floor(ys)
	zsf := math.Floor(zs)
	wsf := math.Floor(ws)
	if !inLatticeRange(xsf) || !inLatticeRange(ysf) ||
		!inLatticeRange(zsf) || !inLatticeRange(wsf) {
		return set, ErrCoordinateOutOfRange
	}
	xsb := int32(xsf)
	ysb := int32(ysf)
	zsb := int32(zsf)
	wsb := int32(wsf)

	// Cell origin back in input space.
	squishOffset := float64(xsb+ysb+zsb+wsb) * squishConstant4D
	xb := float64(xsb) + squishOffset
	yb := float64(ysb) + squishOffset
	zb := float64(zsb) + squishOffset
	wb := float64(wsb) + squishOffset

	// Position within the cell, grid space; the sum picks the region.
	xins := xs - float64(xsb)
	yins := ys - float64(ysb)
	zins := zs - float64(zsb)
	wins := ws - float64(wsb)
	inSum := xins + yins + zins + wins

	// Displacement from the cell origin, input space.
	dx0 := x - xb
	dy0 := y - yb
	dz0 := z - zb
	dw0 := w - wb

	var dxExt0, dyExt0, dzExt0, dwExt0 float64
	var dxExt1, dyExt1, dzExt1, dwExt1 float64
	var dxExt2, dyExt2, dzExt2, dwExt2 float64
	var xsvExt0, ysvExt0, zsvExt0, wsvExt0 int32
	var xsvExt1, ysvExt1, zsvExt1, wsvExt1 int32
	var xsvExt2, ysvExt2, zsvExt2, wsvExt2 int32

	switch {
	case inSum <= 1:
		// Inside the pentachoron at (0,0,0,0).

		// Rank which two of the four single-increment vertices are closest.
		aPoint := uint8(0x01)
		aScore := xins
		bPoint := uint8(0x02)
		bScore := yins
		if aScore >= bScore && zins > bScore {
			bScore = zins
			bPoint = 0x04
		} else if aScore < bScore && zins > aScore {
			aScore = zins
			aPoint = 0x04
		}
		if aScore >= bScore && wins > bScore {
			bScore = wins
			bPoint = 0x08
		} else if aScore < bScore && wins > aScore {
			aScore = wins
			aPoint = 0x08
		}

		// The three extra vertices depend on whether (0,0,0,0) itself is
		// among the two closest pentachoron vertices.
		uins := 1 - inSum
		if uins > aScore || uins > bScore {
			// (0,0,0,0) is one of the closest two; the other is the best of a, b.
			var c uint8
			if bScore > aScore {
				c = bPoint
			} else {
				c = aPoint
			}
			if c&0x01 == 0 {
				xsvExt0 = xsb - 1
				xsvExt2 = xsb
				xsvExt1 = xsvExt2
				dxExt0 = dx0 + 1
				dxExt2 = dx0
				dxExt1 = dxExt2
			} else {
				xsvExt2 = xsb + 1
				xsvExt1 = xsvExt2
				xsvExt0 = xsvExt1
				dxExt2 = dx0 - 1
				dxExt1 = dxExt2
				dxExt0 = dxExt1
			}

			if c&0x02 == 0 {
				ysvExt2 = ysb
				ysvExt1 = ysvExt2
				ysvExt0 = ysvExt1
				dyExt2 = dy0
				dyExt1 = dyExt2
				dyExt0 = dyExt1
				if c&0x01 == 0x01 {
					ysvExt0 -= 1
					dyExt0 += 1
				} else {
					ysvExt1 -= 1
					dyExt1 += 1
				}
			} else {
				ysvExt2 = ysb + 1
				ysvExt1 = ysvExt2
				ysvExt0 = ysvExt1
				dyExt2 = dy0 - 1
				dyExt1 = dyExt2
				dyExt0 = dyExt1
			}

			if c&0x04 == 0 {
				zsvExt2 = zsb
				zsvExt1 = zsvExt2
				zsvExt0 = zsvExt1
				dzExt2 = dz0
				dzExt1 = dzExt2
				dzExt0 = dzExt1
				if c&0x03 != 0 {
					if c&0x03 == 0x03 {
						zsvExt0 -= 1
						dzExt0 += 1
					} else {
						zsvExt1 -= 1
						dzExt1 += 1
					}
				} else {
					zsvExt2 -= 1
					dzExt2 += 1
				}
			} else {
				zsvExt2 = zsb + 1
				zsvExt1 = zsvExt2
				zsvExt0 = zsvExt1
				dzExt2 = dz0 - 1
				dzExt1 = dzExt2
				dzExt0 = dzExt1
			}

			if c&0x08 == 0 {
				wsvExt1 = wsb
				wsvExt0 = wsvExt1
				wsvExt2 = wsb - 1
				dwExt1 = dw0
				dwExt0 = dwExt1
				dwExt2 = dw0 + 1
			} else {
				wsvExt2 = wsb + 1
				wsvExt1 = wsvExt2
				wsvExt0 = wsvExt1
				dwExt2 = dw0 - 1
				dwExt1 = dwExt2
				dwExt0 = dwExt1
			}
		} else {
			// (0,0,0,0) is not among the closest two; the extra vertices
			// follow from the closest pair combined.
			c := aPoint | bPoint

			if c&0x01 == 0 {
				xsvExt2 = xsb
				xsvExt0 = xsvExt2
				xsvExt1 = xsb - 1
				dxExt0 = dx0 - 2*squishConstant4D
				dxExt1 = dx0 + 1 - squishConstant4D
				dxExt2 = dx0 - squishConstant4D
			} else {
				xsvExt2 = xsb + 1
				xsvExt1 = xsvExt2
				xsvExt0 = xsvExt1
				dxExt0 = dx0 - 1 - 2*squishConstant4D
				dxExt2 = dx0 - 1 - squishConstant4D
				dxExt1 = dxExt2
			}

			if c&0x02 == 0 {
				ysvExt2 = ysb
				ysvExt1 = ysvExt2
				ysvExt0 = ysvExt1
				dyExt0 = dy0 - 2*squishConstant4D
				dyExt2 = dy0 - squishConstant4D
				dyExt1 = dyExt2
				if c&0x01 == 0x01 {
					ysvExt1 -= 1
					dyExt1 += 1
				} else {
					ysvExt2 -= 1
					dyExt2 += 1
				}
			} else {
				ysvExt2 = ysb + 1
				ysvExt1 = ysvExt2
				ysvExt0 = ysvExt1
				dyExt0 = dy0 - 1 - 2*squishConstant4D
				dyExt2 = dy0 - 1 - squishConstant4D
				dyExt1 = dyExt2
			}

			if c&0x04 == 0 {
				zsvExt2 = zsb
				zsvExt1 = zsvExt2
				zsvExt0 = zsvExt1
				dzExt0 = dz0 - 2*squishConstant4D
				dzExt2 = dz0 - squishConstant4D
				dzExt1 = dzExt2
				if c&0x03 == 0x03 {
					zsvExt1 -= 1
					dzExt1 += 1
				} else {
					zsvExt2 -= 1
					dzExt2 += 1
				}
			} else {
				zsvExt2 = zsb + 1
				zsvExt1 = zsvExt2
				zsvExt0 = zsvExt1
				dzExt0 = dz0 - 1 - 2*squishConstant4D
				dzExt2 = dz0 - 1 - squishConstant4D
				dzExt1 = dzExt2
			}

			if c&0x08 == 0 {
				wsvExt1 = wsb
				wsvExt0 = wsvExt1
				wsvExt2 = wsb - 1
				dwExt0 = dw0 - 2*squishConstant4D
				dwExt1 = dw0 - squishConstant4D
				dwExt2 = dw0 + 1 - squishConstant4D
			} else {
				wsvExt2 = wsb + 1
				wsvExt1 = wsvExt2
				wsvExt0 = wsvExt1
				dwExt0 = dw0 - 1 - 2*squishConstant4D
				dwExt2 = dw0 - 1 - squishConstant4D
				dwExt1 = dwExt2
			}
		}

		// Pentachoron corners: origin plus the four single increments.
		set.add(xsb+0, ysb+0, zsb+0, wsb+0, dx0, dy0, dz0, dw0)
		set.add(xsb+1, ysb+0, zsb+0, wsb+0,
			dx0-1-squishConstant4D, dy0-0-squishConstant4D,
			dz0-0-squishConstant4D, dw0-0-squishConstant4D)
		set.add(xsb+0, ysb+1, zsb+0, wsb+0,
			dx0-0-squishConstant4D, dy0-1-squishConstant4D,
			dz0-0-squishConstant4D, dw0-0-squishConstant4D)
		set.add(xsb+0, ysb+0, zsb+1, wsb+0,
			dx0-0-squishConstant4D, dy0-0-squishConstant4D,
			dz0-1-squishConstant4D, dw0-0-squishConstant4D)
		set.add(xsb+0, ysb+0, zsb+0, wsb+1,
			dx0-0-squishConstant4D, dy0-0-squishConstant4D,
			dz0-0-squishConstant4D, dw0-1-squishConstant4D)

	case inSum >= 3:
		// Inside the pentachoron at (1,1,1,1).

		// Rank which two of the four triple-increment vertices are closest.
		aPoint := uint8(0x0E)
		aScore := xins
		bPoint := uint8(0x0D)
		bScore := yins
		if aScore <= bScore && zins < bScore {
			bScore = zins
			bPoint = 0x0B
		} else if aScore > bScore && zins < aScore {
			aScore = zins
			aPoint = 0x0B
		}
		if aScore <= bScore && wins < bScore {
			bScore = wins
			bPoint = 0x07
		} else if aScore > bScore && wins < aScore {
			aScore = wins
			aPoint = 0x07
		}

		uins := 4 - inSum
		if uins < aScore || uins < bScore {
			// (1,1,1,1) is one of the closest two; the other is the best of a, b.
			var c uint8
			if bScore < aScore {
				c = bPoint
			} else {
				c = aPoint
			}

			if c&0x01 != 0 {
				xsvExt0 = xsb + 2
				xsvExt2 = xsb + 1
				xsvExt1 = xsvExt2
				dxExt0 = dx0 - 2 - 4*squishConstant4D
				dxExt2 = dx0 - 1 - 4*squishConstant4D
				dxExt1 = dxExt2
			} else {
				xsvExt2 = xsb
				xsvExt1 = xsvExt2
				xsvExt0 = xsvExt1
				dxExt2 = dx0 - 4*squishConstant4D
				dxExt1 = dxExt2
				dxExt0 = dxExt1
			}

			if c&0x02 != 0 {
				ysvExt2 = ysb + 1
				ysvExt1 = ysvExt2
				ysvExt0 = ysvExt1
				dyExt2 = dy0 - 1 - 4*squishConstant4D
				dyExt1 = dyExt2
				dyExt0 = dyExt1
				if c&0x01 != 0 {
					ysvExt1 += 1
					dyExt1 -= 1
				} else {
					ysvExt0 += 1
					dyExt0 -= 1
				}
			} else {
				ysvExt2 = ysb
				ysvExt1 = ysvExt2
				ysvExt0 = ysvExt1
				dyExt2 = dy0 - 4*squishConstant4D
				dyExt1 = dyExt2
				dyExt0 = dyExt1
			}

			if c&0x04 != 0 {
				zsvExt2 = zsb + 1
				zsvExt1 = zsvExt2
				zsvExt0 = zsvExt1
				dzExt2 = dz0 - 1 - 4*squishConstant4D
				dzExt1 = dzExt2
				dzExt0 = dzExt1
				if c&0x03 != 0x03 {
					if c&0x03 == 0 {
						zsvExt0 += 1
						dzExt0 -= 1
					} else {
						zsvExt1 += 1
						dzExt1 -= 1
					}
				} else {
					zsvExt2 += 1
					dzExt2 -= 1
				}
			} else {
				zsvExt2 = zsb
				zsvExt1 = zsvExt2
				zsvExt0 = zsvExt1
				dzExt2 = dz0 - 4*squishConstant4D
				dzExt1 = dzExt2
				dzExt0 = dzExt1
			}

			if c&0x08 != 0 {
				wsvExt1 = wsb + 1
				wsvExt0 = wsvExt1
				wsvExt2 = wsb + 2
				dwExt1 = dw0 - 1 - 4*squishConstant4D
				dwExt0 = dwExt1
				dwExt2 = dw0 - 2 - 4*squishConstant4D
			} else {
				wsvExt2 = wsb
				wsvExt1 = wsvExt2
				wsvExt0 = wsvExt1
				dwExt2 = dw0 - 4*squishConstant4D
				dwExt1 = dwExt2
				dwExt0 = dwExt1
			}
		} else {
			// (1,1,1,1) is not among the closest two; the extra vertices
			// follow from the axes shared by the closest pair.
			c := aPoint & bPoint

			if c&0x01 != 0 {
				xsvExt2 = xsb + 1
				xsvExt0 = xsvExt2
				xsvExt1 = xsb + 2
				dxExt0 = dx0 - 1 - 2*squishConstant4D
				dxExt1 = dx0 - 2 - 3*squishConstant4D
				dxExt2 = dx0 - 1 - 3*squishConstant4D
			} else {
				xsvExt2 = xsb
				xsvExt1 = xsvExt2
				xsvExt0 = xsvExt1
				dxExt0 = dx0 - 2*squishConstant4D
				dxExt2 = dx0 - 3*squishConstant4D
				dxExt1 = dxExt2
			}

			if c&0x02 != 0 {
				ysvExt2 = ysb + 1
				ysvExt1 = ysvExt2
				ysvExt0 = ysvExt1
				dyExt0 = dy0 - 1 - 2*squishConstant4D
				dyExt2 = dy0 - 1 - 3*squishConstant4D
				dyExt1 = dyExt2
				if c&0x01 != 0 {
					ysvExt2 += 1
					dyExt2 -= 1
				} else {
					ysvExt1 += 1
					dyExt1 -= 1
				}
			} else {
				ysvExt2 = ysb
				ysvExt1 = ysvExt2
				ysvExt0 = ysvExt1
				dyExt0 = dy0 - 2*squishConstant4D
				dyExt2 = dy0 - 3*squishConstant4D
				dyExt1 = dyExt2
			}

			if c&0x04 != 0 {
				zsvExt2 = zsb + 1
				zsvExt1 = zsvExt2
				zsvExt0 = zsvExt1
				dzExt0 = dz0 - 1 - 2*squishConstant4D
				dzExt2 = dz0 - 1 - 3*squishConstant4D
				dzExt1 = dzExt2
				if c&0x03 != 0 {
					zsvExt2 += 1
					dzExt2 -= 1
				} else {
					zsvExt1 += 1
					dzExt1 -= 1
				}
			} else {
				zsvExt2 = zsb
				zsvExt1 = zsvExt2
				zsvExt0 = zsvExt1
				dzExt0 = dz0 - 2*squishConstant4D
				dzExt2 = dz0 - 3*squishConstant4D
				dzExt1 = dzExt2
			}

			if c&0x08 != 0 {
				wsvExt1 = wsb + 1
				wsvExt0 = wsvExt1
				wsvExt2 = wsb + 2
				dwExt0 = dw0 - 1 - 2*squishConstant4D
				dwExt1 = dw0 - 1 - 3*squishConstant4D
				dwExt2 = dw0 - 2 - 3*squishConstant4D
			} else {
				wsvExt2 = wsb
				wsvExt1 = wsvExt2
				wsvExt0 = wsvExt1
				dwExt0 = dw0 - 2*squishConstant4D
				dwExt2 = dw0 - 3*squishConstant4D
				dwExt1 = dwExt2
			}
		}

		// Pentachoron corners: the four triple increments plus (1,1,1,1).
		set.add(xsb+1, ysb+1, zsb+1, wsb+0,
			dx0-1-3*squishConstant4D, dy0-1-3*squishConstant4D,
			dz0-1-3*squishConstant4D, dw0-3*squishConstant4D)
		set.add(xsb+1, ysb+1, zsb+0, wsb+1,
			dx0-1-3*squishConstant4D, dy0-1-3*squishConstant4D,
			dz0-3*squishConstant4D, dw0-1-3*squishConstant4D)
		set.add(xsb+1, ysb+0, zsb+1, wsb+1,
			dx0-1-3*squishConstant4D, dy0-3*squishConstant4D,
			dz0-1-3*squishConstant4D, dw0-1-3*squishConstant4D)
		set.add(xsb+0, ysb+1, zsb+1, wsb+1,
			dx0-3*squishConstant4D, dy0-1-3*squishConstant4D,
			dz0-1-3*squishConstant4D, dw0-1-3*squishConstant4D)
		set.add(xsb+1, ysb+1, zsb+1, wsb+1,
			dx0-1-4*squishConstant4D, dy0-1-4*squishConstant4D,
			dz0-1-4*squishConstant4D, dw0-1-4*squishConstant4D)

	case inSum <= 2:
		// Inside the first dispentachoron (rectified 4-simplex).
		var aScore, bScore float64
		var aPoint, bPoint uint8
		aIsBiggerSide := true
		bIsBiggerSide := true

		// Decide between (1,1,0,0) and (0,0,1,1).
		if xins+yins > zins+wins {
			aScore = xins + yins
			aPoint = 0x03
		} else {
			aScore = zins + wins
			aPoint = 0x0C
		}

		// Decide between (1,0,1,0) and (0,1,0,1).
		if xins+zins > yins+wins {
			bScore = xins + zins
			bPoint = 0x05
		} else {
			bScore = yins + wins
			bPoint = 0x0A
		}

		// The closer of (1,0,0,1) and (0,1,1,0) replaces the further of
		// a and b, if it beats it.
		if xins+wins > yins+zins {
			score := xins + wins
			if aScore >= bScore && score > bScore {
				bScore = score
				bPoint = 0x09
			} else if aScore < bScore && score > aScore {
				aScore = score
				aPoint = 0x09
			}
		} else {
			score := yins + zins
			if aScore >= bScore && score > bScore {
				bScore = score
				bPoint = 0x06
			} else if aScore < bScore && score > aScore {
				aScore = score
				aPoint = 0x06
			}
		}

		// Each single-increment vertex may in turn displace the further
		// of a and b, flagging that slot as the smaller (simplex) side.
		p1 := 2 - inSum + xins
		if aScore >= bScore && p1 > bScore {
			bScore = p1
			bPoint = 0x01
			bIsBiggerSide = false
		} else if aScore < bScore && p1 > aScore {
			aScore = p1
			aPoint = 0x01
			aIsBiggerSide = false
		}

		p2 := 2 - inSum + yins
		if aScore >= bScore && p2 > bScore {
			bScore = p2
			bPoint = 0x02
			bIsBiggerSide = false
		} else if aScore < bScore && p2 > aScore {
			aScore = p2
			aPoint = 0x02
			aIsBiggerSide = false
		}

		p3 := 2 - inSum + zins
		if aScore >= bScore && p3 > bScore {
			bScore = p3
			bPoint = 0x04
			bIsBiggerSide = false
		} else if aScore < bScore && p3 > aScore {
			aScore = p3
			aPoint = 0x04
			aIsBiggerSide = false
		}

		p4 := 2 - inSum + wins
		if aScore >= bScore && p4 > bScore {
			bScore = p4
			bPoint = 0x08
			bIsBiggerSide = false
		} else if aScore < bScore && p4 > aScore {
			aScore = p4
			aPoint = 0x08
			aIsBiggerSide = false
		}

		// Which side each closest vertex lies on fixes the extra three.
		if aIsBiggerSide == bIsBiggerSide {
			if aIsBiggerSide {
				// Both on the bigger (double-increment) side.
				c1 := aPoint | bPoint
				c2 := aPoint & bPoint
				if c1&0x01 == 0 {
					xsvExt0 = xsb
					xsvExt1 = xsb - 1
					dxExt0 = dx0 - 3*squishConstant4D
					dxExt1 = dx0 + 1 - 2*squishConstant4D
				} else {
					xsvExt1 = xsb + 1
					xsvExt0 = xsvExt1
					dxExt0 = dx0 - 1 - 3*squishConstant4D
					dxExt1 = dx0 - 1 - 2*squishConstant4D
				}

				if c1&0x02 == 0 {
					ysvExt0 = ysb
					ysvExt1 = ysb - 1
					dyExt0 = dy0 - 3*squishConstant4D
					dyExt1 = dy0 + 1 - 2*squishConstant4D
				} else {
					ysvExt1 = ysb + 1
					ysvExt0 = ysvExt1
					dyExt0 = dy0 - 1 - 3*squishConstant4D
					dyExt1 = dy0 - 1 - 2*squishConstant4D
				}

				if c1&0x04 == 0 {
					zsvExt0 = zsb
					zsvExt1 = zsb - 1
					dzExt0 = dz0 - 3*squishConstant4D
					dzExt1 = dz0 + 1 - 2*squishConstant4D
				} else {
					zsvExt1 = zsb + 1
					zsvExt0 = zsvExt1
					dzExt0 = dz0 - 1 - 3*squishConstant4D
					dzExt1 = dz0 - 1 - 2*squishConstant4D
				}

				if c1&0x08 == 0 {
					wsvExt0 = wsb
					wsvExt1 = wsb - 1
					dwExt0 = dw0 - 3*squishConstant4D
					dwExt1 = dw0 + 1 - 2*squishConstant4D
				} else {
					wsvExt1 = wsb + 1
					wsvExt0 = wsvExt1
					dwExt0 = dw0 - 1 - 3*squishConstant4D
					dwExt1 = dw0 - 1 - 2*squishConstant4D
				}

				// The third is a permutation of (0,0,0,2) from the shared axis.
				xsvExt2 = xsb
				ysvExt2 = ysb
				zsvExt2 = zsb
				wsvExt2 = wsb
				dxExt2 = dx0 - 2*squishConstant4D
				dyExt2 = dy0 - 2*squishConstant4D
				dzExt2 = dz0 - 2*squishConstant4D
				dwExt2 = dw0 - 2*squishConstant4D
				if c2&0x01 != 0 {
					xsvExt2 += 2
					dxExt2 -= 2
				} else if c2&0x02 != 0 {
					ysvExt2 += 2
					dyExt2 -= 2
				} else if c2&0x04 != 0 {
					zsvExt2 += 2
					dzExt2 -= 2
				} else {
					wsvExt2 += 2
					dwExt2 -= 2
				}
			} else {
				// Both on the smaller side: one extra vertex is (0,0,0,0),
				// the other two reflect across the omitted axes.
				xsvExt2 = xsb
				ysvExt2 = ysb
				zsvExt2 = zsb
				wsvExt2 = wsb
				dxExt2 = dx0
				dyExt2 = dy0
				dzExt2 = dz0
				dwExt2 = dw0

				c := aPoint | bPoint

				if c&0x01 == 0 {
					xsvExt0 = xsb - 1
					xsvExt1 = xsb
					dxExt0 = dx0 + 1 - squishConstant4D
					dxExt1 = dx0 - squishConstant4D
				} else {
					xsvExt1 = xsb + 1
					xsvExt0 = xsvExt1
					dxExt1 = dx0 - 1 - squishConstant4D
					dxExt0 = dxExt1
				}

				if c&0x02 == 0 {
					ysvExt1 = ysb
					ysvExt0 = ysvExt1
					dyExt1 = dy0 - squishConstant4D
					dyExt0 = dyExt1
					if c&0x01 == 0x01 {
						ysvExt0 -= 1
						dyExt0 += 1
					} else {
						ysvExt1 -= 1
						dyExt1 += 1
					}
				} else {
					ysvExt1 = ysb + 1
					ysvExt0 = ysvExt1
					dyExt1 = dy0 - 1 - squishConstant4D
					dyExt0 = dyExt1
				}

				if c&0x04 == 0 {
					zsvExt1 = zsb
					zsvExt0 = zsvExt1
					dzExt1 = dz0 - squishConstant4D
					dzExt0 = dzExt1
					if c&0x03 == 0x03 {
						zsvExt0 -= 1
						dzExt0 += 1
					} else {
						zsvExt1 -= 1
						dzExt1 += 1
					}
				} else {
					zsvExt1 = zsb + 1
					zsvExt0 = zsvExt1
					dzExt1 = dz0 - 1 - squishConstant4D
					dzExt0 = dzExt1
				}

				if c&0x08 == 0 {
					wsvExt0 = wsb
					wsvExt1 = wsb - 1
					dwExt0 = dw0 - squishConstant4D
					dwExt1 = dw0 + 1 - squishConstant4D
				} else {
					wsvExt1 = wsb + 1
					wsvExt0 = wsvExt1
					dwExt1 = dw0 - 1 - squishConstant4D
					dwExt0 = dwExt1
				}
			}
		} else {
			// One closest vertex on each side.
			var c1, c2 uint8
			if aIsBiggerSide {
				c1 = aPoint
				c2 = bPoint
			} else {
				c1 = bPoint
				c2 = aPoint
			}

			// Two extra vertices come from the bigger-sided point with
			// each zero coordinate replaced by -1.
			if c1&0x01 == 0 {
				xsvExt0 = xsb - 1
				xsvExt1 = xsb
				dxExt0 = dx0 + 1 - squishConstant4D
				dxExt1 = dx0 - squishConstant4D
			} else {
				xsvExt1 = xsb + 1
				xsvExt0 = xsvExt1
				dxExt1 = dx0 - 1 - squishConstant4D
				dxExt0 = dxExt1
			}

			if c1&0x02 == 0 {
				ysvExt1 = ysb
				ysvExt0 = ysvExt1
				dyExt1 = dy0 - squishConstant4D
				dyExt0 = dyExt1
				if c1&0x01 == 0x01 {
					ysvExt0 -= 1
					dyExt0 += 1
				} else {
					ysvExt1 -= 1
					dyExt1 += 1
				}
			} else {
				ysvExt1 = ysb + 1
				ysvExt0 = ysvExt1
				dyExt1 = dy0 - 1 - squishConstant4D
				dyExt0 = dyExt1
			}

			if c1&0x04 == 0 {
				zsvExt1 = zsb
				zsvExt0 = zsvExt1
				dzExt1 = dz0 - squishConstant4D
				dzExt0 = dzExt1
				if c1&0x03 == 0x03 {
					zsvExt0 -= 1
					dzExt0 += 1
				} else {
					zsvExt1 -= 1
					dzExt1 += 1
				}
			} else {
				zsvExt1 = zsb + 1
				zsvExt0 = zsvExt1
				dzExt1 = dz0 - 1 - squishConstant4D
				dzExt0 = dzExt1
			}

			if c1&0x08 == 0 {
				wsvExt0 = wsb
				wsvExt1 = wsb - 1
				dwExt0 = dw0 - squishConstant4D
				dwExt1 = dw0 + 1 - squishConstant4D
			} else {
				wsvExt1 = wsb + 1
				wsvExt0 = wsvExt1
				dwExt1 = dw0 - 1 - squishConstant4D
				dwExt0 = dwExt1
			}

			// The third is a permutation of (0,0,0,2) from the smaller side.
			xsvExt2 = xsb
			ysvExt2 = ysb
			zsvExt2 = zsb
			wsvExt2 = wsb
			dxExt2 = dx0 - 2*squishConstant4D
			dyExt2 = dy0 - 2*squishConstant4D
			dzExt2 = dz0 - 2*squishConstant4D
			dwExt2 = dw0 - 2*squishConstant4D
			if c2&0x01 != 0 {
				xsvExt2 += 2
				dxExt2 -= 2
			} else if c2&0x02 != 0 {
				ysvExt2 += 2
				dyExt2 -= 2
			} else if c2&0x04 != 0 {
				zsvExt2 += 2
				dzExt2 -= 2
			} else {
				wsvExt2 += 2
				dwExt2 -= 2
			}
		}

		// Band vertices: four single increments, six double increments.
		addSingleAndDoubleIncrements4(&set, xsb, ysb, zsb, wsb, dx0, dy0, dz0, dw0)

	default:
		// Inside the second dispentachoron (rectified 4-simplex).
		var aScore, bScore float64
		var aPoint, bPoint uint8
		aIsBiggerSide := true
		bIsBiggerSide := true

		// Decide between (0,0,1,1) and (1,1,0,0).
		if xins+yins < zins+wins {
			aScore = xins + yins
			aPoint = 0x0C
		} else {
			aScore = zins + wins
			aPoint = 0x03
		}

		// Decide between (0,1,0,1) and (1,0,1,0).
		if xins+zins < yins+wins {
			bScore = xins + zins
			bPoint = 0x0A
		} else {
			bScore = yins + wins
			bPoint = 0x05
		}

		// The closer of (0,1,1,0) and (1,0,0,1) replaces the further of
		// a and b, if it beats it.
		if xins+wins < yins+zins {
			score := xins + wins
			if aScore <= bScore && score < bScore {
				bScore = score
				bPoint = 0x06
			} else if aScore > bScore && score < aScore {
				aScore = score
				aPoint = 0x06
			}
		} else {
			score := yins + zins
			if aScore <= bScore && score < bScore {
				bScore = score
				bPoint = 0x09
			} else if aScore > bScore && score < aScore {
				aScore = score
				aPoint = 0x09
			}
		}

		// Each triple-increment vertex may displace the further of a and
		// b, flagging that slot as the smaller (simplex) side.
		p1 := 3 - inSum + xins
		if aScore <= bScore && p1 < bScore {
			bScore = p1
			bPoint = 0x0E
			bIsBiggerSide = false
		} else if aScore > bScore && p1 < aScore {
			aScore = p1
			aPoint = 0x0E
			aIsBiggerSide = false
		}

		p2 := 3 - inSum + yins
		if aScore <= bScore && p2 < bScore {
			bScore = p2
			bPoint = 0x0D
			bIsBiggerSide = false
		} else if aScore > bScore && p2 < aScore {
			aScore = p2
			aPoint = 0x0D
			aIsBiggerSide = false
		}

		p3 := 3 - inSum + zins
		if aScore <= bScore && p3 < bScore {
			bScore = p3
			bPoint = 0x0B
			bIsBiggerSide = false
		} else if aScore > bScore && p3 < aScore {
			aScore = p3
			aPoint = 0x0B
			aIsBiggerSide = false
		}

		p4 := 3 - inSum + wins
		if aScore <= bScore && p4 < bScore {
			bScore = p4
			bPoint = 0x07
			bIsBiggerSide = false
		} else if aScore > bScore && p4 < aScore {
			aScore = p4
			aPoint = 0x07
			aIsBiggerSide = false
		}

		// Which side each closest vertex lies on fixes the extra three.
		if aIsBiggerSide == bIsBiggerSide {
			if aIsBiggerSide {
				// Both on the bigger (double-increment) side.
				c1 := aPoint & bPoint
				c2 := aPoint | bPoint

				// Two extra vertices are permutations of (0,0,0,1) and
				// (0,0,0,2) along the shared axis.
				xsvExt1 = xsb
				xsvExt0 = xsvExt1
				ysvExt1 = ysb
				ysvExt0 = ysvExt1
				zsvExt1 = zsb
				zsvExt0 = zsvExt1
				wsvExt1 = wsb
				wsvExt0 = wsvExt1
				dxExt0 = dx0 - squishConstant4D
				dyExt0 = dy0 - squishConstant4D
				dzExt0 = dz0 - squishConstant4D
				dwExt0 = dw0 - squishConstant4D
				dxExt1 = dx0 - 2*squishConstant4D
				dyExt1 = dy0 - 2*squishConstant4D
				dzExt1 = dz0 - 2*squishConstant4D
				dwExt1 = dw0 - 2*squishConstant4D
				if c1&0x01 != 0 {
					xsvExt0 += 1
					dxExt0 -= 1
					xsvExt1 += 2
					dxExt1 -= 2
				} else if c1&0x02 != 0 {
					ysvExt0 += 1
					dyExt0 -= 1
					ysvExt1 += 2
					dyExt1 -= 2
				} else if c1&0x04 != 0 {
					zsvExt0 += 1
					dzExt0 -= 1
					zsvExt1 += 2
					dzExt1 -= 2
				} else {
					wsvExt0 += 1
					dwExt0 -= 1
					wsvExt1 += 2
					dwExt1 -= 2
				}

				// The third is a permutation of (1,1,1,-1) along the
				// axis the pair omits.
				xsvExt2 = xsb + 1
				ysvExt2 = ysb + 1
				zsvExt2 = zsb + 1
				wsvExt2 = wsb + 1
				dxExt2 = dx0 - 1 - 2*squishConstant4D
				dyExt2 = dy0 - 1 - 2*squishConstant4D
				dzExt2 = dz0 - 1 - 2*squishConstant4D
				dwExt2 = dw0 - 1 - 2*squishConstant4D
				if c2&0x01 == 0 {
					xsvExt2 -= 2
					dxExt2 += 2
				} else if c2&0x02 == 0 {
					ysvExt2 -= 2
					dyExt2 += 2
				} else if c2&0x04 == 0 {
					zsvExt2 -= 2
					dzExt2 += 2
				} else {
					wsvExt2 -= 2
					dwExt2 += 2
				}
			} else {
				// Both on the smaller side: one extra vertex is
				// (1,1,1,1), the other two extend the shared axes.
				xsvExt2 = xsb + 1
				ysvExt2 = ysb + 1
				zsvExt2 = zsb + 1
				wsvExt2 = wsb + 1
				dxExt2 = dx0 - 1 - 4*squishConstant4D
				dyExt2 = dy0 - 1 - 4*squishConstant4D
				dzExt2 = dz0 - 1 - 4*squishConstant4D
				dwExt2 = dw0 - 1 - 4*squishConstant4D

				c := aPoint & bPoint

				if c&0x01 != 0 {
					xsvExt0 = xsb + 2
					xsvExt1 = xsb + 1
					dxExt0 = dx0 - 2 - 3*squishConstant4D
					dxExt1 = dx0 - 1 - 3*squishConstant4D
				} else {
					xsvExt1 = xsb
					xsvExt0 = xsvExt1
					dxExt1 = dx0 - 3*squishConstant4D
					dxExt0 = dxExt1
				}

				if c&0x02 != 0 {
					ysvExt1 = ysb + 1
					ysvExt0 = ysvExt1
					dyExt1 = dy0 - 1 - 3*squishConstant4D
					dyExt0 = dyExt1
					if c&0x01 == 0 {
						ysvExt0 += 1
						dyExt0 -= 1
					} else {
						ysvExt1 += 1
						dyExt1 -= 1
					}
				} else {
					ysvExt1 = ysb
					ysvExt0 = ysvExt1
					dyExt1 = dy0 - 3*squishConstant4D
					dyExt0 = dyExt1
				}

				if c&0x04 != 0 {
					zsvExt1 = zsb + 1
					zsvExt0 = zsvExt1
					dzExt1 = dz0 - 1 - 3*squishConstant4D
					dzExt0 = dzExt1
					if c&0x03 == 0 {
						zsvExt0 += 1
						dzExt0 -= 1
					} else {
						zsvExt1 += 1
						dzExt1 -= 1
					}
				} else {
					zsvExt1 = zsb
					zsvExt0 = zsvExt1
					dzExt1 = dz0 - 3*squishConstant4D
					dzExt0 = dzExt1
				}

				if c&0x08 != 0 {
					wsvExt0 = wsb + 1
					wsvExt1 = wsb + 2
					dwExt0 = dw0 - 1 - 3*squishConstant4D
					dwExt1 = dw0 - 2 - 3*squishConstant4D
				} else {
					wsvExt1 = wsb
					wsvExt0 = wsvExt1
					dwExt1 = dw0 - 3*squishConstant4D
					dwExt0 = dwExt1
				}
			}
		} else {
			// One closest vertex on each side.
			var c1, c2 uint8
			if aIsBiggerSide {
				c1 = aPoint
				c2 = bPoint
			} else {
				c1 = bPoint
				c2 = aPoint
			}

			// Two extra vertices come from the bigger-sided point with
			// each 1 replaced by 2.
			if c1&0x01 != 0 {
				xsvExt0 = xsb + 2
				xsvExt1 = xsb + 1
				dxExt0 = dx0 - 2 - 3*squishConstant4D
				dxExt1 = dx0 - 1 - 3*squishConstant4D
			} else {
				xsvExt1 = xsb
				xsvExt0 = xsvExt1
				dxExt1 = dx0 - 3*squishConstant4D
				dxExt0 = dxExt1
			}

			if c1&0x02 != 0 {
				ysvExt1 = ysb + 1
				ysvExt0 = ysvExt1
				dyExt1 = dy0 - 1 - 3*squishConstant4D
				dyExt0 = dyExt1
				if c1&0x01 == 0 {
					ysvExt0 += 1
					dyExt0 -= 1
				} else {
					ysvExt1 += 1
					dyExt1 -= 1
				}
			} else {
				ysvExt1 = ysb
				ysvExt0 = ysvExt1
				dyExt1 = dy0 - 3*squishConstant4D
				dyExt0 = dyExt1
			}

			if c1&0x04 != 0 {
				zsvExt1 = zsb + 1
				zsvExt0 = zsvExt1
				dzExt1 = dz0 - 1 - 3*squishConstant4D
				dzExt0 = dzExt1
				if c1&0x03 == 0 {
					zsvExt0 += 1
					dzExt0 -= 1
				} else {
					zsvExt1 += 1
					dzExt1 -= 1
				}
			} else {
				zsvExt1 = zsb
				zsvExt0 = zsvExt1
				dzExt1 = dz0 - 3*squishConstant4D
				dzExt0 = dzExt1
			}

			if c1&0x08 != 0 {
				wsvExt0 = wsb + 1
				wsvExt1 = wsb + 2
				dwExt0 = dw0 - 1 - 3*squishConstant4D
				dwExt1 = dw0 - 2 - 3*squishConstant4D
			} else {
				wsvExt1 = wsb
				wsvExt0 = wsvExt1
				dwExt1 = dw0 - 3*squishConstant4D
				dwExt0 = dwExt1
			}

			// The third is a permutation of (1,1,1,-1) from the smaller side.
			xsvExt2 = xsb + 1
			ysvExt2 = ysb + 1
			zsvExt2 = zsb + 1
			wsvExt2 = wsb + 1
			dxExt2 = dx0 - 1 - 2*squishConstant4D
			dyExt2 = dy0 - 1 - 2*squishConstant4D
			dzExt2 = dz0 - 1 - 2*squishConstant4D
			dwExt2 = dw0 - 1 - 2*squishConstant4D
			if c2&0x01 == 0 {
				xsvExt2 -= 2
				dxExt2 += 2
			} else if c2&0x02 == 0 {
				ysvExt2 -= 2
				dyExt2 += 2
			} else if c2&0x04 == 0 {
				zsvExt2 -= 2
				dzExt2 += 2
			} else {
				wsvExt2 -= 2
				dwExt2 += 2
			}
		}

		// Band vertices: four triple increments, six double increments.
		set.add(xsb+1, ysb+1, zsb+1, wsb+0,
			dx0-1-3*squishConstant4D, dy0-1-3*squishConstant4D,
			dz0-1-3*squishConstant4D, dw0-3*squishConstant4D)
		set.add(xsb+1, ysb+1, zsb+0, wsb+1,
			dx0-1-3*squishConstant4D, dy0-1-3*squishConstant4D,
			dz0-3*squishConstant4D, dw0-1-3*squishConstant4D)
		set.add(xsb+1, ysb+0, zsb+1, wsb+1,
			dx0-1-3*squishConstant4D, dy0-3*squishConstant4D,
			dz0-1-3*squishConstant4D, dw0-1-3*squishConstant4D)
		set.add(xsb+0, ysb+1, zsb+1, wsb+1,
			dx0-3*squishConstant4D, dy0-1-3*squishConstant4D,
			dz0-1-3*squishConstant4D, dw0-1-3*squishConstant4D)
		addDoubleIncrements4(&set, xsb, ysb, zsb, wsb, dx0, dy0, dz0, dw0)
	}

	set.add(xsvExt0, ysvExt0, zsvExt0, wsvExt0, dxExt0, dyExt0, dzExt0, dwExt0)
	set.add(xsvExt1, ysvExt1, zsvExt1, wsvExt1, dxExt1, dyExt1, dzExt1, dwExt1)
	set.add(xsvExt2, ysvExt2, zsvExt2, wsvExt2, dxExt2, dyExt2, dzExt2, dwExt2)

	return set, nil
}

// addSingleAndDoubleIncrements4 emits the ten vertices shared by the
// first dispentachoron band: (1,0,0,0)-type then (1,1,0,0)-type.
func addSingleAndDoubleIncrements4(set *contribSet4, xsb, ysb, zsb, wsb int32, dx0, dy0, dz0, dw0 float64) {
	set.add(xsb+1, ysb+0, zsb+0, wsb+0,
		dx0-1-squishConstant4D, dy0-0-squishConstant4D,
		dz0-0-squishConstant4D, dw0-0-squishConstant4D)
	set.add(xsb+0, ysb+1, zsb+0, wsb+0,
		dx0-0-squishConstant4D, dy0-1-squishConstant4D,
		dz0-0-squishConstant4D, dw0-0-squishConstant4D)
	set.add(xsb+0, ysb+0, zsb+1, wsb+0,
		dx0-0-squishConstant4D, dy0-0-squishConstant4D,
		dz0-1-squishConstant4D, dw0-0-squishConstant4D)
	set.add(xsb+0, ysb+0, zsb+0, wsb+1,
		dx0-0-squishConstant4D, dy0-0-squishConstant4D,
		dz0-0-squishConstant4D, dw0-1-squishConstant4D)
	addDoubleIncrements4(set, xsb, ysb, zsb, wsb, dx0, dy0, dz0, dw0)
}

// addDoubleIncrements4 emits the six (1,1,0,0)-type vertices both
// dispentachoron bands share.
func addDoubleIncrements4(set *contribSet4, xsb, ysb, zsb, wsb int32, dx0, dy0, dz0, dw0 float64) {
	set.add(xsb+1, ysb+1, zsb+0, wsb+0,
		dx0-1-2*squishConstant4D, dy0-1-2*squishConstant4D,
		dz0-0-2*squishConstant4D, dw0-0-2*squishConstant4D)
	set.add(xsb+1, ysb+0, zsb+1, wsb+0,
		dx0-1-2*squishConstant4D, dy0-0-2*squishConstant4D,
		dz0-1-2*squishConstant4D, dw0-0-2*squishConstant4D)
	set.add(xsb+1, ysb+0, zsb+0, wsb+1,
		dx0-1-2*squishConstant4D, dy0-0-2*squishConstant4D,
		dz0-0-2*squishConstant4D, dw0-1-2*squishConstant4D)
	set.add(xsb+0, ysb+1, zsb+1, wsb+0,
		dx0-0-2*squishConstant4D, dy0-1-2*squishConstant4D,
		dz0-1-2*squishConstant4D, dw0-0-2*squishConstant4D)
	set.add(xsb+0, ysb+1, zsb+0, wsb+1,
		dx0-0-2*squishConstant4D, dy0-1-2*squishConstant4D,
		dz0-0-2*squishConstant4D, dw0-1-2*squishConstant4D)
	set.add(xsb+0, ysb+0, zsb+1, wsb+1,
		dx0-0-2*squishConstant4D, dy0-0-2*squishConstant4D,
		dz0-1-2*squishConstant4D, dw0-1-2*squishConstant4D)
}
