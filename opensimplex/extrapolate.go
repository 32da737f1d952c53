package opensimplex

// Extrapolation: hash one lattice point through the permutation table,
// pick a gradient vector, and dot it with the sample's displacement
// from that point. The hash folds each integer coordinate in sequence:
// idx ← perm[(idx + coord) & 0xFF].

// extrapolate2 masks the final permutation value with 0x0E, selecting
// one of the 8 two-component slots in grad2D.
func (g *Generator) extrapolate2(xsb, ysb int32, dx, dy float64) float64 {
	index := g.perm[(int32(g.perm[xsb&0xFF])+ysb)&0xFF] & 0x0E

	return grad2D[index]*dx + grad2D[index+1]*dy
}

// extrapolate3 goes through gradIndex3D: with 24 gradient vectors a
// plain bitmask cannot select a slot, so the (perm[i] mod 24) * 3
// offset is precomputed at construction.
func (g *Generator) extrapolate3(xsb, ysb, zsb int32, dx, dy, dz float64) float64 {
	index := g.gradIndex3D[(int32(g.perm[(int32(g.perm[xsb&0xFF])+ysb)&0xFF])+zsb)&0xFF]

	return grad3D[index]*dx + grad3D[index+1]*dy + grad3D[index+2]*dz
}

// extrapolate4 masks with 0xFC, selecting one of the 64 four-component
// slots in grad4D.
func (g *Generator) extrapolate4(xsb, ysb, zsb, wsb int32, dx, dy, dz, dw float64) float64 {
	index := g.perm[(int32(g.perm[(int32(g.perm[(int32(g.perm[xsb&0xFF])+ysb)&0xFF])+zsb)&0xFF])+wsb)&0xFF] & 0xFC

	return grad4D[index]*dx + grad4D[index+1]*dy + grad4D[index+2]*dz + grad4D[index+3]*dw
}
