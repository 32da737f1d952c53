// Package opensimplex - seeded permutation-table construction.
//
// This file centralizes the deterministic derivation of per-Generator
// state from a 64-bit seed.
//
// Goals:
//   - Determinism: same seed ⇒ identical tables across platforms.
//   - Reproducibility: the recurrence below is the only pseudo-random
//     source in the package; the seed is the whole persistable state.
//   - Safety: construction is total — every int64 seed yields a valid
//     bijection; no errors, no panics.
//
// Concurrency:
//   - Construction mutates only the Generator under construction.
//     Once New returns, the tables are never written again.
package opensimplex

// Linear-congruential constants (Knuth's MMIX multiplier/increment).
// The wrapping 64-bit arithmetic is load-bearing: together with the
// backward Fisher–Yates draw below it fixes the exact permutation each
// seed produces, and with it the reference output values.
const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// New returns a Generator for the given 64-bit seed. Two Generators
// built from the same seed produce identical noise.
//
// Complexity: O(1) — one pass over the 256-entry table.
func New(seed int64) *Generator {
	g := &Generator{seed: seed}

	var source [permTableSize]uint8
	for i := range source {
		source[i] = uint8(i)
	}

	// Warm the state so nearby seeds diverge before the first draw.
	s := seed
	s = s*lcgMultiplier + lcgIncrement
	s = s*lcgMultiplier + lcgIncrement
	s = s*lcgMultiplier + lcgIncrement

	// Backward Fisher–Yates: draw one remaining entry per slot, then
	// close the gap with the current tail element.
	for i := int32(permTableSize - 1); i >= 0; i-- {
		s = s*lcgMultiplier + lcgIncrement
		r := int32((s + 31) % int64(i+1))
		if r < 0 {
			r += i + 1
		}
		g.perm[i] = source[r]
		g.gradIndex3D[i] = uint16(g.perm[i]%grad3Count) * 3
		source[r] = source[i]
	}

	return g
}

// NewFromPermutation returns a Generator backed by an explicit
// permutation table instead of a seeded one. The table must be a
// 256-entry bijection on [0,255]; otherwise ErrInvalidPermutation is
// returned. The 3D gradient-index table is derived exactly as in New,
// so NewFromPermutation(g.Permutation()) reproduces g's output.
func NewFromPermutation(perm []uint8) (*Generator, error) {
	if len(perm) != permTableSize {
		return nil, ErrInvalidPermutation
	}
	var seen [permTableSize]bool
	for _, p := range perm {
		if seen[p] {
			return nil, ErrInvalidPermutation
		}
		seen[p] = true
	}

	g := &Generator{}
	copy(g.perm[:], perm)
	for i, p := range g.perm {
		g.gradIndex3D[i] = uint16(p%grad3Count) * 3
	}

	return g, nil
}

// Permutation returns a copy of the Generator's permutation table,
// suitable for persisting or for NewFromPermutation. The Generator's
// own table is not exposed and cannot be mutated through the result.
func (g *Generator) Permutation() []uint8 {
	out := make([]uint8, permTableSize)
	copy(out, g.perm[:])

	return out
}
