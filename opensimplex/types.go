// Package opensimplex - shared constants and the Generator type.
package opensimplex

// Lattice constants. For dimension N the stretch constant is
// (1/sqrt(N+1) - 1) / N and the squish constant is (sqrt(N+1) - 1) / N:
// the linear change of basis into and out of simplex-grid space.
const (
	stretchConstant2D = -0.211324865405187 // (1/sqrt(2+1) - 1) / 2
	squishConstant2D  = 0.366025403784439  // (sqrt(2+1) - 1) / 2
	stretchConstant3D = -1.0 / 6           // (1/sqrt(3+1) - 1) / 3
	squishConstant3D  = 1.0 / 3            // (sqrt(3+1) - 1) / 3
	stretchConstant4D = -0.138196601125011 // (1/sqrt(4+1) - 1) / 4
	squishConstant4D  = 0.309016994374947  // (sqrt(4+1) - 1) / 4
)

// Normalization divisors bringing summed kernel contributions into
// roughly [-1, 1] per dimension.
const (
	normConstant2D = 47
	normConstant3D = 103
	normConstant4D = 30
)

// permTableSize is the length of the permutation table; lattice
// coordinates are hashed modulo this size.
const permTableSize = 256

// Generator evaluates OpenSimplex noise for one seed.
//
// Both tables are fixed at construction and never mutated afterwards,
// so a single Generator may be queried concurrently without locking.
// The zero value is not usable; construct via New or NewFromPermutation.
type Generator struct {
	// perm is a seeded bijection on [0,255] used to hash integer
	// lattice coordinates to gradient indices.
	perm [permTableSize]uint8

	// gradIndex3D caches (perm[i] mod 24) * 3: the precomputed offset
	// into grad3D for the 3D extrapolation path, where 24 gradient
	// vectors rule out a plain bitmask.
	gradIndex3D [permTableSize]uint16

	// seed the tables were derived from; zero when the Generator was
	// built from an explicit permutation.
	seed int64
}

// Seed reports the seed this Generator was constructed from.
// For generators built via NewFromPermutation it reports 0.
func (g *Generator) Seed() int64 { return g.seed }
