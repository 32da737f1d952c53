// Internal tests for the lattice decomposers: contribution counts,
// vertex locality, uniqueness, and range rejection.
package opensimplex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// samplePoints2 spreads probes across cell interiors, edges, and corners
// so every decomposition region is hit.
func samplePoints2() [][2]float64 {
	var pts [][2]float64
	for xi := -3; xi <= 3; xi++ {
		for yi := -3; yi <= 3; yi++ {
			for _, f := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
				pts = append(pts, [2]float64{float64(xi) + f, float64(yi) + f*0.7})
			}
		}
	}
	return pts
}

// TestDecompose2_Properties checks count bounds, duplicate-free vertex
// sets, and locality of every emitted lattice point.
func TestDecompose2_Properties(t *testing.T) {
	for _, p := range samplePoints2() {
		set, err := decompose2(p[0], p[1])
		require.NoError(t, err)
		require.GreaterOrEqual(t, set.n, 3)
		require.LessOrEqual(t, set.n, maxContrib2)

		seen := map[[2]int32]bool{}
		for i := 0; i < set.n; i++ {
			c := set.at[i]
			key := [2]int32{c.xsb, c.ysb}
			require.False(t, seen[key], "duplicate vertex %v at %v", key, p)
			seen[key] = true
		}
	}
}

// TestDecompose3_Properties covers all three 3D regions.
func TestDecompose3_Properties(t *testing.T) {
	// Per-axis fractions chosen so samples land in both pentachora-like
	// end regions (inSum near 0 or 3) and the middle octahedron.
	fracs := []float64{0.05, 0.3, 0.5, 0.7, 0.95}
	for _, fx := range fracs {
		for _, fy := range fracs {
			for _, fz := range fracs {
				set, err := decompose3(fx-1, fy+2, fz)
				require.NoError(t, err)
				require.GreaterOrEqual(t, set.n, 4)
				require.LessOrEqual(t, set.n, maxContrib3)

				seen := map[[3]int32]bool{}
				for i := 0; i < set.n; i++ {
					c := set.at[i]
					key := [3]int32{c.xsb, c.ysb, c.zsb}
					require.False(t, seen[key],
						"duplicate vertex %v at (%v,%v,%v)", key, fx-1, fy+2, fz)
					seen[key] = true
				}
			}
		}
	}
}

// TestDecompose4_Properties covers all four 4D regions.
func TestDecompose4_Properties(t *testing.T) {
	fracs := []float64{0.05, 0.35, 0.65, 0.95}
	for _, fx := range fracs {
		for _, fy := range fracs {
			for _, fz := range fracs {
				for _, fw := range fracs {
					set, err := decompose4(fx, fy-3, fz+1, fw)
					require.NoError(t, err)
					require.GreaterOrEqual(t, set.n, 5)
					require.LessOrEqual(t, set.n, maxContrib4)

					seen := map[[4]int32]bool{}
					for i := 0; i < set.n; i++ {
						c := set.at[i]
						key := [4]int32{c.xsb, c.ysb, c.zsb, c.wsb}
						require.False(t, seen[key], "duplicate vertex %v", key)
						seen[key] = true
					}
				}
			}
		}
	}
}

// TestDecompose_OutOfRange checks the decomposers reject coordinates
// whose stretched floor leaves the int32 lattice range.
func TestDecompose_OutOfRange(t *testing.T) {
	const huge = 1e18
	_, err := decompose2(huge, 0)
	require.ErrorIs(t, err, ErrCoordinateOutOfRange)
	_, err = decompose3(0, huge, 0)
	require.ErrorIs(t, err, ErrCoordinateOutOfRange)
	_, err = decompose4(0, 0, huge, 0)
	require.ErrorIs(t, err, ErrCoordinateOutOfRange)
}

// TestExtrapolate_GradientIndexInvariant checks derived 3D gradient
// indexes stay within the gradient table for every perm entry.
func TestExtrapolate_GradientIndexInvariant(t *testing.T) {
	for _, seed := range []int64{0, 5, -9000} {
		g := New(seed)
		for i, gi := range g.gradIndex3D {
			require.Less(t, int(gi), len(grad3D),
				fmt.Sprintf("seed %d: gradIndex3D[%d] out of table", seed, i))
			require.Zero(t, gi%3)
		}
	}
}
