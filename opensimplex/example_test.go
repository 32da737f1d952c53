package opensimplex_test

import (
	"fmt"

	"github.com/lmbarros/simplectic/opensimplex"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Seed a generator and sample the 2D field at a couple of points.
//	The same seed always reproduces the same field.
//
// Use case:
//
//	Procedural textures and heightfields that must be reproducible
//	across runs and machines.
func ExampleNew() {
	gen := opensimplex.New(0)

	fmt.Printf("%.6f\n", gen.Eval2(0.1, -0.5))
	fmt.Printf("%.6f\n", gen.Eval2(0.3, -0.5))
	// Output:
	// 0.168155
	// -0.112819
}

// ExampleGenerator_Eval3 samples the 3D field, e.g. for animated 2D
// noise where the third axis is time.
func ExampleGenerator_Eval3() {
	gen := opensimplex.New(0)

	fmt.Printf("%.6f\n", gen.Eval3(0.1, 0.2, -0.3))
	// Output:
	// 0.098366
}

// ExampleGenerator_Eval4 samples the 4D field, e.g. for seamlessly
// looping animated 2D noise.
func ExampleGenerator_Eval4() {
	gen := opensimplex.New(0)

	fmt.Printf("%.6f\n", gen.Eval4(0.5, 0.6, 0.7, 0.8))
	// Output:
	// 0.032962
}

// ExampleNewFromPermutation restores a generator from a previously
// exported permutation table, e.g. one persisted in a save file.
func ExampleNewFromPermutation() {
	orig := opensimplex.New(88)
	saved := orig.Permutation()

	restored, err := opensimplex.NewFromPermutation(saved)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(restored.Eval2(5.1, 5.1) == orig.Eval2(5.1, 5.1))
	// Output:
	// true
}
