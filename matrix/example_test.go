// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/matrix"
)

// ExampleSolveGeneralized solves a two-level problem with a 0.2 overlap.
func ExampleSolveGeneralized() {
	h := mat.NewCDense(2, 2, []complex128{0, -1, -1, 0})
	s := mat.NewCDense(2, 2, []complex128{1, 0.2, 0.2, 1})

	d, err := matrix.SolveGeneralized(h, s)
	if err != nil {
		fmt.Println(err)
		return
	}
	// ε = ∓1/(1 ± 0.2)
	fmt.Printf("%.4f %.4f\n", d.Values[0], d.Values[1])
	// Output: -0.8333 1.2500
}
