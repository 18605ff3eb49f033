// SPDX-License-Identifier: MIT

package hamiltonian_test

import (
	"fmt"

	"github.com/dywu101/deeptb/hamiltonian"
	"github.com/dywu101/deeptb/orbital"
	"github.com/dywu101/deeptb/sk"
	"github.com/dywu101/deeptb/structure"
)

// A one-atom s chain: ε(k) = ε₀ + 2t·cos(2πk).
func ExampleAssembly_Solve() {
	layouts := map[string]orbital.Layout{"H": orbital.MustLayout("1s")}
	st, err := structure.New(
		[]string{"H"}, layouts,
		[]structure.Bond{{I: 0, TypeI: "H", J: 0, TypeJ: "H"}},
		[]structure.Bond{{I: 0, TypeI: "H", J: 0, TypeJ: "H", R: structure.Translation{1, 0, 0}, Dir: sk.Direction{1, 0, 0}, Dist: 1}},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	a, err := hamiltonian.Assemble(st, hamiltonian.Integrals{
		OnsiteEs: [][]float64{{0.5}},
		Hoppings: [][]float64{{-1}},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	r, err := a.Solve([][3]float64{{0, 0, 0}, {0.25, 0, 0}, {0.5, 0, 0}}, true, hamiltonian.WithUnit(hamiltonian.EV))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range r.Band(0) {
		fmt.Printf("%.2f ", e)
	}
	fmt.Println()
	// Output: -1.50 0.50 2.50
}
