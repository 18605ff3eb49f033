// SPDX-License-Identifier: MIT

// Package deeptb is a Slater-Koster tight-binding toolkit: it assembles
// real-space Hamiltonian and overlap blocks from two-centre integrals,
// Bloch-transforms them to k-space and solves the generalized Hermitian
// eigenproblem for band energies.
//
// Packages:
//
//	orbital/      shells (s, p, d), per-type layouts, the shared shell-pair IndexMap
//	sk/           Slater-Koster rotation of bond integrals into orbital blocks
//	structure/    validated bond lists, orbital ranges, the Provider contract
//	builder/      crystal presets and cutoff neighbour search producing a Structure
//	soc/          atomic L·S operators and the per-type SOC cache
//	matrix/       complex kernels: Cholesky, congruence, Hermitian eigensolvers
//	hamiltonian/  Assemble, H(k)/S(k), Solve, Model, SolveBatch
//	kpoints/      line paths and Monkhorst-Pack grids
//	cmd/skbands   CLI: YAML model in, band table out
//
// Quick example (a one-atom s chain, ε(k) = ε₀ + 2t·cos 2πk):
//
//	st, _ := builder.Build(map[string]orbital.Layout{"A": orbital.MustLayout("s")},
//		[]builder.BuilderOption{builder.WithCutoff(1.1)}, builder.LinearChain("A", 1))
//	a, _ := hamiltonian.Assemble(st, hamiltonian.Integrals{
//		OnsiteEs: [][]float64{{0}}, Hoppings: [][]float64{{-1}}})
//	res, _ := a.Solve([][3]float64{{0, 0, 0}, {0.5, 0, 0}}, true, hamiltonian.WithUnit(hamiltonian.EV))
package deeptb
