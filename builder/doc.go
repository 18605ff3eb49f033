// SPDX-License-Identifier: MIT

// Package builder turns a crystal (lattice cell plus atomic sites) into a
// validated structure.Structure by cutoff neighbour search. It is the
// reference geometry provider for the hamiltonian package.
//
// The package offers the following key components:
//
//   - Crystal construction:
//     – Constructor:   a closure that mutates a Crystal using builderConfig.
//     – BuildCrystal:  runs constructors in order on an empty Crystal.
//     – Lattice, Atom, FractionalAtom: generic constructors.
//     – Dimer, LinearChain, SquareLattice, Honeycomb: presets.
//   - Neighbour search:
//     – Neighbours:    the bond lists of a Crystal; implements
//     structure.Provider.
//     – Build:         BuildCrystal + Neighbours + structure.FromProvider.
//   - Options (BuilderOption): WithCutoff, WithStrainCutoff,
//     WithTimeReversal, WithSearchRange, WithFrame, WithVacuum.
//
// Guarantees:
//
//   - Deterministic: bonds are emitted in (i, j, R) lexicographic order for
//     equal inputs and options.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; constructors and Build return sentinel errors.
//   - With time reversal (the default) each pair (i, j, R) is kept in one
//     direction only: i < j, or i == j with R lexicographically positive.
//
// Units are whatever the caller uses for positions and cutoffs (Å by
// convention).
package builder
