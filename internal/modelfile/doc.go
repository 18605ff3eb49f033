// SPDX-License-Identifier: MIT

// Package modelfile reads empirical Slater-Koster models from YAML.
//
// A model file declares orbital layouts per atom type, a crystal (preset
// or explicit cell and sites), neighbour cutoffs, onsite energies,
// SK parameters per ordered type pair and shell pair (constant or
// power-law in distance), optional overlaps, onsite-strain parameters,
// SOC lambdas and the k-points to solve at. Expansion into
// hamiltonian.Integrals goes through the structure's orbital.IndexMap.
//
//	unit: ev
//	orbitals: {C: [2s, 2p]}
//	crystal: {preset: honeycomb, species: [C, C], length: 1.42}
//	cutoff: 1.5
//	onsite: {C: [-8.87, 0.0]}
//	hoppings:
//	  C-C:
//	    model: powerlaw
//	    r0: 1.42
//	    eta: 2
//	    values: {2s-2s: [-6.77], 2s-2p: [5.58], 2p-2p: [5.04, -3.03]}
//	kpath: {labels: [G, M, K, G], density: 30}
//
// Shell-pair keys are "<shell of I>-<shell of J>" under the "<type I>-<type
// J>" table. A missing pair falls back to the transposed entry of the
// reversed table (the same table for like types).
package modelfile
