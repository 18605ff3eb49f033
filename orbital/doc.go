// SPDX-License-Identifier: MIT

// Package orbital defines the orbital bookkeeping shared by every assembly
// stage: the closed set of angular-momentum shells, the per-atom-type shell
// layout and the shell-pair index map that locates scalar Slater-Koster
// integrals inside flat integral vectors.
//
// Index systems:
//
//	Shell      s, p, d; each owns 2l+1 orbitals ordered m = -l..l
//	            (p: py pz px; d: dxy dyz dz2 dxz dx2-y2).
//	Layout     ordered, named shells of one atom type ("2s", "2p", "s*").
//	            Orbital offsets are prefix sums in declared order.
//	IndexMap   built once per set of layouts and passed by pointer to the
//	            onsite, hopping, strain and SOC code paths. It is the only
//	            place where (shell, shell) labels turn into integral slots.
//
// Integral slots:
//
//	onsite   (type, shell)                -> one index
//	hopping  (typeI, typeJ, shellI, shellJ) -> span of min(lI,lJ)+1 values (σ, π, δ)
//	strain   (owner, neighbour, shellA, shellB) -> same width rule, shells of owner
//
// IndexMap.Validate re-derives every span from the layouts and checks that
// the spans partition each vector exactly, so two atom types that declare
// their shells in different orders still address consistent slots.
package orbital
