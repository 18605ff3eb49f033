// SPDX-License-Identifier: MIT

// Package hamiltonian turns a fixed set of Slater-Koster integrals into
// band energies.
//
// Pipeline:
//
//	Assemble(structure, integrals)
//	  ├─ onsite blocks   diag(E_shell) + Σ strain corrections
//	  ├─ hopping blocks  SK rotation per shell pair, parity placement rule
//	  ├─ overlap blocks  same rule on overlap integrals (non-orthogonal basis)
//	  └─ SOC terms       λ-scaled cached atomic L·S quadrants
//	Assembly.HK / SK   Bloch sum Σ block·exp(−i2πk·R), optional M + Mᴴ
//	Assembly.Solve     per-k Cholesky + Löwdin reduction + Hermitian eigen
//
// Blocks are (norb_i × norb_j) real matrices tagged with their bond; k-space
// matrices are N×N, or 2N×2N (spin-major) with spin-orbit coupling.
//
// Eigenvectors returned by Solve are those of L⁻¹·H·L⁻ᴴ, i.e. expressed in
// the Löwdin-orthogonalised basis. Apply matrix.BackTransform(L, v) with the
// returned Cholesky factor to obtain coefficients in the atomic basis.
//
// Assembly values are immutable and safe for concurrent Solve calls.
// Model wraps them with the assemble-before-solve contract.
package hamiltonian
