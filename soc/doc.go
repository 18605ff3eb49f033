// SPDX-License-Identifier: MIT

// Package soc builds the onsite spin-orbit coupling terms λ·L·S.
//
// With spin-major ordering (all orbitals ↑, then all orbitals ↓) and
// S = σ/2, the atomic operator of one shell splits into
//
//	L·S = [[ Lz/2 , L₋/2 ],
//	       [ L₊/2 , −Lz/2 ]]
//
// expressed in the real-orbital basis (m = −l..l, p = py,pz,px;
// d = dxy,dyz,dz²,dxz,dx²−y²). Only the two upper quadrants are kept:
// Diag = Lz/2 and Up = L₋/2. In the real basis Lz is purely imaginary, so
// −Lz/2 = conj(Diag) and L₊/2 = Upᴴ; the spin-doubled Hamiltonian is
//
//	[[ H + socDiag , socUp ], [ socUpᴴ , H + conj(socDiag) ]].
//
// Per-type atomic blocks are built once by a Cache (build-once-then-freeze,
// safe for concurrent use) and scaled per shell by the atom's λ values in
// Accumulate.
package soc
