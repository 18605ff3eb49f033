// SPDX-License-Identifier: MIT

// Package matrix provides the complex dense kernels behind the band solver:
// Hermitian validation, complex Cholesky factorisation, triangular
// congruence (Löwdin-style reduction of H·c = ε·S·c to standard form),
// back-transformation, spin doubling and a Hermitian eigensolver.
//
// All matrices are gonum *mat.CDense (row-major, complex128). The package
// never mutates its inputs unless a function name says so (AddBlock,
// AddCBlock, HermitianPartInPlace).
//
// Eigen backends:
//
//	BackendGonum   Hermitian H = A + iB is embedded in the real symmetric
//	                [[A, -B], [B, A]] and diagonalised with mat.EigenSym
//	                (LAPACK dsyev through gonum's native implementation).
//	BackendJacobi  same embedding, cyclic Jacobi rotations; slower but
//	                free of any LAPACK path, used as a cross-check.
//
// Errors are sentinels (errors.go) wrapped once with the operation tag.
// Option constructors panic on nonsensical values; kernels never panic.
package matrix
