// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Decomposition is the result of SolveGeneralized.
type Decomposition struct {
	// Values are the eigenvalues in ascending order.
	Values []float64
	// Vectors are the eigenvectors of the reduced Hermitian problem
	// L⁻¹·H·L⁻ᴴ (columns); nil unless WithVectors. Apply BackTransform(L, ·)
	// for the generalized eigenvectors of (H, S).
	Vectors *mat.CDense
	// L is the Cholesky factor of S; nil for an orthogonal basis.
	L *mat.CDense
}

// Generalized returns L⁻ᴴ·Vectors, the S-orthonormal generalized
// eigenvectors. For an orthogonal basis it returns Vectors unchanged.
func (d *Decomposition) Generalized() (*mat.CDense, error) {
	if d.Vectors == nil {
		return nil, matrixErrorf(opBackSolve, ErrNilMatrix)
	}
	if d.L == nil {
		return d.Vectors, nil
	}
	return BackTransform(d.L, d.Vectors)
}

// SolveGeneralized solves H·c = ε·S·c for Hermitian H and Hermitian
// positive-definite S. A nil s selects the orthogonal (S = I) path, which
// never factorises.
//
// Implementation:
//   - Stage 1: validate H (square, finite, Hermitian) and the shape of S.
//   - Stage 2: L = Cholesky(S); Heff = Congruence(L, H).
//   - Stage 3: EigenHermitian(Heff).
//
// Errors:
//   - ErrDimensionMismatch when S and H differ in shape.
//   - ErrNotPositiveDefinite from Cholesky.
//   - Any EigenHermitian error.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func SolveGeneralized(h, s *mat.CDense, opts ...Option) (*Decomposition, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(h); err != nil {
		return nil, matrixErrorf(opGeneralized, err)
	}
	if !o.skipChecks {
		if err := ValidateFinite(h); err != nil {
			return nil, matrixErrorf(opGeneralized, err)
		}
		if err := ValidateHermitian(h, o.eps); err != nil {
			return nil, matrixErrorf(opGeneralized, err)
		}
	}

	inner := append(append([]Option(nil), opts...), WithoutValidation())
	if s == nil {
		vals, vecs, err := EigenHermitian(h, inner...)
		if err != nil {
			return nil, matrixErrorf(opGeneralized, err)
		}
		return &Decomposition{Values: vals, Vectors: vecs}, nil
	}

	if err := ValidateSameShape(h, s); err != nil {
		return nil, matrixErrorf(opGeneralized, fmt.Errorf("overlap: %w", err))
	}
	l, err := Cholesky(s, opts...)
	if err != nil {
		return nil, matrixErrorf(opGeneralized, err)
	}
	heff, err := Congruence(l, h)
	if err != nil {
		return nil, matrixErrorf(opGeneralized, err)
	}
	vals, vecs, err := EigenHermitian(heff, inner...)
	if err != nil {
		return nil, matrixErrorf(opGeneralized, err)
	}
	return &Decomposition{Values: vals, Vectors: vecs, L: l}, nil
}
