// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for nil/shape/finiteness/Hermiticity guards.
//  - Return plain sentinel errors tagged with the validator name so call
//    sites can wrap once with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - The Hermiticity scan visits the upper triangle once.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil.
func ValidateNotNil(m *mat.CDense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare(m *mat.CDense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if r, c := m.Dims(); r != c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare))
	}
	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
func ValidateSameShape(a, b *mat.CDense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return validatorErrorf("ValidateSameShape", fmt.Errorf("%dx%d vs %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch))
	}
	return nil
}

// ValidateFinite rejects NaN or ±Inf in either component of any entry.
func ValidateFinite(m *mat.CDense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	raw := m.RawCMatrix()
	for i := 0; i < raw.Rows; i++ {
		for _, v := range raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols] {
			if cmplx.IsNaN(v) || cmplx.IsInf(v) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}
	return nil
}

// ValidateHermitian ensures m is square and |m[i,j] - conj(m[j,i])| ≤ tol
// for all i ≤ j (the diagonal must be real within tol).
//
// Complexity: O(n²), upper triangle only.
func ValidateHermitian(m *mat.CDense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateHermitian", ErrNaNInf)
	}
	tol = math.Abs(tol)
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(m.At(i, j)-cmplx.Conj(m.At(j, i))) > tol {
				return validatorErrorf("ValidateHermitian", fmt.Errorf("(%d,%d): %w", i, j, ErrNotHermitian))
			}
		}
	}
	return nil
}
