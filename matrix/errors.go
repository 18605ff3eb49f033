// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels wrapped with an operation tag; tests
// match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil matrix argument was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotHermitian signals |A[i,j] - conj(A[j,i])| above the tolerance.
	ErrNotHermitian = errors.New("matrix: matrix is not Hermitian within eps")

	// ErrNotPositiveDefinite is returned by Cholesky when a pivot is not
	// strictly positive (singular or indefinite overlap).
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrEigenFailed indicates that an eigen backend did not converge or
	// produced an eigenvector basis that could not be recovered.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation tags for uniform error wrapping.
const (
	opCholesky     = "Cholesky"
	opForwardSolve = "ForwardSolve"
	opBackSolve    = "BackTransform"
	opCongruence   = "Congruence"
	opEigen        = "EigenHermitian"
	opGeneralized  = "SolveGeneralized"
	opMul          = "Mul"
	opBlock        = "AddBlock"
)

// matrixErrorf wraps err with an operation tag, keeping errors.Is working.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
