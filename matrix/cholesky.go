// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Cholesky factorises a Hermitian positive-definite s as s = L·Lᴴ and
// returns the lower-triangular L.
//
// Implementation:
//   - Stage 1: validate square (and Hermitian within eps unless
//     WithoutValidation).
//   - Stage 2: column-by-column Cholesky–Banachiewicz:
//     d_j = s[j,j] - Σ_{k<j} |L[j,k]|², L[j,j] = √d_j,
//     L[i,j] = (s[i,j] - Σ_{k<j} L[i,k]·conj(L[j,k])) / L[j,j], i > j.
//
// Inputs:
//   - s: n×n Hermitian matrix (only the lower triangle is read).
//   - opts: WithEpsilon, WithPivotTolerance, WithoutValidation.
//
// Returns:
//   - *mat.CDense: L with a real positive diagonal and zero upper triangle.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian, ErrNaNInf.
//   - ErrNotPositiveDefinite when d_j ≤ pivotTol·|s[j,j]| or d_j is not finite
//     (singular overlap, linearly dependent basis).
//
// Determinism:
//   - Fixed j→i→k loop order; no pivoting.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
//
// Notes:
//   - gonum's mat.Cholesky is real-only; this is the complex counterpart
//     of LAPACK zpotrf without blocking.
func Cholesky(s *mat.CDense, opts ...Option) (*mat.CDense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(s); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if !o.skipChecks {
		if err := ValidateFinite(s); err != nil {
			return nil, matrixErrorf(opCholesky, err)
		}
		if err := ValidateHermitian(s, o.eps); err != nil {
			return nil, matrixErrorf(opCholesky, err)
		}
	}

	n, _ := s.Dims()
	l := mat.NewCDense(n, n, nil)
	raw := l.RawCMatrix()
	for j := 0; j < n; j++ {
		rowJ := raw.Data[j*raw.Stride : j*raw.Stride+j]
		d := real(s.At(j, j))
		for _, v := range rowJ {
			d -= real(v)*real(v) + imag(v)*imag(v)
		}
		if math.IsNaN(d) || d <= o.pivotTol*math.Abs(real(s.At(j, j))) || d <= 0 {
			return nil, matrixErrorf(opCholesky, fmt.Errorf("pivot %d = %g: %w", j, d, ErrNotPositiveDefinite))
		}
		ljj := math.Sqrt(d)
		l.Set(j, j, complex(ljj, 0))

		for i := j + 1; i < n; i++ {
			rowI := raw.Data[i*raw.Stride : i*raw.Stride+j]
			acc := s.At(i, j)
			for k, v := range rowI {
				acc -= v * cmplx.Conj(rowJ[k])
			}
			l.Set(i, j, acc/complex(ljj, 0))
		}
	}
	return l, nil
}

// ForwardSolve returns X = L⁻¹·B for lower-triangular L.
//
// Complexity: O(n²·m) for B of shape n×m.
func ForwardSolve(l, b *mat.CDense) (*mat.CDense, error) {
	if err := ValidateSquare(l); err != nil {
		return nil, matrixErrorf(opForwardSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opForwardSolve, err)
	}
	n, _ := l.Dims()
	br, bc := b.Dims()
	if br != n {
		return nil, matrixErrorf(opForwardSolve, fmt.Errorf("L %dx%d, B %dx%d: %w", n, n, br, bc, ErrDimensionMismatch))
	}

	x := Clone(b)
	for i := 0; i < n; i++ {
		lii := l.At(i, i)
		if lii == 0 {
			return nil, matrixErrorf(opForwardSolve, fmt.Errorf("zero diagonal at %d: %w", i, ErrNotPositiveDefinite))
		}
		for c := 0; c < bc; c++ {
			acc := x.At(i, c)
			for k := 0; k < i; k++ {
				acc -= l.At(i, k) * x.At(k, c)
			}
			x.Set(i, c, acc/lii)
		}
	}
	return x, nil
}

// BackTransform returns C = L⁻ᴴ·V, mapping eigenvectors of the reduced
// problem L⁻¹·H·L⁻ᴴ back to generalized eigenvectors of (H, S).
//
// Complexity: O(n²·m) for V of shape n×m.
func BackTransform(l, v *mat.CDense) (*mat.CDense, error) {
	if err := ValidateSquare(l); err != nil {
		return nil, matrixErrorf(opBackSolve, err)
	}
	if err := ValidateNotNil(v); err != nil {
		return nil, matrixErrorf(opBackSolve, err)
	}
	n, _ := l.Dims()
	vr, vc := v.Dims()
	if vr != n {
		return nil, matrixErrorf(opBackSolve, fmt.Errorf("L %dx%d, V %dx%d: %w", n, n, vr, vc, ErrDimensionMismatch))
	}

	c := Clone(v)
	for i := n - 1; i >= 0; i-- {
		lii := cmplx.Conj(l.At(i, i))
		if lii == 0 {
			return nil, matrixErrorf(opBackSolve, fmt.Errorf("zero diagonal at %d: %w", i, ErrNotPositiveDefinite))
		}
		for col := 0; col < vc; col++ {
			acc := c.At(i, col)
			for k := i + 1; k < n; k++ {
				// (Lᴴ)[i,k] = conj(L[k,i])
				acc -= cmplx.Conj(l.At(k, i)) * c.At(k, col)
			}
			c.Set(i, col, acc/lii)
		}
	}
	return c, nil
}

// Congruence returns L⁻¹·H·L⁻ᴴ, Hermitised to remove round-off asymmetry.
//
// Implementation:
//   - Stage 1: Y = L⁻¹·H.
//   - Stage 2: L⁻¹·Yᴴ = L⁻¹·Hᴴ·L⁻ᴴ = L⁻¹·H·L⁻ᴴ for Hermitian H.
//   - Stage 3: HermitianPartInPlace.
func Congruence(l, h *mat.CDense) (*mat.CDense, error) {
	if err := ValidateSquare(h); err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	y, err := ForwardSolve(l, h)
	if err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	heff, err := ForwardSolve(l, ConjTranspose(y))
	if err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	HermitianPartInPlace(heff)
	return heff, nil
}
