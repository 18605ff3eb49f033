// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// Identity returns the n×n complex identity.
func Identity(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Clone returns a deep copy of m.
func Clone(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(r, c, nil)
	src, dst := m.RawCMatrix(), out.RawCMatrix()
	for i := 0; i < r; i++ {
		copy(dst.Data[i*dst.Stride:i*dst.Stride+c], src.Data[i*src.Stride:i*src.Stride+c])
	}
	return out
}

// FromReal lifts a real matrix into a new CDense.
func FromReal(a mat.Matrix) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, complex(a.At(i, j), 0))
		}
	}
	return out
}

// ConjTranspose returns mᴴ as a new matrix.
func ConjTranspose(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, cmplx.Conj(m.At(i, j)))
		}
	}
	return out
}

// Mul returns a·b.
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: form bᴴ once so every output entry is a contiguous
//     cmplxs.Dot(conj-first) of a row of bᴴ with a row of a.
//
// Complexity: O(r·k·c) time, O(k·c) extra space.
func Mul(a, b *mat.CDense) (*mat.CDense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch))
	}
	bh := ConjTranspose(b).RawCMatrix()
	ra := a.RawCMatrix()
	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		row := ra.Data[i*ra.Stride : i*ra.Stride+ac]
		for j := 0; j < bc; j++ {
			// Dot conjugates its first argument: conj(conj(b[:,j]))·a[i,:].
			out.Set(i, j, cmplxs.Dot(bh.Data[j*bh.Stride:j*bh.Stride+br], row))
		}
	}
	return out, nil
}

// HermitianPart returns (m + mᴴ)/2.
func HermitianPart(m *mat.CDense) *mat.CDense {
	out := Clone(m)
	HermitianPartInPlace(out)
	return out
}

// HermitianPartInPlace replaces square m by (m + mᴴ)/2.
func HermitianPartInPlace(m *mat.CDense) {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		m.Set(i, i, complex(real(m.At(i, i)), 0))
		for j := i + 1; j < n; j++ {
			v := (m.At(i, j) + cmplx.Conj(m.At(j, i))) / 2
			m.Set(i, j, v)
			m.Set(j, i, cmplx.Conj(v))
		}
	}
}

// AddConjTranspose returns m + mᴴ.
func AddConjTranspose(m *mat.CDense) *mat.CDense {
	n, _ := m.Dims()
	out := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, m.At(i, j)+cmplx.Conj(m.At(j, i)))
		}
	}
	return out
}

// SpinDouble returns the block-diagonal kron(I₂, m) = [[m, 0], [0, m]].
func SpinDouble(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(2*r, 2*c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			out.Set(i, j, v)
			out.Set(r+i, c+j, v)
		}
	}
	return out
}

// AddBlock adds scale·src into dst at offset (r0, c0), in place.
func AddBlock(dst *mat.CDense, r0, c0 int, src mat.Matrix, scale complex128) error {
	sr, sc := src.Dims()
	if err := blockFits(dst, r0, c0, sr, sc); err != nil {
		return err
	}
	for i := 0; i < sr; i++ {
		for j := 0; j < sc; j++ {
			if v := src.At(i, j); v != 0 {
				dst.Set(r0+i, c0+j, dst.At(r0+i, c0+j)+scale*complex(v, 0))
			}
		}
	}
	return nil
}

// AddCBlock adds scale·src into dst at offset (r0, c0), in place.
func AddCBlock(dst *mat.CDense, r0, c0 int, src *mat.CDense, scale complex128) error {
	if src == nil {
		return matrixErrorf(opBlock, ErrNilMatrix)
	}
	sr, sc := src.Dims()
	if err := blockFits(dst, r0, c0, sr, sc); err != nil {
		return err
	}
	for i := 0; i < sr; i++ {
		for j := 0; j < sc; j++ {
			dst.Set(r0+i, c0+j, dst.At(r0+i, c0+j)+scale*src.At(i, j))
		}
	}
	return nil
}

func blockFits(dst *mat.CDense, r0, c0, sr, sc int) error {
	if dst == nil {
		return matrixErrorf(opBlock, ErrNilMatrix)
	}
	dr, dc := dst.Dims()
	if r0 < 0 || c0 < 0 || r0+sr > dr || c0+sc > dc {
		return matrixErrorf(opBlock, fmt.Errorf("%dx%d at (%d,%d) into %dx%d: %w", sr, sc, r0, c0, dr, dc, ErrDimensionMismatch))
	}
	return nil
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]|.
func MaxAbsDiff(a, b *mat.CDense) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, err
	}
	r, c := a.Dims()
	var d float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if x := cmplx.Abs(a.At(i, j) - b.At(i, j)); x > d {
				d = x
			}
		}
	}
	return d, nil
}
