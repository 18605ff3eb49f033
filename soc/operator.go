// SPDX-License-Identifier: MIT

package soc

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/matrix"
	"github.com/dywu101/deeptb/orbital"
)

// ShellOperator returns the real-basis quadrants (Diag = Lz/2, Up = L₋/2)
// of the atomic L·S operator for one shell, each (2l+1)×(2l+1).
//
// Implementation:
//   - Stage 1: Lz and L₋ in the complex |l,m⟩ basis, index m+l:
//     Lz|m⟩ = m|m⟩, L₋|m⟩ = √(l(l+1) − m(m−1))·|m−1⟩.
//   - Stage 2: real orbitals r = Σ_m U[r][m]|m⟩ with
//     m > 0: U[r][−m] = 1/√2, U[r][m] = (−1)^m/√2;
//     m = 0: U[r][0] = 1;
//     m < 0: U[r][m] = i/√2, U[r][−m] = −i(−1)^m/√2.
//   - Stage 3: O_real = conj(U)·O·Uᵀ, halved for S = σ/2.
//
// Complexity: O(l³); the result is small and meant to be cached.
func ShellOperator(sh orbital.Shell) (diag, up *mat.CDense) {
	l := sh.L()
	n := sh.Count()

	lz := mat.NewCDense(n, n, nil)
	lm := mat.NewCDense(n, n, nil)
	for m := -l; m <= l; m++ {
		lz.Set(m+l, m+l, complex(float64(m), 0))
		if m > -l {
			c := math.Sqrt(float64(l*(l+1) - m*(m-1)))
			lm.Set(m-1+l, m+l, complex(c, 0))
		}
	}

	u := realBasis(l)
	uc := mat.NewCDense(n, n, nil)
	ut := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			uc.Set(i, j, cmplx.Conj(u.At(i, j)))
			ut.Set(j, i, u.At(i, j))
		}
	}
	return toReal(uc, lz, ut), toReal(uc, lm, ut)
}

// realBasis returns U with row r = m_r + l, column m + l.
func realBasis(l int) *mat.CDense {
	n := 2*l + 1
	u := mat.NewCDense(n, n, nil)
	s := complex(1/math.Sqrt2, 0)
	for m := -l; m <= l; m++ {
		r := m + l
		sign := complex(math.Pow(-1, float64(m)), 0)
		switch {
		case m > 0:
			u.Set(r, -m+l, s)
			u.Set(r, m+l, sign*s)
		case m == 0:
			u.Set(r, l, 1)
		default:
			u.Set(r, m+l, 1i*s)
			u.Set(r, -m+l, -1i*sign*s)
		}
	}
	return u
}

// toReal returns uc·o·ut / 2. Shapes are fixed by construction.
func toReal(uc, o, ut *mat.CDense) *mat.CDense {
	t, _ := matrix.Mul(uc, o)
	out, _ := matrix.Mul(t, ut)
	n, _ := out.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, out.At(i, j)/2)
		}
	}
	return out
}

// SpinMatrix assembles the full 2(2l+1) spin-orbital L·S matrix of a shell
// from its quadrants: [[Diag, Up], [Upᴴ, conj(Diag)]].
func SpinMatrix(diag, up *mat.CDense) *mat.CDense {
	n, _ := diag.Dims()
	out := mat.NewCDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, diag.At(i, j))
			out.Set(i, n+j, up.At(i, j))
			out.Set(n+i, j, cmplx.Conj(up.At(j, i)))
			out.Set(n+i, n+j, cmplx.Conj(diag.At(i, j)))
		}
	}
	return out
}
