// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/matrix"
)

// phase returns exp(−i·2π·k·R).
func phase(k [3]float64, r [3]int) complex128 {
	arg := -2 * math.Pi * (k[0]*float64(r[0]) + k[1]*float64(r[1]) + k[2]*float64(r[2]))
	return cmplx.Exp(complex(0, arg))
}

// blochSum Fourier-sums onsite and hopping blocks at k.
//
// Implementation:
//   - Stage 1: M = 0 (N×N).
//   - Stage 2: for each block add block·exp(−i2πk·R) at
//     [range(i).Start, range(j).Start); onsite blocks weigh 0.5 when
//     timeSymm is set.
//   - Stage 3: timeSymm ⇒ M ← M + Mᴴ.
//
// Complexity: O(B·o² + N²) for B blocks of at most o orbitals per side.
func (a *Assembly) blochSum(onsite, hopping []Block, k [3]float64, timeSymm bool) (*mat.CDense, error) {
	n := a.st.TotalOrbitals()
	m := mat.NewCDense(n, n, nil)

	w := complex(1, 0)
	if timeSymm {
		w = 0.5
	}
	for _, b := range onsite {
		r := a.st.Range(b.Bond.I)
		if err := matrix.AddBlock(m, r.Start, r.Start, b.Value, w); err != nil {
			return nil, fmt.Errorf("%s: onsite atom %d: %w", opBloch, b.Bond.I, err)
		}
	}
	for ib, b := range hopping {
		ri, rj := a.st.Range(b.Bond.I), a.st.Range(b.Bond.J)
		if err := matrix.AddBlock(m, ri.Start, rj.Start, b.Value, phase(k, b.Bond.R)); err != nil {
			return nil, fmt.Errorf("%s: hopping bond %d: %w", opBloch, ib, err)
		}
	}
	if timeSymm {
		return matrix.AddConjTranspose(m), nil
	}
	return m, nil
}

// HK returns the spinless N×N Bloch Hamiltonian at k (reduced coordinates).
func (a *Assembly) HK(k [3]float64, timeSymm bool) (*mat.CDense, error) {
	return a.blochSum(a.onsite, a.hopping, k, timeSymm)
}

// SK returns the spinless N×N Bloch overlap at k; the identity for an
// orthogonal basis.
func (a *Assembly) SK(k [3]float64, timeSymm bool) (*mat.CDense, error) {
	if a.orthogonal {
		return matrix.Identity(a.st.TotalOrbitals()), nil
	}
	return a.blochSum(a.sOnsite, a.sHopping, k, timeSymm)
}

// HKSpin returns the 2N×2N spin-doubled Hamiltonian
// [[H + socDiag, socUp], [socUpᴴ, H + conj(socDiag)]].
//
// Errors:
//   - ErrNoSOCLambdas when the assembly carries no SOC terms.
func (a *Assembly) HKSpin(k [3]float64, timeSymm bool) (*mat.CDense, error) {
	if a.soc == nil {
		return nil, fmt.Errorf("%s: %w", opBloch, ErrNoSOCLambdas)
	}
	h, err := a.HK(k, timeSymm)
	if err != nil {
		return nil, err
	}
	n := a.st.TotalOrbitals()
	h2 := matrix.SpinDouble(h)
	d, u := a.soc.Diag, a.soc.Up
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h2.Set(i, j, h2.At(i, j)+d.At(i, j))
			h2.Set(i, n+j, h2.At(i, n+j)+u.At(i, j))
			h2.Set(n+i, j, h2.At(n+i, j)+cmplx.Conj(u.At(j, i)))
			h2.Set(n+i, n+j, h2.At(n+i, n+j)+cmplx.Conj(d.At(i, j)))
		}
	}
	return h2, nil
}

// SKSpin returns I₂⊗S; SOC adds no overlap terms.
func (a *Assembly) SKSpin(k [3]float64, timeSymm bool) (*mat.CDense, error) {
	s, err := a.SK(k, timeSymm)
	if err != nil {
		return nil, err
	}
	return matrix.SpinDouble(s), nil
}
