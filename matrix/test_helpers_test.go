// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/matrix"
)

const tol = 1e-9

// randomHermitian returns a deterministic random n×n Hermitian matrix.
func randomHermitian(n int, seed int64) *mat.CDense {
	rng := rand.New(rand.NewSource(seed))
	h := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		h.Set(i, i, complex(rng.NormFloat64(), 0))
		for j := i + 1; j < n; j++ {
			v := complex(rng.NormFloat64(), rng.NormFloat64())
			h.Set(i, j, v)
			h.Set(j, i, complex(real(v), -imag(v)))
		}
	}
	return h
}

// randomSPD returns A·Aᴴ + n·I for a random complex A.
func randomSPD(t *testing.T, n int, seed int64) *mat.CDense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, complex(rng.NormFloat64(), rng.NormFloat64()))
		}
	}
	s := MustMul(t, a, matrix.ConjTranspose(a))
	for i := 0; i < n; i++ {
		s.Set(i, i, s.At(i, i)+complex(float64(n), 0))
	}
	return s
}

// MustMul is matrix.Mul that fails the test on error.
func MustMul(t *testing.T, a, b *mat.CDense) *mat.CDense {
	t.Helper()
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	return c
}

// requireClose fails unless max|a-b| ≤ eps.
func requireClose(t *testing.T, a, b *mat.CDense, eps float64) {
	t.Helper()
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.LessOrEqual(t, d, eps)
}

// diag builds a complex diagonal matrix from real values.
func diag(vals []float64) *mat.CDense {
	n := len(vals)
	d := mat.NewCDense(n, n, nil)
	for i, v := range vals {
		d.Set(i, i, complex(v, 0))
	}
	return d
}

// requireEigenpairs checks H·V = V·Λ and Vᴴ·V = I.
func requireEigenpairs(t *testing.T, h *mat.CDense, vals []float64, v *mat.CDense) {
	t.Helper()
	requireClose(t, MustMul(t, h, v), MustMul(t, v, diag(vals)), 1e-8)
	n, _ := v.Dims()
	requireClose(t, MustMul(t, matrix.ConjTranspose(v), v), matrix.Identity(n), 1e-8)
}
