// SPDX-License-Identifier: MIT

package hamiltonian_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/hamiltonian"
	"github.com/dywu101/deeptb/matrix"
	"github.com/dywu101/deeptb/structure"
)

var kSamples = [][3]float64{{0, 0, 0}, {0.5, 0, 0}, {0.13, -0.27, 0.4}, {0.25, 0.5, 0}}

func TestHK_ChainTimeReversalEquivalence(t *testing.T) {
	const e0, hop = -0.3, 0.7
	oneSt, oneIn := chain(t, e0, hop, false)
	twoSt, twoIn := chain(t, e0, hop, true)
	one := MustAssemble(t, oneSt, oneIn)
	two := MustAssemble(t, twoSt, twoIn)

	h0, err := one.HK([3]float64{}, true)
	require.NoError(t, err)
	requireCloseC(t, h0, mat.NewCDense(2, 2, []complex128{e0, hop, hop, e0}), tol)

	h5, err := one.HK([3]float64{0.5, 0, 0}, true)
	require.NoError(t, err)
	requireCloseC(t, h5, mat.NewCDense(2, 2, []complex128{e0, -hop, -hop, e0}), tol)

	for _, k := range [][3]float64{{0, 0, 0}, {0.5, 0, 0}} {
		a, err := one.HK(k, true)
		require.NoError(t, err)
		b, err := two.HK(k, false)
		require.NoError(t, err)
		requireCloseC(t, a, b, tol)

		ra, err := one.Solve([][3]float64{k}, true, hamiltonian.WithUnit(hamiltonian.EV))
		require.NoError(t, err)
		rb, err := two.Solve([][3]float64{k}, false, hamiltonian.WithUnit(hamiltonian.EV))
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{e0 - hop, e0 + hop}, ra.Energies[0], tol)
		assert.InDeltaSlice(t, ra.Energies[0], rb.Energies[0], tol)
	}
}

func TestHK_MixedShellsTimeReversalEquivalence(t *testing.T) {
	oneWay := mixedBonds()
	st := MustStructure(t, []string{"Mo", "S", "S"}, mixedLayouts(), oneWay)
	in := randomIntegrals(t, st, 3, true, false)

	both := append([]structure.Bond(nil), oneWay...)
	bothIn := in
	bothIn.Hoppings = append([][]float64(nil), in.Hoppings...)
	bothIn.Overlaps = append([][]float64(nil), in.Overlaps...)
	for k, b := range oneWay {
		both = append(both, b.Reverse())
		bothIn.Hoppings = append(bothIn.Hoppings, reverseIntegrals(t, st.IndexMap(), b, in.Hoppings[k]))
		bothIn.Overlaps = append(bothIn.Overlaps, reverseIntegrals(t, st.IndexMap(), b, in.Overlaps[k]))
	}
	st2 := MustStructure(t, []string{"Mo", "S", "S"}, mixedLayouts(), both, structure.WithTimeReversal(false))

	one := MustAssemble(t, st, in)
	two := MustAssemble(t, st2, bothIn)
	for _, k := range kSamples {
		h1, err := one.HK(k, true)
		require.NoError(t, err)
		h2, err := two.HK(k, false)
		require.NoError(t, err)
		requireCloseC(t, h1, h2, 1e-12)

		s1, err := one.SK(k, true)
		require.NoError(t, err)
		s2, err := two.SK(k, false)
		require.NoError(t, err)
		requireCloseC(t, s1, s2, 1e-12)
	}
}

func TestHK_Hermitian(t *testing.T) {
	st := MustStructure(t, []string{"Mo", "S", "S"}, mixedLayouts(), mixedBonds())
	a := MustAssemble(t, st, randomIntegrals(t, st, 5, true, true))
	for _, k := range kSamples {
		h, err := a.HK(k, true)
		require.NoError(t, err)
		requireHermitian(t, h, 0)
		s, err := a.SK(k, true)
		require.NoError(t, err)
		requireHermitian(t, s, 0)

		h2, err := a.HKSpin(k, true)
		require.NoError(t, err)
		requireHermitian(t, h2, 1e-14)
		r, c := h2.Dims()
		assert.Equal(t, [2]int{2 * st.TotalOrbitals(), 2 * st.TotalOrbitals()}, [2]int{r, c})
	}
}

func TestSK_OrthogonalIsIdentity(t *testing.T) {
	st := MustStructure(t, []string{"Mo", "S", "S"}, mixedLayouts(), mixedBonds())
	a := MustAssemble(t, st, randomIntegrals(t, st, 7, false, false))
	for _, k := range kSamples {
		s, err := a.SK(k, true)
		require.NoError(t, err)
		requireCloseC(t, s, matrix.Identity(st.TotalOrbitals()), 0)
	}

	_, err := a.HKSpin([3]float64{}, true)
	assert.ErrorIs(t, err, hamiltonian.ErrNoSOCLambdas)
}

func TestHKSpin_Quadrants(t *testing.T) {
	st := MustStructure(t, []string{"Mo", "S", "S"}, mixedLayouts(), mixedBonds())
	a := MustAssemble(t, st, randomIntegrals(t, st, 9, false, true))
	k := [3]float64{0.1, 0.2, 0.3}
	h, err := a.HK(k, true)
	require.NoError(t, err)
	h2, err := a.HKSpin(k, true)
	require.NoError(t, err)

	n := st.TotalOrbitals()
	terms := a.SOC()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, 0, cmplx.Abs(h2.At(i, j)-h.At(i, j)-terms.Diag.At(i, j)), tol)
			assert.InDelta(t, 0, cmplx.Abs(h2.At(i, n+j)-terms.Up.At(i, j)), tol)
		}
	}
}
