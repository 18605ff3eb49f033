// SPDX-License-Identifier: MIT

package hamiltonian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/hamiltonian"
	"github.com/dywu101/deeptb/matrix"
	"github.com/dywu101/deeptb/orbital"
	"github.com/dywu101/deeptb/sk"
	"github.com/dywu101/deeptb/soc"
	"github.com/dywu101/deeptb/structure"
)

func TestAssemble_OnsiteShellDegenerate(t *testing.T) {
	st := MustStructure(t, []string{"Mo"}, mixedLayouts(), nil)
	a := MustAssemble(t, st, hamiltonian.Integrals{OnsiteEs: [][]float64{{-1, 2, 5}}})

	blocks := a.HamiltonianBlocks()
	require.Len(t, blocks, 1)
	want := []float64{-1, 2, 2, 2, 5, 5, 5, 5, 5}
	for i, e := range want {
		assert.Equal(t, e, blocks[0].Value.At(i, i))
	}
	r, c := blocks[0].Dims()
	assert.Equal(t, [2]int{9, 9}, [2]int{r, c})
	assert.Nil(t, a.OverlapBlocks())
	assert.True(t, a.Orthogonal())
}

func TestAssemble_StrainIsAdditive(t *testing.T) {
	layouts := map[string]orbital.Layout{"C": orbital.MustLayout("2s", "2p")}
	strain := []structure.Bond{bond(0, "C", 1, "H", structure.Translation{}, xhat)}
	st := MustStructure(t, []string{"C", "H"}, layouts, nil, structure.WithStrainBonds(strain))

	// slots: ss | sp | ps | pp(σ,π)
	in := hamiltonian.Integrals{
		OnsiteEs: [][]float64{{-5, 1}},
		StrainVs: [][]float64{{0.3, 0.2, 0.2, 0.7, 0.1}},
	}
	blk := MustAssemble(t, st, in).HamiltonianBlocks()[0].Value

	assert.InDelta(t, -5+0.3, blk.At(0, 0), tol)
	// p = (py, pz, px): along x only px couples to s, with the odd sign of Rotate
	assert.InDelta(t, -0.2, blk.At(0, 3), tol)
	assert.InDelta(t, -0.2, blk.At(3, 0), tol)
	assert.InDelta(t, 0, blk.At(0, 1), tol)
	assert.InDelta(t, 1+0.7, blk.At(3, 3), tol)
	assert.InDelta(t, 1+0.1, blk.At(1, 1), tol)
	assert.InDelta(t, 1+0.1, blk.At(2, 2), tol)
	assert.True(t, mat.EqualApprox(blk, blk.T(), tol))

	// nil StrainVs leaves the onsite block untouched
	plain := MustAssemble(t, st, hamiltonian.Integrals{OnsiteEs: [][]float64{{-5, 1}}}).HamiltonianBlocks()[0].Value
	assert.Equal(t, -5.0, plain.At(0, 0))
}

func TestAssemble_SwapSignRule(t *testing.T) {
	layouts := map[string]orbital.Layout{"S1": orbital.MustLayout("s"), "P1": orbital.MustLayout("p")}
	d := sk.Direction{0.48, 0.6, 0.64}
	neg := sk.Direction{-d[0], -d[1], -d[2]}
	bonds := []structure.Bond{
		bond(0, "S1", 1, "P1", structure.Translation{}, d),
		bond(1, "P1", 0, "S1", structure.Translation{}, d),
		bond(1, "P1", 0, "S1", structure.Translation{1, 0, 0}, neg),
	}
	st := MustStructure(t, []string{"S1", "P1"}, layouts, bonds)
	in := hamiltonian.Integrals{
		OnsiteEs: [][]float64{{0}, {0}},
		Hoppings: [][]float64{{1.3}, {1.3}, {1.3}},
	}
	blocks := MustAssemble(t, st, in).HamiltonianBlocks()[2:]
	sp, ps, psRev := blocks[0].Value, blocks[1].Value, blocks[2].Value

	// (s,p) block = (−1)^(0+1) · (p,s) blockᵀ at the same direction
	var want mat.Dense
	want.Scale(orbital.Parity(orbital.S, orbital.P), ps.T())
	assert.True(t, mat.EqualApprox(sp, &want, tol))

	// the physically reversed bond is the plain transpose
	assert.True(t, mat.EqualApprox(sp, psRev.T(), tol))

	// ⟨s|H|p_d⟩ = V_spσ for the p orbital along the bond
	assert.InDelta(t, 1.3, sp.At(0, 0)*d[1]+sp.At(0, 1)*d[2]+sp.At(0, 2)*d[0], tol)
}

func TestAssemble_OverlapBlocks(t *testing.T) {
	st, in := chain(t, 0, -1, false)
	in.Overlaps = [][]float64{{0.2}}
	a := MustAssemble(t, st, in)
	require.False(t, a.Orthogonal())

	s := a.OverlapBlocks()
	require.Len(t, s, 3)
	assert.Equal(t, 1.0, s[0].Value.At(0, 0), "onsite overlap defaults to 1")
	assert.InDelta(t, 0.2, s[2].Value.At(0, 0), tol)

	in.OnsiteSs = [][]float64{{0.9}, {0.9}}
	a = MustAssemble(t, st, in)
	assert.Equal(t, 0.9, a.OverlapBlocks()[1].Value.At(0, 0))

	orth := MustAssemble(t, st, in, hamiltonian.WithBasis(hamiltonian.BasisOrthogonal))
	assert.True(t, orth.Orthogonal())
	assert.Nil(t, orth.OverlapBlocks())
}

func TestAssemble_Errors(t *testing.T) {
	st, in := chain(t, 0, -1, false)

	_, err := hamiltonian.Assemble(nil, in)
	assert.ErrorIs(t, err, hamiltonian.ErrNilStructure)

	bad := in
	bad.Hoppings = [][]float64{{1, 2}}
	_, err = hamiltonian.Assemble(st, bad)
	assert.ErrorIs(t, err, hamiltonian.ErrIntegralLength)

	bad = in
	bad.OnsiteEs = [][]float64{{0}}
	_, err = hamiltonian.Assemble(st, bad)
	assert.ErrorIs(t, err, hamiltonian.ErrIntegralLength)

	bad = in
	bad.Overlaps = [][]float64{}
	_, err = hamiltonian.Assemble(st, bad)
	assert.ErrorIs(t, err, hamiltonian.ErrIntegralLength)

	_, err = hamiltonian.Assemble(st, in, hamiltonian.WithBasis(hamiltonian.BasisNonOrthogonal))
	assert.ErrorIs(t, err, hamiltonian.ErrMissingOverlap)

	bad = in
	bad.SOCLambdas = [][]float64{{0.1}, {0.1}}
	_, err = hamiltonian.Assemble(st, bad)
	assert.ErrorIs(t, err, soc.ErrNotSOCCapable)

	bad = in
	bad.StrainVs = [][]float64{{1}}
	_, err = hamiltonian.Assemble(st, bad)
	assert.ErrorIs(t, err, hamiltonian.ErrIntegralLength)

	assert.Panics(t, func() { hamiltonian.WithSOCCache(nil) })
	assert.Panics(t, func() { hamiltonian.WithBasis(hamiltonian.Basis(7)) })
}

func TestAssemble_NonFiniteIntegrals(t *testing.T) {
	st, in := chain(t, 0, -1, false)
	nan, inf := math.NaN(), math.Inf(1)
	cases := []struct {
		name string
		edit func(in *hamiltonian.Integrals)
	}{
		{"OnsiteNaN", func(in *hamiltonian.Integrals) { in.OnsiteEs = [][]float64{{0}, {nan}} }},
		{"HoppingNaN", func(in *hamiltonian.Integrals) { in.Hoppings = [][]float64{{nan}} }},
		{"OverlapInf", func(in *hamiltonian.Integrals) { in.Overlaps = [][]float64{{inf}} }},
		{"OnsiteOverlapInf", func(in *hamiltonian.Integrals) {
			in.Overlaps = [][]float64{{0.1}}
			in.OnsiteSs = [][]float64{{1}, {-inf}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := in
			tc.edit(&bad)
			_, err := hamiltonian.Assemble(st, bad)
			assert.ErrorIs(t, err, matrix.ErrNaNInf)
		})
	}
}
