// SPDX-License-Identifier: MIT

package hamiltonian_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/hamiltonian"
	"github.com/dywu101/deeptb/matrix"
	"github.com/dywu101/deeptb/orbital"
	"github.com/dywu101/deeptb/sk"
	"github.com/dywu101/deeptb/structure"
)

const tol = 1e-10

var xhat = sk.Direction{1, 0, 0}

func onsite(a int, typ string) structure.Bond {
	return structure.Bond{I: a, TypeI: typ, J: a, TypeJ: typ}
}

func bond(i int, ti string, j int, tj string, r structure.Translation, dir sk.Direction) structure.Bond {
	return structure.Bond{I: i, TypeI: ti, J: j, TypeJ: tj, R: r, Dir: dir, Dist: 1}
}

// MustStructure is structure.New that fails the test on error.
func MustStructure(t testing.TB, symbols []string, layouts map[string]orbital.Layout, hopping []structure.Bond, opts ...structure.Option) *structure.Structure {
	t.Helper()
	var ons []structure.Bond
	for a, s := range symbols {
		if _, ok := layouts[s]; ok {
			ons = append(ons, onsite(a, s))
		}
	}
	st, err := structure.New(symbols, layouts, ons, hopping, opts...)
	require.NoError(t, err)
	return st
}

// MustAssemble is hamiltonian.Assemble that fails the test on error.
func MustAssemble(t testing.TB, st *structure.Structure, in hamiltonian.Integrals, opts ...hamiltonian.AssembleOption) *hamiltonian.Assembly {
	t.Helper()
	a, err := hamiltonian.Assemble(st, in, opts...)
	require.NoError(t, err)
	return a
}

// chain returns the two-atom, one-s-shell chain: atom 0 hops to atom 1 in
// the next cell. twoWay also enumerates the reverse bond.
func chain(t *testing.T, e0, hop float64, twoWay bool) (*structure.Structure, hamiltonian.Integrals) {
	t.Helper()
	layouts := map[string]orbital.Layout{"A": orbital.MustLayout("1s")}
	bonds := []structure.Bond{bond(0, "A", 1, "A", structure.Translation{1, 0, 0}, xhat)}
	in := hamiltonian.Integrals{OnsiteEs: [][]float64{{e0}, {e0}}, Hoppings: [][]float64{{hop}}}
	if twoWay {
		bonds = append(bonds, bonds[0].Reverse())
		in.Hoppings = append(in.Hoppings, []float64{hop})
	}
	st := MustStructure(t, []string{"A", "A"}, layouts, bonds, structure.WithTimeReversal(!twoWay))
	return st, in
}

// mixedLayouts is a two-type s/p/d fixture.
func mixedLayouts() map[string]orbital.Layout {
	return map[string]orbital.Layout{
		"Mo": orbital.MustLayout("4s", "4p", "4d"),
		"S":  orbital.MustLayout("3s", "3p"),
	}
}

// mixedBonds returns bonds of a Mo-S-S triangle in a 2D cell, one
// direction per pair.
func mixedBonds() []structure.Bond {
	n := func(x, y, z float64) sk.Direction {
		d := mat.NewVecDense(3, []float64{x, y, z})
		d.ScaleVec(1/d.Norm(2), d)
		return sk.Direction{d.AtVec(0), d.AtVec(1), d.AtVec(2)}
	}
	return []structure.Bond{
		bond(0, "Mo", 1, "S", structure.Translation{}, n(1, 1, 1)),
		bond(0, "Mo", 2, "S", structure.Translation{0, 1, 0}, n(1, -1, 0.5)),
		bond(1, "S", 2, "S", structure.Translation{}, n(0.2, -1, -0.3)),
		bond(0, "Mo", 0, "Mo", structure.Translation{1, 0, 0}, n(1, 0, 0)),
		bond(2, "S", 1, "S", structure.Translation{-1, 1, 0}, n(-0.7, 0.4, 0.1)),
	}
}

// randomIntegrals fills every vector of st with deterministic values.
func randomIntegrals(t testing.TB, st *structure.Structure, seed int64, overlaps, socl bool) hamiltonian.Integrals {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := st.IndexMap()
	vec := func(n int, scale float64) []float64 {
		v := make([]float64, n)
		for i := range v {
			v[i] = scale * (rng.Float64() - 0.5)
		}
		return v
	}
	var in hamiltonian.Integrals
	for _, b := range st.OnsiteBonds() {
		n, err := m.OnsiteLen(b.TypeI)
		require.NoError(t, err)
		in.OnsiteEs = append(in.OnsiteEs, vec(n, 2))
		if socl {
			in.SOCLambdas = append(in.SOCLambdas, vec(n, 0.2))
		}
	}
	for _, b := range st.HoppingBonds() {
		n, err := m.BondLen(b.TypeI, b.TypeJ)
		require.NoError(t, err)
		in.Hoppings = append(in.Hoppings, vec(n, 1))
		if overlaps {
			in.Overlaps = append(in.Overlaps, vec(n, 0.1))
		}
	}
	return in
}

// reverseIntegrals re-indexes a bond's integral vector for the reverse
// bond: slot (sb, sa) of (B,A) takes slot (sa, sb) of (A,B).
func reverseIntegrals(t *testing.T, m *orbital.IndexMap, b structure.Bond, v []float64) []float64 {
	t.Helper()
	la, _ := m.Layout(b.TypeI)
	lb, _ := m.Layout(b.TypeJ)
	n, err := m.BondLen(b.TypeJ, b.TypeI)
	require.NoError(t, err)
	out := make([]float64, n)
	for sa := 0; sa < la.Len(); sa++ {
		for sb := 0; sb < lb.Len(); sb++ {
			fwd, err := m.BondSpan(b.TypeI, b.TypeJ, sa, sb)
			require.NoError(t, err)
			rev, err := m.BondSpan(b.TypeJ, b.TypeI, sb, sa)
			require.NoError(t, err)
			copy(out[rev.Start:rev.End], v[fwd.Start:fwd.End])
		}
	}
	return out
}

// requireHermitian fails unless m is Hermitian within eps.
func requireHermitian(t *testing.T, m *mat.CDense, eps float64) {
	t.Helper()
	require.NoError(t, matrix.ValidateHermitian(m, eps))
}

// requireCloseC fails unless max|a-b| ≤ eps.
func requireCloseC(t *testing.T, a, b *mat.CDense, eps float64) {
	t.Helper()
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.LessOrEqual(t, d, eps)
}
