// SPDX-License-Identifier: MIT

package modelfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dywu101/deeptb/hamiltonian"
	"github.com/dywu101/deeptb/internal/modelfile"
)

const chainYAML = `
unit: ev
orbitals:
  A: [1s]
crystal:
  preset: chain
  species: [A]
  length: 1.0
cutoff: 1.1
onsite:
  A: [0.5]
hoppings:
  A-A:
    values:
      1s-1s: [-1.0]
kpath:
  labels: [G, X]
  density: 4
`

// MustParse is modelfile.Parse that fails the test on error.
func MustParse(t *testing.T, doc string) *modelfile.File {
	t.Helper()
	f, err := modelfile.Parse([]byte(doc))
	require.NoError(t, err)
	return f
}

func TestChainEndToEnd(t *testing.T) {
	f := MustParse(t, chainYAML)
	st, err := f.Structure()
	require.NoError(t, err)
	in, err := f.Integrals(st)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5}}, in.OnsiteEs)
	assert.Equal(t, [][]float64{{-1}}, in.Hoppings)
	assert.Nil(t, in.Overlaps)
	assert.Nil(t, in.SOCLambdas)

	s, err := f.KPoints()
	require.NoError(t, err)
	require.Len(t, s.KPoints, 5)
	assert.Equal(t, map[int]string{0: "G", 4: "X"}, s.Labels)

	unit, err := f.EnergyUnit()
	require.NoError(t, err)
	a, err := hamiltonian.Assemble(st, in)
	require.NoError(t, err)
	r, err := a.Solve(s.KPoints, st.TimeReversal(), hamiltonian.WithUnit(unit))
	require.NoError(t, err)
	// ε(k) = ε₀ + 2t·cos(2πk)
	assert.InDelta(t, -1.5, r.Energies[0][0], 1e-10)
	assert.InDelta(t, 2.5, r.Energies[4][0], 1e-10)
}

func TestPowerLawAndReversedTable(t *testing.T) {
	f := MustParse(t, `
unit: hartree
orbitals:
  Ga: [4s, 4p]
  As: [4s]
crystal:
  preset: dimer
  species: [Ga, As]
  length: 2.0
cutoff: 2.5
onsite:
  Ga: [0.1, 0.2]
  As: [0.3]
hoppings:
  As-Ga:
    model: powerlaw
    r0: 1.0
    eta: 2
    values:
      4s-4s: [-4.0]
      4s-4p: [8.0]
overlaps:
  Ga-As:
    values:
      4s-4s: [0.1]
      4p-4s: [0.2]
soc:
  Ga: [0.0, 0.01]
`)
	st, err := f.Structure()
	require.NoError(t, err)
	require.Len(t, st.HoppingBonds(), 1)
	require.Equal(t, "Ga", st.HoppingBonds()[0].TypeI)

	in, err := f.Integrals(st)
	require.NoError(t, err)
	// Ga(4s,4p) × As(4s): slot order 4s-4s, 4p-4s; (1/2)² scaling.
	assert.InDeltaSlice(t, []float64{-1, 2}, in.Hoppings[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0.1, 0.2}, in.Overlaps[0], 1e-12)
	assert.Nil(t, in.OnsiteSs)
	assert.Equal(t, [][]float64{{0, 0.01}, {0}}, in.SOCLambdas)

	a, err := hamiltonian.Assemble(st, in)
	require.NoError(t, err)
	assert.False(t, a.Orthogonal())
	assert.True(t, a.HasSOC())
}

func TestStrainExpansion(t *testing.T) {
	f := MustParse(t, `
orbitals:
  B: [2s, 2p]
crystal:
  preset: honeycomb
  species: [B, N]
  length: 1.45
cutoff: 1.5
strain_cutoff: 1.5
onsite:
  B: [-0.3, 0.1]
hoppings:
  B-B:
    values: {2s-2s: [-0.1], 2s-2p: [0.1], 2p-2p: [0.2, -0.05]}
strain:
  B-N:
    values: {2s-2s: [0.01], 2s-2p: [0.02], 2p-2p: [0.03, 0.04]}
`)
	st, err := f.Structure()
	require.NoError(t, err)
	in, err := f.Integrals(st)
	require.NoError(t, err)
	require.Len(t, in.StrainVs, 3)
	// ss | sp | ps | pp(σ,π)
	assert.Equal(t, []float64{0.01, 0.02, 0.02, 0.03, 0.04}, in.StrainVs[0])
	assert.Empty(t, in.Hoppings)
}

func TestExplicitCrystalAndMesh(t *testing.T) {
	f := MustParse(t, `
orbitals:
  A: [s]
crystal:
  cell: [[2, 0, 0], [0, 2, 0], [0, 0, 10]]
  periodic: [true, true, false]
  fractional: true
  sites:
    - {symbol: A, pos: [0, 0, 0]}
cutoff: 2.1
time_reversal: false
onsite: {A: [0]}
hoppings:
  A-A: {values: {s-s: [-1]}}
kmesh: [2, 2, 1]
`)
	st, err := f.Structure()
	require.NoError(t, err)
	assert.False(t, st.TimeReversal())
	assert.Len(t, st.HoppingBonds(), 4)

	s, err := f.KPoints()
	require.NoError(t, err)
	assert.Len(t, s.KPoints, 4)
	assert.Nil(t, s.Labels)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(chainYAML), 0o600))
	f, err := modelfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ev", f.Unit)

	_, err = modelfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"Empty", ``},
		{"UnknownKey", chainYAML + "\nbogus: 1\n"},
		{"BadUnit", "unit: kcal\norbitals: {A: [s]}\nhoppings: {A-A: {values: {s-s: [1]}}}\n"},
		{"NoOrbitals", "hoppings: {A-A: {values: {s-s: [1]}}}\n"},
		{"NoHoppings", "orbitals: {A: [s]}\n"},
		{"BadModel", "orbitals: {A: [s]}\nhoppings: {A-A: {model: cubic, values: {s-s: [1]}}}\n"},
		{"PowerLawNoR0", "orbitals: {A: [s]}\nhoppings: {A-A: {model: powerlaw, values: {s-s: [1]}}}\n"},
		{"PathAndMesh", "orbitals: {A: [s]}\nhoppings: {A-A: {values: {s-s: [1]}}}\nkpath: {labels: [G, X]}\nkmesh: [1, 1, 1]\n"},
		{"ShortMesh", "orbitals: {A: [s]}\nhoppings: {A-A: {values: {s-s: [1]}}}\nkmesh: [1, 1]\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := modelfile.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, modelfile.ErrInvalid)
		})
	}
}

func TestExpansionErrors(t *testing.T) {
	base := func() *modelfile.File { return MustParse(t, chainYAML) }

	f := base()
	f.Onsite = map[string][]float64{}
	st, err := f.Structure()
	require.NoError(t, err)
	_, err = f.Integrals(st)
	assert.ErrorIs(t, err, modelfile.ErrMissingParameter)

	f = base()
	f.Onsite["A"] = []float64{1, 2}
	_, err = f.Integrals(st)
	assert.ErrorIs(t, err, modelfile.ErrLength)

	f = base()
	f.Hoppings["A-A"].Values["1s-1s"] = []float64{1, 2}
	_, err = f.Integrals(st)
	assert.ErrorIs(t, err, modelfile.ErrLength)

	f = base()
	f.Hoppings = map[string]modelfile.PairParams{"A-B": {}}
	_, err = f.Integrals(st)
	assert.ErrorIs(t, err, modelfile.ErrMissingParameter)

	f = base()
	f.Crystal.Species = []string{"A", "A"}
	_, err = f.Structure()
	assert.ErrorIs(t, err, modelfile.ErrInvalid)

	f = base()
	f.Crystal.Preset = "fcc"
	_, err = f.Structure()
	assert.ErrorIs(t, err, modelfile.ErrInvalid)

	f = base()
	f.Crystal.Preset = ""
	_, err = f.KPoints()
	assert.ErrorIs(t, err, modelfile.ErrInvalid)
}
