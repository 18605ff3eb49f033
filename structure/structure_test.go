// SPDX-License-Identifier: MIT

package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dywu101/deeptb/orbital"
	"github.com/dywu101/deeptb/sk"
	"github.com/dywu101/deeptb/structure"
)

func onsiteBond(a int, typ string) structure.Bond {
	return structure.Bond{I: a, TypeI: typ, J: a, TypeJ: typ}
}

func hop(i int, ti string, j int, tj string, r structure.Translation, dir sk.Direction, d float64) structure.Bond {
	return structure.Bond{I: i, TypeI: ti, J: j, TypeJ: tj, R: r, Dir: dir, Dist: d}
}

// MustHBN returns a B-N-B chain with a layoutless H environment atom.
func MustHBN(t *testing.T, opts ...structure.Option) *structure.Structure {
	t.Helper()
	layouts := map[string]orbital.Layout{
		"B": orbital.MustLayout("2s", "2p"),
		"N": orbital.MustLayout("2s", "2p", "d*"),
	}
	symbols := []string{"B", "N", "H", "B"}
	onsite := []structure.Bond{onsiteBond(0, "B"), onsiteBond(1, "N"), onsiteBond(3, "B")}
	hopping := []structure.Bond{
		hop(0, "B", 1, "N", structure.Translation{}, sk.Direction{1, 0, 0}, 1.4),
		hop(1, "N", 3, "B", structure.Translation{}, sk.Direction{1, 0, 0}, 1.4),
	}
	s, err := structure.New(symbols, layouts, onsite, hopping, opts...)
	require.NoError(t, err)
	return s
}

func TestNew_RangesPartition(t *testing.T) {
	s := MustHBN(t)

	assert.Equal(t, 4+9+0+4, s.TotalOrbitals())
	want := []structure.Range{{0, 4}, {4, 13}, {13, 13}, {13, 17}}
	assert.Equal(t, want, s.Ranges())

	// ranges are contiguous, disjoint and cover [0, N)
	next := 0
	for a := 0; a < s.NumAtoms(); a++ {
		r := s.Range(a)
		assert.Equal(t, next, r.Start)
		next = r.End
	}
	assert.Equal(t, s.TotalOrbitals(), next)

	_, ok := s.Layout(2)
	assert.False(t, ok)
	assert.Equal(t, -1, s.OnsiteBondOf(2))
	assert.Equal(t, 2, s.OnsiteBondOf(3))
	assert.True(t, s.TimeReversal())
}

func TestNew_Errors(t *testing.T) {
	layouts := map[string]orbital.Layout{"C": orbital.MustLayout("s", "p")}
	x := sk.Direction{1, 0, 0}
	cases := []struct {
		name    string
		symbols []string
		onsite  []structure.Bond
		hopping []structure.Bond
		opts    []structure.Option
		want    error
	}{
		{"NoAtoms", nil, nil, nil, nil, structure.ErrNoAtoms},
		{"OnlyEnvironmentAtoms", []string{"X", "H"}, nil, nil, nil, structure.ErrNoOrbitals},
		{"OnsiteWithR", []string{"C"}, []structure.Bond{{I: 0, TypeI: "C", J: 0, TypeJ: "C", R: structure.Translation{1, 0, 0}}}, nil, nil, structure.ErrBadBond},
		{"MissingOnsite", []string{"C", "C"}, []structure.Bond{onsiteBond(0, "C")}, nil, nil, structure.ErrBadBond},
		{"DuplicateOnsite", []string{"C"}, []structure.Bond{onsiteBond(0, "C"), onsiteBond(0, "C")}, nil, nil, structure.ErrBadBond},
		{"OnsiteTypeMismatch", []string{"C"}, []structure.Bond{onsiteBond(0, "Si")}, nil, nil, structure.ErrTypeMismatch},
		{"HoppingAtomIndex", []string{"C"}, []structure.Bond{onsiteBond(0, "C")},
			[]structure.Bond{hop(0, "C", 5, "C", structure.Translation{}, x, 1)}, nil, structure.ErrAtomIndex},
		{"HoppingIsOnsite", []string{"C"}, []structure.Bond{onsiteBond(0, "C")},
			[]structure.Bond{hop(0, "C", 0, "C", structure.Translation{}, x, 0)}, nil, structure.ErrBadBond},
		{"HoppingTypeMismatch", []string{"C", "C"}, []structure.Bond{onsiteBond(0, "C"), onsiteBond(1, "C")},
			[]structure.Bond{hop(0, "C", 1, "Si", structure.Translation{}, x, 1)}, nil, structure.ErrTypeMismatch},
		{"HoppingNotUnit", []string{"C", "C"}, []structure.Bond{onsiteBond(0, "C"), onsiteBond(1, "C")},
			[]structure.Bond{hop(0, "C", 1, "C", structure.Translation{}, sk.Direction{2, 0, 0}, 1)}, nil, structure.ErrBadDirection},
		{"HoppingToEnvironment", []string{"C", "H"}, []structure.Bond{onsiteBond(0, "C")},
			[]structure.Bond{hop(0, "C", 1, "H", structure.Translation{}, x, 1)}, nil, structure.ErrUnknownType},
		{"StrainNeighbourMismatch", []string{"C", "H"}, []structure.Bond{onsiteBond(0, "C")}, nil,
			[]structure.Option{structure.WithStrainBonds([]structure.Bond{hop(0, "C", 1, "O", structure.Translation{}, x, 1)})},
			structure.ErrTypeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := structure.New(tc.symbols, layouts, tc.onsite, tc.hopping, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_StrainToEnvironmentAtom(t *testing.T) {
	strain := []structure.Bond{
		hop(1, "N", 2, "H", structure.Translation{0, 1, 0}, sk.Direction{0, 1, 0}, 1.0),
	}
	s := MustHBN(t, structure.WithStrainBonds(strain))
	require.Len(t, s.StrainBonds(), 1)
	assert.Equal(t, "H", s.StrainBonds()[0].TypeJ)
}

func TestNew_SharedIndexMap(t *testing.T) {
	layouts := map[string]orbital.Layout{"C": orbital.MustLayout("s")}
	m, err := orbital.NewIndexMap(layouts)
	require.NoError(t, err)

	s, err := structure.New([]string{"C"}, layouts, []structure.Bond{onsiteBond(0, "C")}, nil, structure.WithIndexMap(m))
	require.NoError(t, err)
	assert.Same(t, m, s.IndexMap())

	other := map[string]orbital.Layout{"C": orbital.MustLayout("s", "p")}
	_, err = structure.New([]string{"C"}, other, []structure.Bond{onsiteBond(0, "C")}, nil, structure.WithIndexMap(m))
	assert.ErrorIs(t, err, structure.ErrIndexMapMismatch)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { structure.WithIndexMap(nil) })
	assert.Panics(t, func() { structure.WithDirectionTolerance(0) })
}

func TestBond_Reverse(t *testing.T) {
	b := hop(0, "B", 1, "N", structure.Translation{1, -1, 0}, sk.Direction{0.6, 0.8, 0}, 2)
	r := b.Reverse()
	assert.Equal(t, 1, r.I)
	assert.Equal(t, "N", r.TypeI)
	assert.Equal(t, structure.Translation{-1, 1, 0}, r.R)
	assert.Equal(t, sk.Direction{-0.6, -0.8, 0}, r.Dir)
	assert.Equal(t, b, r.Reverse())
}

type fixedProvider struct{}

func (fixedProvider) Bonds() (hopping, onsite []structure.Bond) {
	return nil, []structure.Bond{onsiteBond(0, "Si")}
}
func (fixedProvider) Symbols() []string { return []string{"Si"} }
func (fixedProvider) Layouts() map[string]orbital.Layout {
	return map[string]orbital.Layout{"Si": orbital.MustLayout("3s", "3p")}
}

func TestFromProvider(t *testing.T) {
	s, err := structure.FromProvider(fixedProvider{}, structure.WithTimeReversal(false))
	require.NoError(t, err)
	assert.Equal(t, 4, s.TotalOrbitals())
	assert.False(t, s.TimeReversal())
}
