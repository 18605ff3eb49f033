package sk_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/orbital"
	"github.com/dywu101/deeptb/sk"
)

const tol = 1e-12

func randomDirection(rng *rand.Rand) sk.Direction {
	for {
		v := sk.Direction{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		if n > 1e-3 {
			return sk.Direction{v[0] / n, v[1] / n, v[2] / n}
		}
	}
}

func mustRotate(t *testing.T, lo, hi orbital.Shell, v []float64, d sk.Direction) *mat.Dense {
	t.Helper()
	m, err := sk.Rotate(lo, hi, v, d)
	require.NoError(t, err)
	return m
}

func singularValues(m mat.Matrix) []float64 {
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDNone) {
		return nil
	}
	vals := svd.Values(nil)
	sort.Float64s(vals)
	return vals
}

func TestRotate_Shapes(t *testing.T) {
	d := sk.Direction{0, 0, 1}
	cases := []struct {
		lo, hi     orbital.Shell
		rows, cols int
	}{
		{orbital.S, orbital.S, 1, 1},
		{orbital.S, orbital.P, 3, 1},
		{orbital.S, orbital.D, 5, 1},
		{orbital.P, orbital.P, 3, 3},
		{orbital.P, orbital.D, 5, 3},
		{orbital.D, orbital.D, 5, 5},
	}
	for _, tc := range cases {
		v := make([]float64, sk.NumIntegrals(tc.lo, tc.hi))
		m := mustRotate(t, tc.lo, tc.hi, v, d)
		r, c := m.Dims()
		assert.Equal(t, tc.rows, r, "%v%v rows", tc.lo, tc.hi)
		assert.Equal(t, tc.cols, c, "%v%v cols", tc.lo, tc.hi)
	}
}

func TestRotate_AlongZ(t *testing.T) {
	z := sk.Direction{0, 0, 1}
	const s, p, d = 0.7, -0.3, 0.11

	// p on site i, s on site j, bond i->j along +z: <pz|H|s> = -Vspσ.
	sp := mustRotate(t, orbital.S, orbital.P, []float64{s}, z)
	assert.InDelta(t, 0, sp.At(0, 0), tol)
	assert.InDelta(t, -s, sp.At(1, 0), tol)
	assert.InDelta(t, 0, sp.At(2, 0), tol)

	pp := mustRotate(t, orbital.P, orbital.P, []float64{s, p}, z)
	assert.InDeltaSlice(t, []float64{p, s, p}, []float64{pp.At(0, 0), pp.At(1, 1), pp.At(2, 2)}, tol)

	dd := mustRotate(t, orbital.D, orbital.D, []float64{s, p, d}, z)
	want := []float64{d, p, s, p, d} // xy yz z2 xz x2-y2
	for i := 0; i < 5; i++ {
		assert.InDelta(t, want[i], dd.At(i, i), tol, "diag %d", i)
		for j := 0; j < 5; j++ {
			if i != j {
				assert.InDelta(t, 0, dd.At(i, j), tol, "off-diag %d,%d", i, j)
			}
		}
	}

	pd := mustRotate(t, orbital.P, orbital.D, []float64{s, p}, z)
	// rows d, cols p (py pz px): d on site i, p on site j, odd parity.
	assert.InDelta(t, -s, pd.At(2, 1), tol)
	assert.InDelta(t, -p, pd.At(1, 0), tol)
	assert.InDelta(t, -p, pd.At(3, 2), tol)
}

func TestRotate_AlongX(t *testing.T) {
	x := sk.Direction{1, 0, 0}
	sd := mustRotate(t, orbital.S, orbital.D, []float64{1}, x)
	assert.InDelta(t, math.Sqrt(3)/2, sd.At(4, 0), tol)
	assert.InDelta(t, -0.5, sd.At(2, 0), tol)
}

// The rotated block is R_hi·D·R_loᵀ with orthogonal R, so its singular
// values are the bond-frame integrals whatever the direction.
func TestRotate_SingularValuesInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const s, p, d = 1.3, -0.4, 0.25

	cases := []struct {
		lo, hi orbital.Shell
		v      []float64
		want   []float64
	}{
		{orbital.S, orbital.P, []float64{s}, []float64{s}},
		{orbital.S, orbital.D, []float64{s}, []float64{s}},
		{orbital.P, orbital.P, []float64{s, p}, []float64{math.Abs(p), math.Abs(p), s}},
		{orbital.P, orbital.D, []float64{s, p}, []float64{math.Abs(p), math.Abs(p), s}},
		{orbital.D, orbital.D, []float64{s, p, d}, []float64{d, d, math.Abs(p), math.Abs(p), s}},
	}
	for trial := 0; trial < 25; trial++ {
		dir := randomDirection(rng)
		for _, tc := range cases {
			m := mustRotate(t, tc.lo, tc.hi, tc.v, dir)
			want := append([]float64(nil), tc.want...)
			sort.Float64s(want)
			assert.InDeltaSlice(t, want, singularValues(m), 1e-10, "%v%v dir=%v", tc.lo, tc.hi, dir)
		}
	}
}

func TestRotate_SameShellSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	dir := randomDirection(rng)
	for _, sh := range []orbital.Shell{orbital.P, orbital.D} {
		v := []float64{0.9, -0.2, 0.05}[:sk.NumIntegrals(sh, sh)]
		m := mustRotate(t, sh, sh, v, dir)
		assert.True(t, mat.EqualApprox(m, m.T(), tol), "%v block must be symmetric", sh)
	}
}

// Reversing the bond direction flips the sign of odd-parity pairs only.
func TestRotate_InversionParity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	dir := randomDirection(rng)
	neg := sk.Direction{-dir[0], -dir[1], -dir[2]}

	sp := mustRotate(t, orbital.S, orbital.P, []float64{0.5}, dir)
	spNeg := mustRotate(t, orbital.S, orbital.P, []float64{0.5}, neg)
	var sum mat.Dense
	sum.Add(sp, spNeg)
	assert.InDelta(t, 0, mat.Norm(&sum, 2), tol)

	pd := mustRotate(t, orbital.P, orbital.D, []float64{0.5, 0.2}, dir)
	pdNeg := mustRotate(t, orbital.P, orbital.D, []float64{0.5, 0.2}, neg)
	sum.Reset()
	sum.Add(pd, pdNeg)
	assert.InDelta(t, 0, mat.Norm(&sum, 2), tol)

	sd := mustRotate(t, orbital.S, orbital.D, []float64{0.5}, dir)
	sdNeg := mustRotate(t, orbital.S, orbital.D, []float64{0.5}, neg)
	assert.True(t, mat.EqualApprox(sd, sdNeg, tol))
}

func TestRotate_Errors(t *testing.T) {
	z := sk.Direction{0, 0, 1}

	_, err := sk.Rotate(orbital.P, orbital.S, []float64{1}, z)
	assert.ErrorIs(t, err, sk.ErrShellOrder)

	_, err = sk.Rotate(orbital.P, orbital.P, []float64{1}, z)
	assert.ErrorIs(t, err, sk.ErrIntegralCount)

	_, err = sk.Rotate(orbital.S, orbital.Shell(9), []float64{1}, z)
	assert.ErrorIs(t, err, sk.ErrUnsupportedShell)
}
