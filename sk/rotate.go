// SPDX-License-Identifier: MIT

package sk

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/orbital"
)

// Direction is a unit bond vector (direction cosines l, m, n) pointing
// from the first site to the second.
type Direction [3]float64

// formula writes E_{lo_b, hi_a}(l,m,n), the standard Slater-Koster
// element between orbital b of the lower shell on the first site and
// orbital a of the higher shell on the second site, into dst[b][a].
type formula func(dst *mat.Dense, v []float64, l, m, n float64)

// table is indexed [lo][hi]; entries with lo > hi stay nil.
var table = [orbital.NumShells][orbital.NumShells]formula{
	orbital.S: {orbital.S: ssFormula, orbital.P: spFormula, orbital.D: sdFormula},
	orbital.P: {orbital.P: ppFormula, orbital.D: pdFormula},
	orbital.D: {orbital.D: ddFormula},
}

// Rotate returns the sub-block of a two-centre integral between a shell of
// angular momentum hi on site i and a shell of angular momentum lo on
// site j, with dir pointing from i to j.
//
// Implementation:
//   - Stage 1: validate lo ≤ hi and len(values) == orbital.PairWidth(lo, hi).
//   - Stage 2: evaluate the canonical table entry T (lo×hi orbitals).
//   - Stage 3: return (-1)^(l_lo+l_hi) · Tᵀ, shape (2·hi+1) × (2·lo+1).
//
// Inputs:
//   - lo, hi: shells with lo.L() ≤ hi.L().
//   - values: σ, π, δ integrals, min(l)+1 of them.
//   - dir: unit direction cosines; normalisation is the caller's duty.
//
// Returns:
//   - *mat.Dense with rows indexing hi orbitals and columns lo orbitals.
//
// Errors:
//   - ErrShellOrder, ErrIntegralCount, ErrUnsupportedShell.
//
// Notes:
//   - For a bond from an l_i ≥ l_j shell the result is placed as is; for
//     l_i < l_j the caller transposes and applies the parity sign, which
//     recovers T itself.
func Rotate(lo, hi orbital.Shell, values []float64, dir Direction) (*mat.Dense, error) {
	if !lo.Valid() || !hi.Valid() {
		return nil, fmt.Errorf("Rotate(%v,%v): %w", lo, hi, ErrUnsupportedShell)
	}
	if lo.L() > hi.L() {
		return nil, fmt.Errorf("Rotate(%v,%v): %w", lo, hi, ErrShellOrder)
	}
	if w := orbital.PairWidth(lo, hi); len(values) != w {
		return nil, fmt.Errorf("Rotate(%v,%v): got %d values, want %d: %w", lo, hi, len(values), w, ErrIntegralCount)
	}

	canon := mat.NewDense(lo.Count(), hi.Count(), nil)
	table[lo][hi](canon, values, dir[0], dir[1], dir[2])

	var out mat.Dense
	out.Scale(orbital.Parity(lo, hi), canon.T())
	return &out, nil
}

// NumIntegrals is orbital.PairWidth, re-exported for integral producers.
func NumIntegrals(a, b orbital.Shell) int { return orbital.PairWidth(a, b) }
