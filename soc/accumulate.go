// SPDX-License-Identifier: MIT

package soc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/structure"
)

// Terms are the structure-wide SOC quadrants, each N×N.
type Terms struct {
	Diag *mat.CDense
	Up   *mat.CDense
}

// Capable reports whether any orbital-owning atom of st has a shell with
// l > 0.
func Capable(st *structure.Structure) bool {
	for a := 0; a < st.NumAtoms(); a++ {
		if l, ok := st.Layout(a); ok && l.MaxL() > 0 {
			return true
		}
	}
	return false
}

// Accumulate scales each atom's cached per-shell quadrants by its λ values
// and sums them into N×N matrices, zero-initialised once per call.
//
// Implementation:
//   - Stage 1: reject structures with no l > 0 shell (ErrNotSOCCapable).
//   - Stage 2: for every atom owning orbitals, fetch its AtomicPair from
//     cache and add λ_s·block_s into the atom's diagonal range, shell by
//     shell.
//
// Inputs:
//   - st: the structure.
//   - lambdas: per-atom λ vectors, indexed by atom (nil for environment-only
//     atoms), one value per shell in layout order.
//   - cache: shared quadrant cache; nil uses a private one.
//
// Errors:
//   - ErrNotSOCCapable, ErrMissingLambdas, ErrLambdaLength.
func Accumulate(st *structure.Structure, lambdas [][]float64, cache *Cache) (*Terms, error) {
	if !Capable(st) {
		return nil, fmt.Errorf("Accumulate: %w", ErrNotSOCCapable)
	}
	if cache == nil {
		cache = NewCache()
	}
	if len(lambdas) != st.NumAtoms() {
		return nil, fmt.Errorf("Accumulate: %d lambda vectors for %d atoms: %w", len(lambdas), st.NumAtoms(), ErrLambdaLength)
	}

	n := st.TotalOrbitals()
	t := &Terms{Diag: mat.NewCDense(n, n, nil), Up: mat.NewCDense(n, n, nil)}
	for a := 0; a < st.NumAtoms(); a++ {
		l, ok := st.Layout(a)
		if !ok {
			continue
		}
		lam := lambdas[a]
		if lam == nil {
			return nil, fmt.Errorf("Accumulate: atom %d (%s): %w", a, st.Symbol(a), ErrMissingLambdas)
		}
		if len(lam) != l.Len() {
			return nil, fmt.Errorf("Accumulate: atom %d (%s): got %d, want %d: %w", a, st.Symbol(a), len(lam), l.Len(), ErrLambdaLength)
		}

		pair := cache.Get(st.Symbol(a), l)
		base := st.Range(a).Start
		for s := 0; s < l.Len(); s++ {
			sh := l.ShellAt(s).Shell
			if sh.L() == 0 || lam[s] == 0 {
				continue
			}
			scale := complex(lam[s], 0)
			off := l.Offset(s)
			for i := off; i < off+sh.Count(); i++ {
				for j := off; j < off+sh.Count(); j++ {
					t.Diag.Set(base+i, base+j, t.Diag.At(base+i, base+j)+scale*pair.Diag.At(i, j))
					t.Up.Set(base+i, base+j, t.Up.At(base+i, base+j)+scale*pair.Up.At(i, j))
				}
			}
		}
	}
	return t, nil
}
