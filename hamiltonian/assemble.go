// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"

	"github.com/dywu101/deeptb/soc"
	"github.com/dywu101/deeptb/structure"
)

// Assembly holds the real-space blocks of one structure and integral set.
// Immutable after Assemble; safe for concurrent HK/SK/Solve calls.
type Assembly struct {
	st         *structure.Structure
	onsite     []Block
	hopping    []Block
	sOnsite    []Block
	sHopping   []Block
	soc        *soc.Terms
	orthogonal bool
}

// Assemble builds onsite, hopping, overlap and SOC terms.
//
// Implementation:
//   - Stage 1: resolve the basis (WithBasis) and validate every integral
//     vector length against the structure's index map.
//   - Stage 2: onsite blocks diag(E_shell) in onsite-bond order; every strain
//     bond adds its rotated correction into its owner's onsite block.
//   - Stage 3: one hopping block per hopping bond (parity placement rule).
//   - Stage 4 (non-orthogonal): overlap blocks with the identical rule, and
//     onsite overlap blocks diag(S_shell) (1 when OnsiteSs is nil).
//   - Stage 5 (SOCLambdas): soc.Accumulate with the shared cache.
//
// Errors:
//   - ErrNilStructure, ErrIntegralLength, ErrMissingOverlap,
//     soc.ErrNotSOCCapable, sk rotation errors; all tagged with the
//     offending bond index.
//
// Complexity:
//   - O(B·s²·o²) for B bonds, s shells and o orbitals per shell.
func Assemble(st *structure.Structure, in Integrals, opts ...AssembleOption) (*Assembly, error) {
	var cfg assembleConfig
	for _, o := range opts {
		o(&cfg)
	}
	if st == nil {
		return nil, fmt.Errorf("%s: %w", opAssemble, ErrNilStructure)
	}

	orthogonal := !in.HasOverlaps()
	switch cfg.basis {
	case BasisOrthogonal:
		orthogonal = true
	case BasisNonOrthogonal:
		if !in.HasOverlaps() {
			return nil, fmt.Errorf("%s: %w", opAssemble, ErrMissingOverlap)
		}
	}
	if err := in.validate(st, !orthogonal); err != nil {
		return nil, fmt.Errorf("%s: %w", opAssemble, err)
	}

	a := &Assembly{st: st, orthogonal: orthogonal}
	m := st.IndexMap()

	a.onsite = make([]Block, len(st.OnsiteBonds()))
	for k, b := range st.OnsiteBonds() {
		l, _ := m.Layout(b.TypeI)
		a.onsite[k] = Block{Bond: b, Value: onsiteBlock(l, in.OnsiteEs[k])}
	}
	if in.StrainVs != nil {
		for k, b := range st.StrainBonds() {
			owner := st.OnsiteBondOf(b.I)
			if err := addStrain(a.onsite[owner].Value, m, b, in.StrainVs[k]); err != nil {
				return nil, fmt.Errorf("%s: strain bond %d (%d<-%d): %w", opAssemble, k, b.I, b.J, err)
			}
		}
	}

	var err error
	if a.hopping, err = hoppingBlocks(st, in.Hoppings, "hopping"); err != nil {
		return nil, err
	}

	if !orthogonal {
		a.sOnsite = make([]Block, len(st.OnsiteBonds()))
		for k, b := range st.OnsiteBonds() {
			l, _ := m.Layout(b.TypeI)
			ss := in.onsiteOverlap(k, l.Len())
			a.sOnsite[k] = Block{Bond: b, Value: onsiteBlock(l, ss)}
		}
		if a.sHopping, err = hoppingBlocks(st, in.Overlaps, "overlap"); err != nil {
			return nil, err
		}
	}

	if in.HasSOC() {
		lambdas := make([][]float64, st.NumAtoms())
		for k, b := range st.OnsiteBonds() {
			lambdas[b.I] = in.SOCLambdas[k]
		}
		if a.soc, err = soc.Accumulate(st, lambdas, cfg.cache); err != nil {
			return nil, fmt.Errorf("%s: %w", opAssemble, err)
		}
	}
	return a, nil
}

func (in *Integrals) onsiteOverlap(k, shells int) []float64 {
	if in.OnsiteSs != nil {
		return in.OnsiteSs[k]
	}
	ones := make([]float64, shells)
	for i := range ones {
		ones[i] = 1
	}
	return ones
}

func hoppingBlocks(st *structure.Structure, values [][]float64, what string) ([]Block, error) {
	m := st.IndexMap()
	out := make([]Block, len(st.HoppingBonds()))
	for k, b := range st.HoppingBonds() {
		blk, err := hoppingBlock(m, b, values[k])
		if err != nil {
			return nil, fmt.Errorf("%s: %s bond %d (%d->%d): %w", opAssemble, what, k, b.I, b.J, err)
		}
		out[k] = Block{Bond: b, Value: blk}
	}
	return out, nil
}

// Structure returns the structure the assembly was built from.
func (a *Assembly) Structure() *structure.Structure { return a.st }

// Orthogonal reports whether S = I.
func (a *Assembly) Orthogonal() bool { return a.orthogonal }

// HasSOC reports whether SOC terms were assembled.
func (a *Assembly) HasSOC() bool { return a.soc != nil }

// SOC returns the accumulated SOC quadrants, nil without lambdas.
func (a *Assembly) SOC() *soc.Terms { return a.soc }

// HamiltonianBlocks returns onsite blocks (onsite-bond order) followed by
// hopping blocks (hopping-bond order). Values are shared; do not modify.
func (a *Assembly) HamiltonianBlocks() []Block {
	return append(append([]Block(nil), a.onsite...), a.hopping...)
}

// OverlapBlocks returns the overlap blocks in HamiltonianBlocks order, or
// nil for an orthogonal basis.
func (a *Assembly) OverlapBlocks() []Block {
	if a.orthogonal {
		return nil
	}
	return append(append([]Block(nil), a.sOnsite...), a.sHopping...)
}

// Dim returns the k-space matrix dimension, doubled with spin.
func (a *Assembly) Dim(spin bool) int {
	if spin {
		return 2 * a.st.TotalOrbitals()
	}
	return a.st.TotalOrbitals()
}
