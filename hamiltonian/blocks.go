// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/orbital"
	"github.com/dywu101/deeptb/sk"
	"github.com/dywu101/deeptb/structure"
)

// Block is one real-space orbital block tagged with its bond. Value has
// norb(TypeI) rows and norb(TypeJ) columns.
type Block struct {
	Bond  structure.Bond
	Value *mat.Dense
}

// Dims returns the block shape.
func (b Block) Dims() (int, int) { return b.Value.Dims() }

// onsiteBlock returns diag(values expanded per shell).
func onsiteBlock(l orbital.Layout, values []float64) *mat.Dense {
	n := l.Count()
	d := mat.NewDense(n, n, nil)
	for s := 0; s < l.Len(); s++ {
		off := l.Offset(s)
		for o := 0; o < l.ShellAt(s).Shell.Count(); o++ {
			d.Set(off+o, off+o, values[s])
		}
	}
	return d
}

// placeRotated writes (or adds) the rotated sub-block for shell si of the
// row layout and sj of the column layout at their offsets in dst.
//
// Implementation:
//   - l_i ≥ l_j: Rotate(sj, si) is (2l_i+1)×(2l_j+1), placed as is.
//   - l_i < l_j: Rotate(si, sj) is (2l_j+1)×(2l_i+1), placed transposed and,
//     when parity is set, scaled by (−1)^(l_i+l_j).
func placeRotated(dst *mat.Dense, rows, cols orbital.Layout, si, sj int, values []float64, dir sk.Direction, parity bool) error {
	shI, shJ := rows.ShellAt(si).Shell, cols.ShellAt(sj).Shell
	r0, c0 := rows.Offset(si), cols.Offset(sj)

	if shI.L() >= shJ.L() {
		sub, err := sk.Rotate(shJ, shI, values, dir)
		if err != nil {
			return err
		}
		addSub(dst, r0, c0, sub, 1)
		return nil
	}
	sub, err := sk.Rotate(shI, shJ, values, dir)
	if err != nil {
		return err
	}
	sign := 1.0
	if parity {
		sign = orbital.Parity(shI, shJ)
	}
	addSub(dst, r0, c0, sub.T(), sign)
	return nil
}

func addSub(dst *mat.Dense, r0, c0 int, sub mat.Matrix, scale float64) {
	r, c := sub.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(r0+i, c0+j, dst.At(r0+i, c0+j)+scale*sub.At(i, j))
		}
	}
}

// hoppingBlock builds the (norb_i × norb_j) block of one hopping bond.
func hoppingBlock(m *orbital.IndexMap, b structure.Bond, values []float64) (*mat.Dense, error) {
	li, _ := m.Layout(b.TypeI)
	lj, _ := m.Layout(b.TypeJ)
	blk := mat.NewDense(li.Count(), lj.Count(), nil)
	for si := 0; si < li.Len(); si++ {
		for sj := 0; sj < lj.Len(); sj++ {
			span, err := m.BondSpan(b.TypeI, b.TypeJ, si, sj)
			if err != nil {
				return nil, err
			}
			if err := placeRotated(blk, li, lj, si, sj, values[span.Start:span.End], b.Dir, true); err != nil {
				return nil, fmt.Errorf("shells %s-%s: %w", li.ShellAt(si).Name, lj.ShellAt(sj).Name, err)
			}
		}
	}
	return blk, nil
}

// addStrain adds one strain neighbour's correction into the owner's onsite
// block: owner shells × owner shells, rotated along the owner→neighbour
// direction, without the parity sign.
func addStrain(dst *mat.Dense, m *orbital.IndexMap, b structure.Bond, values []float64) error {
	l, _ := m.Layout(b.TypeI)
	for sa := 0; sa < l.Len(); sa++ {
		for sb := 0; sb < l.Len(); sb++ {
			span, err := m.StrainSpan(b.TypeI, sa, sb)
			if err != nil {
				return err
			}
			if err := placeRotated(dst, l, l, sa, sb, values[span.Start:span.End], b.Dir, false); err != nil {
				return fmt.Errorf("shells %s-%s: %w", l.ShellAt(sa).Name, l.ShellAt(sb).Name, err)
			}
		}
	}
	return nil
}
