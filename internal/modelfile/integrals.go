// SPDX-License-Identifier: MIT

package modelfile

import (
	"fmt"
	"math"

	"github.com/dywu101/deeptb/hamiltonian"
	"github.com/dywu101/deeptb/orbital"
	"github.com/dywu101/deeptb/structure"
)

// Integrals expands the file's parameters over the bonds of st.
//
// Implementation:
//   - onsite energies, onsite overlaps and SOC lambdas are copied per onsite
//     bond from the atom type's vector (SOC defaults to zeros for a type
//     without an entry);
//   - hopping and overlap vectors are filled shell pair by shell pair at the
//     IndexMap spans, each value scaled by the pair's radial model at the
//     bond distance;
//   - strain vectors are filled over owner shell pairs from the
//     "<owner>-<neighbour>" table, only when the file has a strain section
//     and st has strain bonds.
//
// Errors:
//   - ErrMissingParameter, ErrLength.
func (f *File) Integrals(st *structure.Structure) (hamiltonian.Integrals, error) {
	m := st.IndexMap()
	var in hamiltonian.Integrals
	var err error

	if in.OnsiteEs, err = perType(st, f.Onsite, "onsite", false); err != nil {
		return in, fmt.Errorf("Integrals: %w", err)
	}
	if f.SOC != nil {
		if in.SOCLambdas, err = perType(st, f.SOC, "soc", true); err != nil {
			return in, fmt.Errorf("Integrals: %w", err)
		}
	}

	hop := st.HoppingBonds()
	in.Hoppings = make([][]float64, len(hop))
	for k, b := range hop {
		if in.Hoppings[k], err = bondVector(m, f.Hoppings, b); err != nil {
			return in, fmt.Errorf("Integrals: hopping bond %d (%d->%d): %w", k, b.I, b.J, err)
		}
	}

	if f.Overlaps != nil {
		in.Overlaps = make([][]float64, len(hop))
		for k, b := range hop {
			if in.Overlaps[k], err = bondVector(m, f.Overlaps, b); err != nil {
				return in, fmt.Errorf("Integrals: overlap bond %d (%d->%d): %w", k, b.I, b.J, err)
			}
		}
		if f.OnsiteOverlap != nil {
			if in.OnsiteSs, err = perType(st, f.OnsiteOverlap, "onsite_overlap", false); err != nil {
				return in, fmt.Errorf("Integrals: %w", err)
			}
		}
	}

	if f.Strain != nil && len(st.StrainBonds()) > 0 {
		sb := st.StrainBonds()
		in.StrainVs = make([][]float64, len(sb))
		for k, b := range sb {
			if in.StrainVs[k], err = strainVector(m, f.Strain, b); err != nil {
				return in, fmt.Errorf("Integrals: strain bond %d (%d<-%d): %w", k, b.I, b.J, err)
			}
		}
	}
	return in, nil
}

// perType copies the per-type vector of every onsite bond's atom.
func perType(st *structure.Structure, table map[string][]float64, what string, zeroDefault bool) ([][]float64, error) {
	m := st.IndexMap()
	out := make([][]float64, len(st.OnsiteBonds()))
	for k, b := range st.OnsiteBonds() {
		n, err := m.OnsiteLen(b.TypeI)
		if err != nil {
			return nil, err
		}
		v, ok := table[b.TypeI]
		switch {
		case !ok && zeroDefault:
			v = make([]float64, n)
		case !ok:
			return nil, fmt.Errorf("%s %s: %w", what, b.TypeI, ErrMissingParameter)
		case len(v) != n:
			return nil, fmt.Errorf("%s %s: got %d, want %d: %w", what, b.TypeI, len(v), n, ErrLength)
		}
		out[k] = append([]float64(nil), v...)
	}
	return out, nil
}

func bondVector(m *orbital.IndexMap, tables map[string]PairParams, b structure.Bond) ([]float64, error) {
	li, _ := m.Layout(b.TypeI)
	lj, _ := m.Layout(b.TypeJ)
	n, err := m.BondLen(b.TypeI, b.TypeJ)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for si, shi := range li.Shells() {
		for sj, shj := range lj.Shells() {
			span, err := m.BondSpan(b.TypeI, b.TypeJ, si, sj)
			if err != nil {
				return nil, err
			}
			v, p, err := pairValues(tables, b.TypeI, b.TypeJ, shi.Name, shj.Name)
			if err != nil {
				return nil, err
			}
			if err := fill(out[span.Start:span.End], v, p, b.Dist); err != nil {
				return nil, fmt.Errorf("%s-%s %s-%s: %w", b.TypeI, b.TypeJ, shi.Name, shj.Name, err)
			}
		}
	}
	return out, nil
}

func strainVector(m *orbital.IndexMap, tables map[string]PairParams, b structure.Bond) ([]float64, error) {
	l, _ := m.Layout(b.TypeI)
	n, err := m.StrainLen(b.TypeI)
	if err != nil {
		return nil, err
	}
	key := b.TypeI + "-" + b.TypeJ
	p, ok := tables[key]
	if !ok {
		return nil, fmt.Errorf("strain %s: %w", key, ErrMissingParameter)
	}
	out := make([]float64, n)
	for sa, sha := range l.Shells() {
		for sb, shb := range l.Shells() {
			span, err := m.StrainSpan(b.TypeI, sa, sb)
			if err != nil {
				return nil, err
			}
			v, ok := p.Values[sha.Name+"-"+shb.Name]
			if !ok {
				v, ok = p.Values[shb.Name+"-"+sha.Name]
			}
			if !ok {
				return nil, fmt.Errorf("strain %s %s-%s: %w", key, sha.Name, shb.Name, ErrMissingParameter)
			}
			if err := fill(out[span.Start:span.End], v, p, b.Dist); err != nil {
				return nil, fmt.Errorf("strain %s %s-%s: %w", key, sha.Name, shb.Name, err)
			}
		}
	}
	return out, nil
}

// pairValues finds the parameters of shell pair (ni of ti, nj of tj).
func pairValues(tables map[string]PairParams, ti, tj, ni, nj string) ([]float64, PairParams, error) {
	if p, ok := tables[ti+"-"+tj]; ok {
		if v, ok := p.Values[ni+"-"+nj]; ok {
			return v, p, nil
		}
		if ti == tj {
			if v, ok := p.Values[nj+"-"+ni]; ok {
				return v, p, nil
			}
		}
	}
	if ti != tj {
		if p, ok := tables[tj+"-"+ti]; ok {
			if v, ok := p.Values[nj+"-"+ni]; ok {
				return v, p, nil
			}
		}
	}
	return nil, PairParams{}, fmt.Errorf("%s-%s %s-%s: %w", ti, tj, ni, nj, ErrMissingParameter)
}

// fill writes v scaled by the radial model at distance r into dst.
func fill(dst, v []float64, p PairParams, r float64) error {
	if len(v) != len(dst) {
		return fmt.Errorf("got %d values, want %d: %w", len(v), len(dst), ErrLength)
	}
	scale := 1.0
	if p.Model == ModelPowerLaw {
		scale = math.Pow(p.R0/r, p.Eta)
	}
	for i, x := range v {
		dst[i] = scale * x
	}
	return nil
}
