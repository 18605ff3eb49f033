// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"
	"math"

	"github.com/dywu101/deeptb/matrix"
	"github.com/dywu101/deeptb/structure"
)

// Integrals is the scalar input produced by an integral source. Every
// outer slice is parallel to a bond list of the structure; every inner
// vector is laid out by the structure's orbital.IndexMap.
type Integrals struct {
	// OnsiteEs has one vector per onsite bond, one energy per shell.
	OnsiteEs [][]float64
	// Hoppings has one vector per hopping bond, IndexMap.BondLen(ti, tj) long.
	Hoppings [][]float64
	// Overlaps mirrors Hoppings; nil means no overlap integrals.
	Overlaps [][]float64
	// OnsiteSs has one vector per onsite bond, one overlap per shell; nil
	// means 1 on the diagonal.
	OnsiteSs [][]float64
	// StrainVs has one vector per strain bond, IndexMap.StrainLen(owner)
	// long; nil disables strain corrections.
	StrainVs [][]float64
	// SOCLambdas has one vector per onsite bond, one λ per shell; nil
	// disables spin-orbit coupling.
	SOCLambdas [][]float64
}

// HasOverlaps reports whether overlap integrals were supplied.
func (in *Integrals) HasOverlaps() bool { return in.Overlaps != nil }

// HasSOC reports whether SOC lambdas were supplied.
func (in *Integrals) HasSOC() bool { return in.SOCLambdas != nil }

// finite returns the position of the first NaN or Inf in v, or -1.
func finite(v []float64) int {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i
		}
	}
	return -1
}

// validate checks every vector length against the index map and rejects
// non-finite values.
func (in *Integrals) validate(st *structure.Structure, overlaps bool) error {
	m := st.IndexMap()
	onsite := st.OnsiteBonds()

	perOnsite := func(name string, vs [][]float64) error {
		if len(vs) != len(onsite) {
			return fmt.Errorf("%s: %d vectors for %d onsite bonds: %w", name, len(vs), len(onsite), ErrIntegralLength)
		}
		for k, b := range onsite {
			want, err := m.OnsiteLen(b.TypeI)
			if err != nil {
				return fmt.Errorf("%s: onsite bond %d: %w", name, k, err)
			}
			if len(vs[k]) != want {
				return fmt.Errorf("%s: onsite bond %d (atom %d, %s): got %d, want %d: %w", name, k, b.I, b.TypeI, len(vs[k]), want, ErrIntegralLength)
			}
			if i := finite(vs[k]); i >= 0 {
				return fmt.Errorf("%s: onsite bond %d (atom %d) value %d: %w", name, k, b.I, i, matrix.ErrNaNInf)
			}
		}
		return nil
	}
	perHopping := func(name string, vs [][]float64) error {
		hop := st.HoppingBonds()
		if len(vs) != len(hop) {
			return fmt.Errorf("%s: %d vectors for %d hopping bonds: %w", name, len(vs), len(hop), ErrIntegralLength)
		}
		for k, b := range hop {
			want, err := m.BondLen(b.TypeI, b.TypeJ)
			if err != nil {
				return fmt.Errorf("%s: hopping bond %d: %w", name, k, err)
			}
			if len(vs[k]) != want {
				return fmt.Errorf("%s: hopping bond %d (%d->%d): got %d, want %d: %w", name, k, b.I, b.J, len(vs[k]), want, ErrIntegralLength)
			}
			if i := finite(vs[k]); i >= 0 {
				return fmt.Errorf("%s: hopping bond %d (%d->%d) value %d: %w", name, k, b.I, b.J, i, matrix.ErrNaNInf)
			}
		}
		return nil
	}

	if err := perOnsite("onsite energies", in.OnsiteEs); err != nil {
		return err
	}
	if err := perHopping("hoppings", in.Hoppings); err != nil {
		return err
	}
	if overlaps {
		if err := perHopping("overlaps", in.Overlaps); err != nil {
			return err
		}
		if in.OnsiteSs != nil {
			if err := perOnsite("onsite overlaps", in.OnsiteSs); err != nil {
				return err
			}
		}
	}
	if in.SOCLambdas != nil {
		if err := perOnsite("soc lambdas", in.SOCLambdas); err != nil {
			return err
		}
	}
	if in.StrainVs != nil {
		strain := st.StrainBonds()
		if len(in.StrainVs) != len(strain) {
			return fmt.Errorf("strain: %d vectors for %d strain bonds: %w", len(in.StrainVs), len(strain), ErrIntegralLength)
		}
		for k, b := range strain {
			want, err := m.StrainLen(b.TypeI)
			if err != nil {
				return fmt.Errorf("strain: bond %d: %w", k, err)
			}
			if len(in.StrainVs[k]) != want {
				return fmt.Errorf("strain: bond %d (%d<-%d): got %d, want %d: %w", k, b.I, b.J, len(in.StrainVs[k]), want, ErrIntegralLength)
			}
			if i := finite(in.StrainVs[k]); i >= 0 {
				return fmt.Errorf("strain: bond %d (%d<-%d) value %d: %w", k, b.I, b.J, i, matrix.ErrNaNInf)
			}
		}
	}
	return nil
}
