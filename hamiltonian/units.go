// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"
	"strings"
)

// Unit is the energy unit the integrals are expressed in. Solve always
// reports eigenvalues in eV.
type Unit uint8

const (
	// Hartree integrals, scaled by HartreeToEV.
	Hartree Unit = iota
	// Rydberg integrals, scaled by RydbergToEV.
	Rydberg
	// EV integrals, unscaled.
	EV
)

// Conversion constants to eV.
const (
	HartreeToEV = 27.211324570274
	RydbergToEV = 13.605662285137
)

// Factor returns the multiplier to eV.
func (u Unit) Factor() float64 {
	switch u {
	case Rydberg:
		return RydbergToEV
	case EV:
		return 1
	default:
		return HartreeToEV
	}
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	switch u {
	case Hartree:
		return "Hartree"
	case Rydberg:
		return "Rydberg"
	case EV:
		return "eV"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// ParseUnit accepts "hartree"/"ha", "rydberg"/"ry" and "ev", any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hartree", "ha":
		return Hartree, nil
	case "rydberg", "ry":
		return Rydberg, nil
	case "ev":
		return EV, nil
	}
	return 0, fmt.Errorf("hamiltonian: unknown energy unit %q", s)
}
