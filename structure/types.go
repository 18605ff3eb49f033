// SPDX-License-Identifier: MIT

package structure

import (
	"github.com/dywu101/deeptb/orbital"
	"github.com/dywu101/deeptb/sk"
)

// Translation is an integer lattice translation R.
type Translation [3]int

// IsZero reports whether R == 0.
func (r Translation) IsZero() bool { return r == Translation{} }

// Neg returns -R.
func (r Translation) Neg() Translation { return Translation{-r[0], -r[1], -r[2]} }

// Bond is one bond record: atom I (type TypeI) in the home cell to atom J
// (type TypeJ) in the cell translated by R. Dir is the unit vector from I
// to J+R and Dist their distance.
type Bond struct {
	Frame int
	I     int
	TypeI string
	J     int
	TypeJ string
	R     Translation
	Dir   sk.Direction
	Dist  float64
}

// IsOnsite reports whether the bond joins an atom to itself in the home cell.
func (b Bond) IsOnsite() bool { return b.I == b.J && b.R.IsZero() }

// Reverse returns the bond seen from J: (J, I, -R, -Dir).
func (b Bond) Reverse() Bond {
	return Bond{
		Frame: b.Frame,
		I:     b.J,
		TypeI: b.TypeJ,
		J:     b.I,
		TypeJ: b.TypeI,
		R:     b.R.Neg(),
		Dir:   sk.Direction{-b.Dir[0], -b.Dir[1], -b.Dir[2]},
		Dist:  b.Dist,
	}
}

// Range is the half-open global orbital range [Start, End) of one atom.
type Range struct {
	Start, End int
}

// Len returns the number of orbitals in the range.
func (r Range) Len() int { return r.End - r.Start }

// Provider is the geometry/bond provider contract: bond lists, per-atom
// symbols and per-type orbital layouts.
type Provider interface {
	Bonds() (hopping, onsite []Bond)
	Symbols() []string
	Layouts() map[string]orbital.Layout
}
