// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Site is one atom of the unit cell: its chemical symbol (atom type) and
// Cartesian position.
type Site struct {
	Symbol string
	Pos    [3]float64
}

// Crystal is a unit cell with its sites. Cell rows are the lattice
// vectors a1, a2, a3; Periodic marks the axes along which images repeat.
type Crystal struct {
	Cell     [3][3]float64
	Periodic [3]bool
	Sites    []Site
}

// Symbols returns the per-site symbols in site order.
func (c *Crystal) Symbols() []string {
	out := make([]string, len(c.Sites))
	for i, s := range c.Sites {
		out[i] = s.Symbol
	}
	return out
}

// Translate returns the Cartesian vector R·Cell for the integer translation r.
func (c *Crystal) Translate(r [3]int) [3]float64 {
	var v [3]float64
	for a := 0; a < 3; a++ {
		for x := 0; x < 3; x++ {
			v[x] += float64(r[a]) * c.Cell[a][x]
		}
	}
	return v
}

// Volume returns |det(Cell)|.
func (c *Crystal) Volume() float64 {
	return math.Abs(mat.Det(cellMatrix(c.Cell)))
}

// Validate checks the cell and sites.
func (c *Crystal) Validate() error {
	for a := 0; a < 3; a++ {
		for x := 0; x < 3; x++ {
			if !finite(c.Cell[a][x]) {
				return fmt.Errorf("Validate: cell[%d][%d]: %w", a, x, ErrBadCell)
			}
		}
	}
	if !(c.Volume() > 0) {
		return fmt.Errorf("Validate: volume %g: %w", c.Volume(), ErrBadCell)
	}
	if len(c.Sites) == 0 {
		return fmt.Errorf("Validate: %w", ErrNoSites)
	}
	for i, s := range c.Sites {
		if s.Symbol == "" {
			return fmt.Errorf("Validate: site %d: empty symbol: %w", i, ErrBadSite)
		}
		for x := 0; x < 3; x++ {
			if !finite(s.Pos[x]) {
				return fmt.Errorf("Validate: site %d (%s): %w", i, s.Symbol, ErrBadSite)
			}
		}
	}
	return nil
}

// Constructor applies a deterministic mutation to a Crystal using the
// resolved builderConfig. Constructors validate their parameters and
// return sentinel errors; they never panic.
type Constructor func(c *Crystal, cfg builderConfig) error

// BuildCrystal resolves bopts, creates an empty Crystal with an identity
// cell and no periodic axes, and applies cons in order. The result is
// validated.
func BuildCrystal(bopts []BuilderOption, cons ...Constructor) (*Crystal, error) {
	cfg := newBuilderConfig(bopts...)
	c := &Crystal{Cell: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildCrystal, i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildCrystal, err)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildCrystal, err)
	}
	return c, nil
}

// Lattice sets the cell vectors and periodic axes.
func Lattice(cell [3][3]float64, periodic [3]bool) Constructor {
	return func(c *Crystal, _ builderConfig) error {
		probe := Crystal{Cell: cell}
		if !(probe.Volume() > 0) {
			return builderErrorf(MethodLattice, ErrBadCell, "volume %g", probe.Volume())
		}
		c.Cell, c.Periodic = cell, periodic
		return nil
	}
}

// Atom appends a site at a Cartesian position.
func Atom(symbol string, pos [3]float64) Constructor {
	return func(c *Crystal, _ builderConfig) error {
		if symbol == "" || !finite(pos[0]) || !finite(pos[1]) || !finite(pos[2]) {
			return builderErrorf(MethodAtom, ErrBadSite, "%q at %v", symbol, pos)
		}
		c.Sites = append(c.Sites, Site{Symbol: symbol, Pos: pos})
		return nil
	}
}

// FractionalAtom appends a site at fractional coordinates of the current
// cell, so it must follow Lattice.
func FractionalAtom(symbol string, frac [3]float64) Constructor {
	return func(c *Crystal, _ builderConfig) error {
		if symbol == "" || !finite(frac[0]) || !finite(frac[1]) || !finite(frac[2]) {
			return builderErrorf(MethodFractionalAtom, ErrBadSite, "%q at %v", symbol, frac)
		}
		var pos [3]float64
		for a := 0; a < 3; a++ {
			for x := 0; x < 3; x++ {
				pos[x] += frac[a] * c.Cell[a][x]
			}
		}
		c.Sites = append(c.Sites, Site{Symbol: symbol, Pos: pos})
		return nil
	}
}

func cellMatrix(cell [3][3]float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		cell[0][0], cell[0][1], cell[0][2],
		cell[1][0], cell[1][1], cell[1][2],
		cell[2][0], cell[2][1], cell[2][2],
	})
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
