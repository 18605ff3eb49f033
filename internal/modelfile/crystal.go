// SPDX-License-Identifier: MIT

package modelfile

import (
	"fmt"

	"github.com/dywu101/deeptb/builder"
	"github.com/dywu101/deeptb/structure"
)

// Crystal presets.
const (
	PresetDimer     = "dimer"
	PresetChain     = "chain"
	PresetSquare    = "square"
	PresetHoneycomb = "honeycomb"
)

// BuilderOptions maps cutoffs and the enumeration mode onto builder
// options.
func (f *File) BuilderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithCutoff(f.Cutoff)}
	if f.StrainCutoff > 0 {
		opts = append(opts, builder.WithStrainCutoff(f.StrainCutoff))
	}
	if f.TimeReversal != nil {
		opts = append(opts, builder.WithTimeReversal(*f.TimeReversal))
	}
	return opts
}

// Constructors translates the crystal section into builder constructors.
func (f *File) Constructors() ([]builder.Constructor, error) {
	c := f.Crystal
	if c.Preset != "" {
		if len(c.Sites) > 0 || c.Cell != nil {
			return nil, fmt.Errorf("Constructors: preset %q with explicit cell or sites: %w", c.Preset, ErrInvalid)
		}
		return presetConstructor(c)
	}
	if len(c.Sites) == 0 {
		return nil, fmt.Errorf("Constructors: no preset and no sites: %w", ErrInvalid)
	}

	var cons []builder.Constructor
	if c.Cell != nil {
		var cell [3][3]float64
		if len(c.Cell) != 3 {
			return nil, fmt.Errorf("Constructors: cell needs 3 vectors: %w", ErrInvalid)
		}
		for a, v := range c.Cell {
			if len(v) != 3 {
				return nil, fmt.Errorf("Constructors: cell vector %d: %w", a, ErrInvalid)
			}
			copy(cell[a][:], v)
		}
		var periodic [3]bool
		if c.Periodic != nil && len(c.Periodic) != 3 {
			return nil, fmt.Errorf("Constructors: periodic needs 3 flags: %w", ErrInvalid)
		}
		copy(periodic[:], c.Periodic)
		cons = append(cons, builder.Lattice(cell, periodic))
	} else if c.Fractional {
		return nil, fmt.Errorf("Constructors: fractional sites without cell: %w", ErrInvalid)
	}

	for i, s := range c.Sites {
		if len(s.Pos) != 3 {
			return nil, fmt.Errorf("Constructors: site %d: pos needs 3 values: %w", i, ErrInvalid)
		}
		pos := [3]float64{s.Pos[0], s.Pos[1], s.Pos[2]}
		if c.Fractional {
			cons = append(cons, builder.FractionalAtom(s.Symbol, pos))
		} else {
			cons = append(cons, builder.Atom(s.Symbol, pos))
		}
	}
	return cons, nil
}

func presetConstructor(c Crystal) ([]builder.Constructor, error) {
	want := map[string]int{PresetDimer: 2, PresetChain: 1, PresetSquare: 1, PresetHoneycomb: 2}
	n, ok := want[c.Preset]
	if !ok {
		return nil, fmt.Errorf("Constructors: unknown preset %q: %w", c.Preset, ErrInvalid)
	}
	if len(c.Species) != n {
		return nil, fmt.Errorf("Constructors: preset %q needs %d species, got %d: %w", c.Preset, n, len(c.Species), ErrInvalid)
	}
	switch c.Preset {
	case PresetDimer:
		return []builder.Constructor{builder.Dimer(c.Species[0], c.Species[1], c.Length)}, nil
	case PresetChain:
		return []builder.Constructor{builder.LinearChain(c.Species[0], c.Length)}, nil
	case PresetSquare:
		return []builder.Constructor{builder.SquareLattice(c.Species[0], c.Length)}, nil
	default:
		return []builder.Constructor{builder.Honeycomb(c.Species[0], c.Species[1], c.Length)}, nil
	}
}

// Structure builds the crystal and runs the neighbour search.
func (f *File) Structure() (*structure.Structure, error) {
	layouts, err := f.Layouts()
	if err != nil {
		return nil, fmt.Errorf("Structure: %w", err)
	}
	cons, err := f.Constructors()
	if err != nil {
		return nil, fmt.Errorf("Structure: %w", err)
	}
	st, err := builder.Build(layouts, f.BuilderOptions(), cons...)
	if err != nil {
		return nil, fmt.Errorf("Structure: %w", err)
	}
	return st, nil
}
