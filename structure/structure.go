// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"math"

	"github.com/dywu101/deeptb/orbital"
)

// Structure is the validated, immutable evaluation context of one
// structure. Safe for concurrent readers.
type Structure struct {
	symbols      []string
	index        *orbital.IndexMap
	ranges       []Range
	total        int
	onsite       []Bond
	onsiteOf     []int
	hopping      []Bond
	strain       []Bond
	timeReversal bool
}

// New validates the bond lists against the symbols and layouts and
// computes the global orbital ranges.
//
// Implementation:
//   - Stage 1: build (or accept via WithIndexMap) the shared index map.
//   - Stage 2: prefix-sum the orbital counts per atom into ranges.
//   - Stage 3: validate onsite bonds (i == j, R == 0, one per atom that owns
//     orbitals), hopping bonds (endpoints with layouts, not onsite, unit
//     direction) and strain bonds (owner with layout, neighbour type
//     matching its symbol, unit direction).
//
// Errors:
//   - ErrNoAtoms, ErrNoOrbitals, ErrAtomIndex, ErrTypeMismatch, ErrUnknownType,
//     ErrBadBond, ErrBadDirection, ErrIndexMapMismatch, or an orbital
//     error from NewIndexMap.
//
// Complexity: O(A + B) for A atoms and B bonds, plus index map construction.
func New(symbols []string, layouts map[string]orbital.Layout, onsite, hopping []Bond, opts ...Option) (*Structure, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoAtoms)
	}

	index := cfg.index
	if index == nil {
		var err error
		if index, err = orbital.NewIndexMap(layouts); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	} else if err := sameLayouts(index, layouts); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	s := &Structure{
		symbols:      append([]string(nil), symbols...),
		index:        index,
		ranges:       make([]Range, len(symbols)),
		onsite:       append([]Bond(nil), onsite...),
		hopping:      append([]Bond(nil), hopping...),
		strain:       cfg.strain,
		timeReversal: cfg.timeReversal,
	}
	for a, sym := range s.symbols {
		n := 0
		if l, ok := index.Layout(sym); ok {
			n = l.Count()
		}
		s.ranges[a] = Range{Start: s.total, End: s.total + n}
		s.total += n
	}
	if s.total == 0 {
		return nil, fmt.Errorf("New: %d atoms, none of %v has a layout: %w", len(symbols), index.Types(), ErrNoOrbitals)
	}

	if err := s.validateOnsite(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err := s.validateHopping(cfg.dirTol); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err := s.validateStrain(cfg.dirTol); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return s, nil
}

// FromProvider builds a Structure from a geometry provider.
func FromProvider(p Provider, opts ...Option) (*Structure, error) {
	hopping, onsite := p.Bonds()
	return New(p.Symbols(), p.Layouts(), onsite, hopping, opts...)
}

func sameLayouts(m *orbital.IndexMap, layouts map[string]orbital.Layout) error {
	if len(m.Types()) != len(layouts) {
		return ErrIndexMapMismatch
	}
	for typ, l := range layouts {
		ml, ok := m.Layout(typ)
		if !ok || !ml.Equal(l) {
			return fmt.Errorf("type %q: %w", typ, ErrIndexMapMismatch)
		}
	}
	return nil
}

// endpoint checks that atom a exists and carries type typ.
func (s *Structure) endpoint(a int, typ string) error {
	if a < 0 || a >= len(s.symbols) {
		return fmt.Errorf("atom %d: %w", a, ErrAtomIndex)
	}
	if s.symbols[a] != typ {
		return fmt.Errorf("atom %d is %q, bond says %q: %w", a, s.symbols[a], typ, ErrTypeMismatch)
	}
	return nil
}

func (s *Structure) hasLayout(a int) bool {
	_, ok := s.index.Layout(s.symbols[a])
	return ok
}

func checkDirection(b Bond, tol float64) error {
	n := math.Sqrt(b.Dir[0]*b.Dir[0] + b.Dir[1]*b.Dir[1] + b.Dir[2]*b.Dir[2])
	if math.Abs(n-1) > tol {
		return fmt.Errorf("bond %d-%d |dir|=%g: %w", b.I, b.J, n, ErrBadDirection)
	}
	return nil
}

func (s *Structure) validateOnsite() error {
	s.onsiteOf = make([]int, len(s.symbols))
	for a := range s.onsiteOf {
		s.onsiteOf[a] = -1
	}
	for k, b := range s.onsite {
		if !b.IsOnsite() {
			return fmt.Errorf("onsite bond %d (%d,%d,%v): %w", k, b.I, b.J, b.R, ErrBadBond)
		}
		if b.TypeI != b.TypeJ {
			return fmt.Errorf("onsite bond %d: %q vs %q: %w", k, b.TypeI, b.TypeJ, ErrTypeMismatch)
		}
		if err := s.endpoint(b.I, b.TypeI); err != nil {
			return fmt.Errorf("onsite bond %d: %w", k, err)
		}
		if !s.hasLayout(b.I) {
			return fmt.Errorf("onsite bond %d: type %q: %w", k, b.TypeI, ErrUnknownType)
		}
		if s.onsiteOf[b.I] >= 0 {
			return fmt.Errorf("onsite bond %d: duplicate for atom %d: %w", k, b.I, ErrBadBond)
		}
		s.onsiteOf[b.I] = k
	}
	for a, r := range s.ranges {
		if r.Len() > 0 && s.onsiteOf[a] < 0 {
			return fmt.Errorf("atom %d (%s) has no onsite bond: %w", a, s.symbols[a], ErrBadBond)
		}
	}
	return nil
}

func (s *Structure) validateHopping(tol float64) error {
	for k, b := range s.hopping {
		if b.IsOnsite() {
			return fmt.Errorf("hopping bond %d is onsite: %w", k, ErrBadBond)
		}
		for _, e := range [2]struct {
			a   int
			typ string
		}{{b.I, b.TypeI}, {b.J, b.TypeJ}} {
			if err := s.endpoint(e.a, e.typ); err != nil {
				return fmt.Errorf("hopping bond %d: %w", k, err)
			}
			if !s.hasLayout(e.a) {
				return fmt.Errorf("hopping bond %d: type %q: %w", k, e.typ, ErrUnknownType)
			}
		}
		if err := checkDirection(b, tol); err != nil {
			return fmt.Errorf("hopping bond %d: %w", k, err)
		}
	}
	return nil
}

func (s *Structure) validateStrain(tol float64) error {
	for k, b := range s.strain {
		if err := s.endpoint(b.I, b.TypeI); err != nil {
			return fmt.Errorf("strain bond %d: %w", k, err)
		}
		if !s.hasLayout(b.I) {
			return fmt.Errorf("strain bond %d: owner type %q: %w", k, b.TypeI, ErrUnknownType)
		}
		if err := s.endpoint(b.J, b.TypeJ); err != nil {
			return fmt.Errorf("strain bond %d: %w", k, err)
		}
		if b.IsOnsite() {
			return fmt.Errorf("strain bond %d is onsite: %w", k, ErrBadBond)
		}
		if err := checkDirection(b, tol); err != nil {
			return fmt.Errorf("strain bond %d: %w", k, err)
		}
	}
	return nil
}

// NumAtoms returns the number of atoms.
func (s *Structure) NumAtoms() int { return len(s.symbols) }

// Symbol returns the type of atom a.
func (s *Structure) Symbol(a int) string { return s.symbols[a] }

// Symbols returns a copy of the per-atom types.
func (s *Structure) Symbols() []string { return append([]string(nil), s.symbols...) }

// IndexMap returns the shared index map.
func (s *Structure) IndexMap() *orbital.IndexMap { return s.index }

// Layout returns the orbital layout of atom a; ok is false for
// environment-only atoms.
func (s *Structure) Layout(a int) (orbital.Layout, bool) { return s.index.Layout(s.symbols[a]) }

// Range returns the global orbital range of atom a.
func (s *Structure) Range(a int) Range { return s.ranges[a] }

// Ranges returns a copy of all atom ranges.
func (s *Structure) Ranges() []Range { return append([]Range(nil), s.ranges...) }

// TotalOrbitals returns N, the spinless matrix dimension.
func (s *Structure) TotalOrbitals() int { return s.total }

// OnsiteBonds returns the onsite bonds in input order.
func (s *Structure) OnsiteBonds() []Bond { return s.onsite }

// OnsiteBondOf returns the position of atom a's onsite bond in
// OnsiteBonds, or -1 for environment-only atoms.
func (s *Structure) OnsiteBondOf(a int) int { return s.onsiteOf[a] }

// HoppingBonds returns the hopping bonds in input order. The bond slices
// returned by this and the sibling accessors are shared; do not modify.
func (s *Structure) HoppingBonds() []Bond { return s.hopping }

// StrainBonds returns the onsite-environment bonds in input order.
func (s *Structure) StrainBonds() []Bond { return s.strain }

// TimeReversal reports whether hopping bonds are enumerated in one direction.
func (s *Structure) TimeReversal() bool { return s.timeReversal }
