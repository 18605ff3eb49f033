// SPDX-License-Identifier: MIT

package orbital

import (
	"fmt"
	"sort"
)

// Span is a half-open slot range [Start, End) inside a flat integral vector.
type Span struct {
	Start, End int
}

// Len returns End-Start.
func (s Span) Len() int { return s.End - s.Start }

// PairWidth returns the number of scalar Slater-Koster integrals between
// shells a and b: one per |m| = 0..min(la,lb), ordered σ, π, δ.
func PairWidth(a, b Shell) int {
	if a.L() < b.L() {
		return a.L() + 1
	}
	return b.L() + 1
}

// pairTable holds spans for every (row shell, column shell) combination of
// two layouts; rows iterate the first layout, columns the second.
type pairTable struct {
	spans [][]Span
	size  int
}

func newPairTable(a, b Layout) *pairTable {
	t := &pairTable{spans: make([][]Span, a.Len())}
	for i := 0; i < a.Len(); i++ {
		t.spans[i] = make([]Span, b.Len())
		for j := 0; j < b.Len(); j++ {
			w := PairWidth(a.shells[i].Shell, b.shells[j].Shell)
			t.spans[i][j] = Span{Start: t.size, End: t.size + w}
			t.size += w
		}
	}
	return t
}

type typePair struct{ a, b string }

// IndexMap maps (type, shell) labels onto integral vector slots. It is
// immutable after NewIndexMap and safe for concurrent use.
type IndexMap struct {
	layouts map[string]Layout
	types   []string
	bond    map[typePair]*pairTable
	strain  map[string]*pairTable
}

// NewIndexMap builds the index map for a set of atom-type layouts.
//
// Implementation:
//   - Stage 1: copy layouts and sort type names for deterministic iteration.
//   - Stage 2: one hopping table per ordered type pair (A,B): shells of A
//     outer, shells of B inner, declared order, width PairWidth.
//   - Stage 3: one strain table per owner type: owner shells × owner shells.
//   - Stage 4: Validate.
//
// Complexity: O(T² · S²) for T types with at most S shells each.
func NewIndexMap(layouts map[string]Layout) (*IndexMap, error) {
	m := &IndexMap{
		layouts: make(map[string]Layout, len(layouts)),
		types:   make([]string, 0, len(layouts)),
		bond:    make(map[typePair]*pairTable, len(layouts)*len(layouts)),
		strain:  make(map[string]*pairTable, len(layouts)),
	}
	for typ, l := range layouts {
		if l.Len() == 0 {
			return nil, fmt.Errorf("NewIndexMap: type %q: %w", typ, ErrEmptyLayout)
		}
		m.layouts[typ] = l
		m.types = append(m.types, typ)
	}
	sort.Strings(m.types)

	for _, a := range m.types {
		for _, b := range m.types {
			m.bond[typePair{a, b}] = newPairTable(m.layouts[a], m.layouts[b])
		}
		m.strain[a] = newPairTable(m.layouts[a], m.layouts[a])
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Types returns the atom types in sorted order.
func (m *IndexMap) Types() []string {
	out := make([]string, len(m.types))
	copy(out, m.types)
	return out
}

// Layout returns the layout of typ.
func (m *IndexMap) Layout(typ string) (Layout, bool) {
	l, ok := m.layouts[typ]
	return l, ok
}

// OnsiteLen returns the expected length of an onsite energy (or onsite
// overlap, or SOC lambda) vector for typ: one value per shell.
func (m *IndexMap) OnsiteLen(typ string) (int, error) {
	l, ok := m.layouts[typ]
	if !ok {
		return 0, fmt.Errorf("OnsiteLen(%q): %w", typ, ErrUnknownType)
	}
	return l.Len(), nil
}

// OnsiteIndex returns the slot of shell index sh of typ.
func (m *IndexMap) OnsiteIndex(typ string, sh int) (int, error) {
	l, ok := m.layouts[typ]
	if !ok {
		return 0, fmt.Errorf("OnsiteIndex(%q): %w", typ, ErrUnknownType)
	}
	if sh < 0 || sh >= l.Len() {
		return 0, fmt.Errorf("OnsiteIndex(%q, %d): %w", typ, sh, ErrIndexMap)
	}
	return sh, nil
}

// BondLen returns the expected hopping integral vector length for a bond
// from an atom of type ti to an atom of type tj.
func (m *IndexMap) BondLen(ti, tj string) (int, error) {
	t, ok := m.bond[typePair{ti, tj}]
	if !ok {
		return 0, fmt.Errorf("BondLen(%q, %q): %w", ti, tj, ErrUnknownType)
	}
	return t.size, nil
}

// BondSpan returns the slot span of shell pair (si of ti, sj of tj).
func (m *IndexMap) BondSpan(ti, tj string, si, sj int) (Span, error) {
	t, ok := m.bond[typePair{ti, tj}]
	if !ok {
		return Span{}, fmt.Errorf("BondSpan(%q, %q): %w", ti, tj, ErrUnknownType)
	}
	return t.lookup(si, sj)
}

// BondSpanByName resolves shell names before calling BondSpan.
func (m *IndexMap) BondSpanByName(ti, tj, si, sj string) (Span, error) {
	i, j, err := m.shellIndices(ti, tj, si, sj)
	if err != nil {
		return Span{}, fmt.Errorf("BondSpanByName: %w", err)
	}
	return m.BondSpan(ti, tj, i, j)
}

// StrainLen returns the expected onsite-strain integral vector length for
// an environment bond owned by an atom of type owner. The neighbour type
// changes integral values, never slot layout.
func (m *IndexMap) StrainLen(owner string) (int, error) {
	t, ok := m.strain[owner]
	if !ok {
		return 0, fmt.Errorf("StrainLen(%q): %w", owner, ErrUnknownType)
	}
	return t.size, nil
}

// StrainSpan returns the slot span of owner shell pair (sa, sb).
func (m *IndexMap) StrainSpan(owner string, sa, sb int) (Span, error) {
	t, ok := m.strain[owner]
	if !ok {
		return Span{}, fmt.Errorf("StrainSpan(%q): %w", owner, ErrUnknownType)
	}
	return t.lookup(sa, sb)
}

func (t *pairTable) lookup(i, j int) (Span, error) {
	if i < 0 || i >= len(t.spans) || j < 0 || j >= len(t.spans[i]) {
		return Span{}, fmt.Errorf("shell pair (%d,%d): %w", i, j, ErrIndexMap)
	}
	return t.spans[i][j], nil
}

func (m *IndexMap) shellIndices(ti, tj, si, sj string) (int, int, error) {
	li, ok := m.layouts[ti]
	if !ok {
		return 0, 0, fmt.Errorf("type %q: %w", ti, ErrUnknownType)
	}
	lj, ok := m.layouts[tj]
	if !ok {
		return 0, 0, fmt.Errorf("type %q: %w", tj, ErrUnknownType)
	}
	i, j := li.Index(si), lj.Index(sj)
	if i < 0 {
		return 0, 0, fmt.Errorf("type %q shell %q: %w", ti, si, ErrUnknownShell)
	}
	if j < 0 {
		return 0, 0, fmt.Errorf("type %q shell %q: %w", tj, sj, ErrUnknownShell)
	}
	return i, j, nil
}

// Validate checks the index map invariants:
//   - every span has width PairWidth of its two shells;
//   - spans of one table are contiguous and partition [0, size);
//   - table (A,B) and table (B,A) agree on total size and on the width of
//     every transposed shell pair, whatever order A and B declare shells in.
func (m *IndexMap) Validate() error {
	for key, t := range m.bond {
		if err := t.check(m.layouts[key.a], m.layouts[key.b]); err != nil {
			return fmt.Errorf("Validate: bond %s-%s: %w", key.a, key.b, err)
		}
		rev, ok := m.bond[typePair{key.b, key.a}]
		if !ok || rev.size != t.size {
			return fmt.Errorf("Validate: bond %s-%s has no matching reverse table: %w", key.a, key.b, ErrIndexMap)
		}
		for i := range t.spans {
			for j := range t.spans[i] {
				if t.spans[i][j].Len() != rev.spans[j][i].Len() {
					return fmt.Errorf("Validate: bond %s-%s shells (%d,%d): %w", key.a, key.b, i, j, ErrIndexMap)
				}
			}
		}
	}
	for typ, t := range m.strain {
		l := m.layouts[typ]
		if err := t.check(l, l); err != nil {
			return fmt.Errorf("Validate: strain %s: %w", typ, err)
		}
	}
	return nil
}

func (t *pairTable) check(a, b Layout) error {
	next := 0
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < b.Len(); j++ {
			sp := t.spans[i][j]
			if sp.Start != next || sp.Len() != PairWidth(a.shells[i].Shell, b.shells[j].Shell) {
				return fmt.Errorf("span %v at (%d,%d): %w", sp, i, j, ErrIndexMap)
			}
			next = sp.End
		}
	}
	if next != t.size {
		return fmt.Errorf("size %d != %d: %w", t.size, next, ErrIndexMap)
	}
	return nil
}
