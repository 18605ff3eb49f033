// SPDX-License-Identifier: MIT

package orbital

import (
	"fmt"
	"strings"
)

// ShellSpec is one named shell of an atom type.
type ShellSpec struct {
	Name  string // label as declared, e.g. "2s", "s*"
	Shell Shell
}

// Layout is the ordered shell list of one atom type. It is a value type;
// the shell slice is never mutated after NewLayout returns.
type Layout struct {
	shells  []ShellSpec
	offsets []int // prefix sums, len(shells)+1
}

// NewLayout builds a Layout from shell labels in declared order.
//
// Errors:
//   - ErrEmptyLayout when no label is given.
//   - ErrUnknownShell for a label that is not s, p or d.
//   - ErrDuplicateShell when a label repeats.
func NewLayout(labels ...string) (Layout, error) {
	if len(labels) == 0 {
		return Layout{}, ErrEmptyLayout
	}
	seen := make(map[string]struct{}, len(labels))
	shells := make([]ShellSpec, 0, len(labels))
	offsets := make([]int, 1, len(labels)+1)
	for _, name := range labels {
		if _, dup := seen[name]; dup {
			return Layout{}, fmt.Errorf("NewLayout: %q: %w", name, ErrDuplicateShell)
		}
		seen[name] = struct{}{}
		sh, err := ParseShell(name)
		if err != nil {
			return Layout{}, fmt.Errorf("NewLayout: %w", err)
		}
		shells = append(shells, ShellSpec{Name: name, Shell: sh})
		offsets = append(offsets, offsets[len(offsets)-1]+sh.Count())
	}
	return Layout{shells: shells, offsets: offsets}, nil
}

// MustLayout is NewLayout for static tables; it panics on error.
func MustLayout(labels ...string) Layout {
	l, err := NewLayout(labels...)
	if err != nil {
		panic(err)
	}
	return l
}

// Len returns the number of shells.
func (l Layout) Len() int { return len(l.shells) }

// Shells returns a copy of the shell list.
func (l Layout) Shells() []ShellSpec {
	out := make([]ShellSpec, len(l.shells))
	copy(out, l.shells)
	return out
}

// ShellAt returns the i-th shell.
func (l Layout) ShellAt(i int) ShellSpec { return l.shells[i] }

// Count returns the number of orbitals of the atom type.
func (l Layout) Count() int {
	if len(l.offsets) == 0 {
		return 0
	}
	return l.offsets[len(l.offsets)-1]
}

// Offset returns the first orbital of shell i inside the atom block.
func (l Layout) Offset(i int) int { return l.offsets[i] }

// MaxL returns the largest angular momentum in the layout, or -1 when empty.
func (l Layout) MaxL() int {
	maxL := -1
	for _, s := range l.shells {
		if s.Shell.L() > maxL {
			maxL = s.Shell.L()
		}
	}
	return maxL
}

// Index returns the position of the named shell, or -1.
func (l Layout) Index(name string) int {
	for i, s := range l.shells {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// String renders the layout as "2s,2p"; it doubles as a cache key.
func (l Layout) String() string {
	names := make([]string, len(l.shells))
	for i, s := range l.shells {
		names[i] = s.Name
	}
	return strings.Join(names, ",")
}

// Equal reports whether two layouts declare the same shells in the same order.
func (l Layout) Equal(o Layout) bool {
	if len(l.shells) != len(o.shells) {
		return false
	}
	for i := range l.shells {
		if l.shells[i] != o.shells[i] {
			return false
		}
	}
	return true
}
