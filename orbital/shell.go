// SPDX-License-Identifier: MIT

package orbital

import (
	"fmt"
	"strings"
	"unicode"
)

// Shell is an angular-momentum shell. The zero value is S.
type Shell uint8

// Supported shells. NumShells bounds compile-time tables indexed by Shell.
const (
	S Shell = iota
	P
	D

	NumShells = int(D) + 1
)

var shellLetters = [NumShells]string{"s", "p", "d"}

// L returns the angular momentum quantum number l.
func (s Shell) L() int { return int(s) }

// Count returns the number of orbitals in the shell, 2l+1.
func (s Shell) Count() int { return 2*int(s) + 1 }

// Valid reports whether s is one of the supported shells.
func (s Shell) Valid() bool { return int(s) < NumShells }

// String returns the spectroscopic letter.
func (s Shell) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shell(%d)", uint8(s))
	}
	return shellLetters[s]
}

// ParseShell resolves a shell label such as "s", "2p", "3d" or "s*".
// Only letters are significant; digits and markers distinguish shells of
// the same l within one layout.
func ParseShell(label string) (Shell, error) {
	var b strings.Builder
	for _, r := range label {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	letter := b.String()
	for i, l := range shellLetters {
		if letter == l {
			return Shell(i), nil
		}
	}
	return 0, fmt.Errorf("ParseShell(%q): %w", label, ErrUnknownShell)
}

// Parity returns (-1)^(la+lb), the sign relating the two orderings of a
// two-centre integral between shells a and b.
func Parity(a, b Shell) float64 {
	if (a.L()+b.L())%2 == 0 {
		return 1
	}
	return -1
}
