// SPDX-License-Identifier: MIT

package structure

import "errors"

var (
	// ErrNoAtoms is returned for a structure without atoms.
	ErrNoAtoms = errors.New("structure: no atoms")

	// ErrNoOrbitals is returned when no atom of the structure has an
	// orbital layout.
	ErrNoOrbitals = errors.New("structure: no atom carries orbitals")

	// ErrAtomIndex indicates a bond endpoint outside [0, NumAtoms).
	ErrAtomIndex = errors.New("structure: atom index out of range")

	// ErrTypeMismatch indicates a bond whose declared endpoint type differs
	// from the structure's recorded symbol for that atom, or an onsite bond
	// joining two different types.
	ErrTypeMismatch = errors.New("structure: atom type mismatch")

	// ErrUnknownType indicates a bond endpoint whose type has no orbital layout.
	ErrUnknownType = errors.New("structure: atom type without orbital layout")

	// ErrBadBond indicates a malformed bond record (onsite bond with i != j
	// or R != 0, hopping bond with i == j and R == 0, duplicate onsite bond,
	// missing onsite bond for an atom with orbitals).
	ErrBadBond = errors.New("structure: malformed bond")

	// ErrBadDirection indicates a bond direction that is not a unit vector.
	ErrBadDirection = errors.New("structure: bond direction is not unit length")

	// ErrIndexMapMismatch indicates a supplied index map built from
	// different layouts than the structure's.
	ErrIndexMapMismatch = errors.New("structure: index map does not match layouts")
)
