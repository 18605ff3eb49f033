// SPDX-License-Identifier: MIT

package orbital

import "errors"

var (
	// ErrUnknownShell is returned when a shell label does not name s, p or d.
	ErrUnknownShell = errors.New("orbital: unknown shell")

	// ErrEmptyLayout indicates an atom type declared without any shell.
	ErrEmptyLayout = errors.New("orbital: empty layout")

	// ErrDuplicateShell indicates the same shell name twice in one layout.
	ErrDuplicateShell = errors.New("orbital: duplicate shell name")

	// ErrUnknownType is returned by IndexMap lookups for an atom type that
	// has no layout.
	ErrUnknownType = errors.New("orbital: unknown atom type")

	// ErrIndexMap signals an index map whose slots are inconsistent with
	// the layouts it was built from.
	ErrIndexMap = errors.New("orbital: inconsistent index map")
)
