// SPDX-License-Identifier: MIT

package kpoints

import "errors"

var (
	// ErrTooFewPoints indicates a path with fewer than two vertices.
	ErrTooFewPoints = errors.New("kpoints: path needs at least two points")

	// ErrBadDensity indicates a non-positive number of points per segment.
	ErrBadDensity = errors.New("kpoints: points per segment must be >= 1")

	// ErrBadGrid indicates a Monkhorst-Pack dimension < 1.
	ErrBadGrid = errors.New("kpoints: grid dimensions must be >= 1")

	// ErrUnknownLabel indicates a high-symmetry label missing from the
	// point table.
	ErrUnknownLabel = errors.New("kpoints: unknown high-symmetry label")
)
