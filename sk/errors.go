// SPDX-License-Identifier: MIT

package sk

import "errors"

var (
	// ErrShellOrder is returned when Rotate is called with lo above hi.
	ErrShellOrder = errors.New("sk: shells not in canonical order")

	// ErrIntegralCount indicates a value vector whose length is not
	// orbital.PairWidth(lo, hi).
	ErrIntegralCount = errors.New("sk: wrong number of integrals")

	// ErrUnsupportedShell is returned for a shell outside the formula table.
	ErrUnsupportedShell = errors.New("sk: unsupported shell")
)
