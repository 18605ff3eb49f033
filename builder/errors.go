// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the method name.
//   • Constructors and Build never panic; option constructors (WithX) do.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadCell indicates a singular or non-finite lattice cell.
var ErrBadCell = errors.New("builder: singular or non-finite cell")

// ErrBadSite indicates an empty symbol or a non-finite position.
var ErrBadSite = errors.New("builder: invalid site")

// ErrNoSites indicates a crystal without sites.
var ErrNoSites = errors.New("builder: crystal has no sites")

// ErrOverlappingSites indicates two sites (or periodic images) closer than
// MinSiteDistance.
var ErrOverlappingSites = errors.New("builder: overlapping sites")

// ErrBadParameter indicates a non-positive length passed to a preset.
var ErrBadParameter = errors.New("builder: invalid parameter")

// ErrConstructFailed indicates a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the method name and a formatted detail.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
