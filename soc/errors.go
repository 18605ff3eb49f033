// SPDX-License-Identifier: MIT

package soc

import "errors"

var (
	// ErrNotSOCCapable is returned when SOC is requested for a structure
	// none of whose orbital layouts carries a shell with l > 0.
	ErrNotSOCCapable = errors.New("soc: orbital layout has no l > 0 shell")

	// ErrLambdaLength indicates a per-atom lambda vector whose length
	// differs from the number of shells of the atom's type.
	ErrLambdaLength = errors.New("soc: lambda vector length mismatch")

	// ErrMissingLambdas indicates an atom with orbitals but no lambda vector.
	ErrMissingLambdas = errors.New("soc: missing lambda vector for atom")
)
