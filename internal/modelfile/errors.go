// SPDX-License-Identifier: MIT

package modelfile

import "errors"

var (
	// ErrInvalid indicates a structurally invalid model file.
	ErrInvalid = errors.New("modelfile: invalid model")

	// ErrMissingParameter indicates a bond, shell pair or atom type with
	// no parameters in the file.
	ErrMissingParameter = errors.New("modelfile: missing parameter")

	// ErrLength indicates a parameter vector of the wrong length.
	ErrLength = errors.New("modelfile: parameter length mismatch")
)
