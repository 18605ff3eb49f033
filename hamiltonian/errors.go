// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"errors"

	"github.com/dywu101/deeptb/structure"
)

var (
	// ErrIntegralLength indicates an integral vector (or list of vectors)
	// whose length differs from what the index map expects.
	ErrIntegralLength = errors.New("hamiltonian: integral length mismatch")

	// ErrMissingOverlap is returned when a non-orthogonal basis is requested
	// without overlap integrals.
	ErrMissingOverlap = errors.New("hamiltonian: non-orthogonal basis without overlap integrals")

	// ErrNotAssembled is returned by Model.Solve before Model.Assemble.
	ErrNotAssembled = errors.New("hamiltonian: solve called before assemble")

	// ErrNoSOCLambdas is returned when a spin-orbit solve is requested but
	// no SOC lambdas were assembled.
	ErrNoSOCLambdas = errors.New("hamiltonian: spin-orbit solve without SOC lambdas")

	// ErrBandWindow indicates a band window outside the number of bands.
	ErrBandWindow = errors.New("hamiltonian: band window out of range")

	// ErrTimeReversal is returned when a time-symmetric solve is requested
	// on a structure whose hopping list carries both directions.
	ErrTimeReversal = errors.New("hamiltonian: time-symmetric solve of a two-way bond list")

	// ErrNilStructure is returned for a nil structure argument.
	ErrNilStructure = errors.New("hamiltonian: nil structure")

	// ErrTypeMismatch is structure.ErrTypeMismatch, re-exported so callers
	// of this package can match strain-neighbour type errors directly.
	ErrTypeMismatch = structure.ErrTypeMismatch
)

const (
	opAssemble = "Assemble"
	opSolve    = "Solve"
	opBloch    = "Bloch"
	opBatch    = "SolveBatch"
)
