// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the Hermitian and
// generalized eigensolvers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// Backend selects the real-symmetric diagonaliser used after embedding.
type Backend uint8

const (
	// BackendGonum uses gonum mat.EigenSym.
	BackendGonum Backend = iota
	// BackendJacobi uses cyclic Jacobi rotations.
	BackendJacobi
)

// String implements fmt.Stringer.
func (b Backend) String() string {
	switch b {
	case BackendGonum:
		return "gonum"
	case BackendJacobi:
		return "jacobi"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute Hermiticity tolerance.
	DefaultEpsilon = 1e-8

	// DefaultPivotTolerance is the relative Cholesky pivot floor:
	// a pivot d_j ≤ tol·|S[j,j]| is rejected as not positive definite.
	DefaultPivotTolerance = 1e-12

	// DefaultDegeneracyTolerance is the relative gap under which eigenvalues
	// of the real embedding are treated as one degenerate group.
	DefaultDegeneracyTolerance = 1e-8

	// DefaultMaxSweeps caps Jacobi sweeps.
	DefaultMaxSweeps = 100

	// DefaultBackend is BackendGonum.
	DefaultBackend = BackendGonum
)

const (
	panicEpsilonInvalid    = "matrix: WithEpsilon requires a finite eps >= 0"
	panicPivotInvalid      = "matrix: WithPivotTolerance requires a finite tol > 0"
	panicDegeneracyInvalid = "matrix: WithDegeneracyTolerance requires a finite tol > 0"
	panicSweepsInvalid     = "matrix: WithMaxSweeps requires n > 0"
	panicBackendInvalid    = "matrix: WithBackend: unknown backend"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved solver configuration. Fields are unexported;
// use the WithX constructors.
type Options struct {
	eps        float64
	pivotTol   float64
	degenTol   float64
	maxSweeps  int
	backend    Backend
	wantVecs   bool
	skipChecks bool
}

// WithEpsilon sets the Hermiticity tolerance.
//
// Errors:
//   - Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance sets the relative Cholesky pivot floor.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicPivotInvalid)
	}
	return func(o *Options) { o.pivotTol = tol }
}

// WithDegeneracyTolerance sets the relative gap for grouping degenerate
// eigenvalues during eigenvector recovery.
func WithDegeneracyTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicDegeneracyInvalid)
	}
	return func(o *Options) { o.degenTol = tol }
}

// WithMaxSweeps caps the number of Jacobi sweeps (BackendJacobi only).
func WithMaxSweeps(n int) Option {
	if n <= 0 {
		panic(panicSweepsInvalid)
	}
	return func(o *Options) { o.maxSweeps = n }
}

// WithBackend selects the diagonaliser.
func WithBackend(b Backend) Option {
	if b != BackendGonum && b != BackendJacobi {
		panic(panicBackendInvalid)
	}
	return func(o *Options) { o.backend = b }
}

// WithVectors requests eigenvectors in addition to eigenvalues.
func WithVectors() Option {
	return func(o *Options) { o.wantVecs = true }
}

// WithoutValidation skips the Hermiticity and finiteness scans for callers
// that build their matrices Hermitian by construction.
func WithoutValidation() Option {
	return func(o *Options) { o.skipChecks = true }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Backend returns the selected backend.
func (o Options) Backend() Backend { return o.backend }

// WantVectors reports whether eigenvectors were requested.
func (o Options) WantVectors() bool { return o.wantVecs }

// gatherOptions applies user setters on top of the defaults in order;
// last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		pivotTol:  DefaultPivotTolerance,
		degenTol:  DefaultDegeneracyTolerance,
		maxSweeps: DefaultMaxSweeps,
		backend:   DefaultBackend,
	}
	for _, set := range user {
		set(&o)
	}
	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
