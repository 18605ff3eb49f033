// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"runtime"

	"github.com/dywu101/deeptb/matrix"
	"github.com/dywu101/deeptb/soc"
)

// Basis selects whether overlap integrals are used.
type Basis uint8

const (
	// BasisAuto is non-orthogonal iff overlap integrals are supplied.
	BasisAuto Basis = iota
	// BasisOrthogonal ignores overlaps; S = I.
	BasisOrthogonal
	// BasisNonOrthogonal requires overlaps (ErrMissingOverlap otherwise).
	BasisNonOrthogonal
)

// AssembleOption configures Assemble.
type AssembleOption func(*assembleConfig)

type assembleConfig struct {
	basis Basis
	cache *soc.Cache
}

// WithBasis selects the basis policy. Panics on an unknown value.
func WithBasis(b Basis) AssembleOption {
	if b > BasisNonOrthogonal {
		panic("hamiltonian: WithBasis: unknown basis")
	}
	return func(c *assembleConfig) { c.basis = b }
}

// WithSOCCache shares an atomic SOC cache across assemblies. Panics on nil.
func WithSOCCache(cache *soc.Cache) AssembleOption {
	if cache == nil {
		panic("hamiltonian: WithSOCCache(nil)")
	}
	return func(c *assembleConfig) { c.cache = cache }
}

// SolveOption configures Solve.
type SolveOption func(*solveConfig)

type solveConfig struct {
	spinOrbit bool
	vectors   bool
	unit      Unit
	bandMin   int
	bandMax   int // 0 means all bands
	workers   int
	eigen     []matrix.Option
}

func defaultSolveConfig() solveConfig {
	return solveConfig{unit: Hartree, workers: runtime.GOMAXPROCS(0)}
}

// WithSpinOrbit solves the spin-doubled problem with SOC terms.
func WithSpinOrbit() SolveOption {
	return func(c *solveConfig) { c.spinOrbit = true }
}

// WithEigenvectors returns eigenvectors (Löwdin basis) and Cholesky factors.
func WithEigenvectors() SolveOption {
	return func(c *solveConfig) { c.vectors = true }
}

// WithUnit declares the energy unit of the integrals (default Hartree).
func WithUnit(u Unit) SolveOption {
	if u > EV {
		panic("hamiltonian: WithUnit: unknown unit")
	}
	return func(c *solveConfig) { c.unit = u }
}

// WithBandWindow keeps bands [min, max) of the ascending spectrum.
// Panics unless 0 ≤ min < max.
func WithBandWindow(min, max int) SolveOption {
	if min < 0 || max <= min {
		panic("hamiltonian: WithBandWindow requires 0 <= min < max")
	}
	return func(c *solveConfig) { c.bandMin, c.bandMax = min, max }
}

// WithWorkers bounds the number of k-points solved concurrently.
// Panics if n < 1.
func WithWorkers(n int) SolveOption {
	if n < 1 {
		panic("hamiltonian: WithWorkers requires n >= 1")
	}
	return func(c *solveConfig) { c.workers = n }
}

// WithEigenOptions forwards options to matrix.SolveGeneralized.
func WithEigenOptions(opts ...matrix.Option) SolveOption {
	return func(c *solveConfig) { c.eigen = append(c.eigen, opts...) }
}
