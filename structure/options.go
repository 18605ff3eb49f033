// SPDX-License-Identifier: MIT

package structure

import "github.com/dywu101/deeptb/orbital"

// DefaultDirectionTol is the tolerance on | |Dir| - 1 | for hopping and
// strain bonds.
const DefaultDirectionTol = 1e-6

// Option customises New.
type Option func(*config)

type config struct {
	timeReversal bool
	strain       []Bond
	index        *orbital.IndexMap
	dirTol       float64
}

func defaultConfig() config {
	return config{timeReversal: true, dirTol: DefaultDirectionTol}
}

// WithTimeReversal declares whether the hopping list carries each pair in
// one direction only (true, default) or in both directions.
func WithTimeReversal(on bool) Option {
	return func(c *config) { c.timeReversal = on }
}

// WithStrainBonds attaches onsite-environment bonds. Each bond's I is the
// owner atom, J the neighbour that perturbs it.
func WithStrainBonds(bonds []Bond) Option {
	return func(c *config) { c.strain = append([]Bond(nil), bonds...) }
}

// WithIndexMap shares a pre-built index map. It must have been built from
// the same layouts as passed to New. Panics on nil.
func WithIndexMap(m *orbital.IndexMap) Option {
	if m == nil {
		panic("structure: WithIndexMap(nil)")
	}
	return func(c *config) { c.index = m }
}

// WithDirectionTolerance overrides DefaultDirectionTol. Panics if tol <= 0.
func WithDirectionTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("structure: WithDirectionTolerance requires tol > 0")
	}
	return func(c *config) { c.dirTol = tol }
}
