// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors and Build never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "math"

// BuilderOption customizes the neighbour search and the presets.
type BuilderOption func(*builderConfig)

// WithCutoff sets the hopping cutoff radius. Panics unless r > 0 and finite.
func WithCutoff(r float64) BuilderOption {
	if !positive(r) {
		panic("builder: WithCutoff requires a finite r > 0")
	}
	return func(c *builderConfig) { c.cutoff = r }
}

// WithStrainCutoff enables onsite-strain bonds to every site within r of an
// orbital-owning atom. r == 0 disables them. Panics if r < 0 or not finite.
func WithStrainCutoff(r float64) BuilderOption {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		panic("builder: WithStrainCutoff requires a finite r >= 0")
	}
	return func(c *builderConfig) { c.strainCutoff = r }
}

// WithTimeReversal selects one-direction (true, default) or
// both-direction hopping enumeration.
func WithTimeReversal(on bool) BuilderOption {
	return func(c *builderConfig) { c.timeReversal = on }
}

// WithSearchRange fixes the number of periodic images searched along each
// periodic axis. Panics if n < 0; use AutoSearchRange through the default.
func WithSearchRange(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithSearchRange requires n >= 0")
	}
	return func(c *builderConfig) { c.searchRange = n }
}

// WithFrame stamps every bond with the given frame index. Panics if f < 0.
func WithFrame(f int) BuilderOption {
	if f < 0 {
		panic("builder: WithFrame requires f >= 0")
	}
	return func(c *builderConfig) { c.frame = f }
}

// WithVacuum sets the cell length presets use along non-periodic axes.
// Panics unless v > 0 and finite.
func WithVacuum(v float64) BuilderOption {
	if !positive(v) {
		panic("builder: WithVacuum requires a finite v > 0")
	}
	return func(c *builderConfig) { c.vacuum = v }
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }
