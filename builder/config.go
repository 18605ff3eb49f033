// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • cutoff        = DefaultCutoff
//   • strainCutoff  = 0 (no strain bonds)
//   • timeReversal  = true (one direction per pair)
//   • searchRange   = AutoSearchRange
//   • frame         = 0
//   • vacuum        = DefaultVacuum

package builder

// builderConfig aggregates all knobs used by constructors and the
// neighbour search. It is passed by value.
type builderConfig struct {
	cutoff       float64
	strainCutoff float64
	timeReversal bool
	searchRange  int
	frame        int
	vacuum       float64
}

// newBuilderConfig applies opts in order on top of the defaults;
// last writer wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		cutoff:       DefaultCutoff,
		timeReversal: true,
		searchRange:  AutoSearchRange,
		vacuum:       DefaultVacuum,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
