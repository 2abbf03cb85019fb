// SPDX-License-Identifier: MIT
// Package: bidipath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil               (pure/deterministic unless seeded)
//   • weightFn = ModularWeightFn   ((i+j)%10+1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for deterministic topologies (Dense, Sparse, Chain, Grid).
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: ModularWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
