// SPDX-License-Identifier: MIT
// Package: roadwork/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = nil    (pure/deterministic unless seeded)
//   • weightFn     = ConstantWeightFn(1)
//   • spacing      = 100    (grid pitch in coordinate units)
//   • jitter       = 0      (no coordinate noise)
//   • diagonalProb = 0      (no diagonals)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng          *rand.Rand // nil means “no randomness”
	weightFn     WeightFn   // per-edge weight
	spacing      int        // grid pitch, > 0
	jitter       int        // max |offset| per coordinate, >= 0 and < spacing/2
	diagonalProb float64    // probability of one diagonal per grid cell
}

const (
	defaultSpacing      = 100
	defaultJitter       = 0
	defaultDiagonalProb = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:          nil,
		weightFn:     DefaultWeightFn,
		spacing:      defaultSpacing,
		jitter:       defaultJitter,
		diagonalProb: defaultDiagonalProb,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// intn draws from [0,n) or returns 0 without an RNG.
func (c builderConfig) intn(n int) int {
	if c.rng == nil || n <= 0 {
		return 0
	}
	return c.rng.Intn(n)
}

// chance reports true with probability p; always false without an RNG.
func (c builderConfig) chance(p float64) bool {
	if c.rng == nil || p <= 0 {
		return false
	}
	return c.rng.Float64() < p
}
