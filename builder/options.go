// SPDX-License-Identifier: MIT
// Package: roadwork/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithSpacing sets the grid pitch. Panics if s <= 0.
func WithSpacing(s int) BuilderOption {
	if s <= 0 {
		panic(fmt.Sprintf("builder: WithSpacing(%d): must be > 0", s))
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithJitter perturbs every grid coordinate by up to ±j. Jitter is clamped
// at build time to stay below half the spacing so the grid stays planar.
// Panics if j < 0.
func WithJitter(j int) BuilderOption {
	if j < 0 {
		panic(fmt.Sprintf("builder: WithJitter(%d): must be >= 0", j))
	}
	return func(c *builderConfig) {
		c.jitter = j
	}
}

// WithDiagonals adds one diagonal to each grid cell with probability p.
// Panics if p is outside [0,1].
func WithDiagonals(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithDiagonals(%g): must be in [0,1]", p))
	}
	return func(c *builderConfig) {
		c.diagonalProb = p
	}
}
