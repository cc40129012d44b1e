// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Growth algorithms themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Share one *rand.Rand via WithRand across repeated AddBANode/AddRandomNode
//     calls; WithSeed inside a loop would restart the stream every call.

package builder

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/netgrowth/sampler"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before any graph mutation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic RNG from seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = sampler.NewRand(seed)
	}
}

// WithLogger attaches a structured logger. Constructors log one Debug event
// per run and Trace events per step.
func WithLogger(l zerolog.Logger) BuilderOption {
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithMaxRedraws bounds the self-loop redraws of one NoGrowthBarabasi step.
// Panics if n < 1.
func WithMaxRedraws(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxRedraws(n<1)")
	}
	return func(c *builderConfig) {
		c.maxRedraws = n
	}
}
