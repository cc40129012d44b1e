// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng        = nil          (stochastic models require WithSeed/WithRand)
//   • logger     = zerolog.Nop()
//   • maxRedraws = defaultMaxRedraws

package builder

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for every stochastic choice; nil means "not configured".
	rng *rand.Rand
	// Structured logger; Nop unless WithLogger is given.
	logger zerolog.Logger
	// Upper bound on self-loop redraws per NoGrowthBarabasi step.
	maxRedraws int
}

// defaultMaxRedraws bounds the self-loop redraw loop. With n ≥ 2 nodes and
// +1 smoothing the chance of hitting it is negligible.
const defaultMaxRedraws = 1000

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		logger:     zerolog.Nop(),
		maxRedraws: defaultMaxRedraws,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
