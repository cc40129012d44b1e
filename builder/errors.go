// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Sampling sentinels are shared with package sampler, so a caller can
//     match builder.ErrInsufficientPopulation whether the check fired in
//     the builder or inside a draw.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".

package builder

import (
	"errors"

	"github.com/katalvlaran/netgrowth/sampler"
)

// ErrInvalidParameter indicates a parameter outside its documented domain
// (n ≤ 0, m ≤ 0, m > n, p ∉ [0,1], step < 0). Raised before any mutation.
var ErrInvalidParameter = sampler.ErrInvalidParameter

// ErrInsufficientPopulation indicates a draw of more distinct nodes than
// the graph holds. Raised at the offending step, before it mutates.
var ErrInsufficientPopulation = sampler.ErrInsufficientPopulation

// ErrDegenerateWeights indicates a draw with no usable weight mass, or a
// NoGrowthBarabasi graph too small to avoid self-loops.
var ErrDegenerateWeights = sampler.ErrDegenerateWeights

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilGraph indicates a nil store or a nil constructor/step.
var ErrNilGraph = errors.New("builder: nil graph or constructor")
