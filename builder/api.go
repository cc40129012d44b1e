// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One ownership convention: every growth operation mutates a
//     caller-supplied core.Store and returns only an error. "Growing a new
//     graph" is Apply on an explicitly empty store; BuildGraph is sugar.
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//
// AI-Hints (practical):
//   - Compose NoGrowthBarabasi after NoPreferentialAttachment in one Apply
//     call to rewire a grown graph with the same RNG stream.
//   - Use Schedule for hybrid BA/random growth instead of hand-written loops.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/core"
)

// Constructor applies a growth model to g using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before the first mutation and return sentinels.
//   - Keep g simple (no loops, no duplicate edges).
//   - Preserve determinism for the same config and call order.
type Constructor func(g core.Store, cfg builderConfig) error

// Apply resolves the builder configuration from opts and runs every
// constructor against g in order. The first error is wrapped with
// "Apply: %w" and returned; earlier mutations are kept.
//
// Complexity: O(len(opts)) + Σ cost of each constructor.
func Apply(g core.Store, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: %w", ErrNilGraph)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrNilGraph)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// BuildGraph creates an empty core.Graph and applies cons to it.
// On error the partially grown graph is returned alongside it, so callers
// can inspect the steps that did complete.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, opts, cons...); err != nil {
		return g, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// addSeedNodes appends n isolated untagged nodes starting at g.NextID().
// Complexity: O(n).
func addSeedNodes(method string, g core.Store, n int) error {
	for i := 0; i < n; i++ {
		id := g.NextID()
		if err := g.AddNode(id, core.KindUntagged); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, id, err)
		}
	}

	return nil
}

// connect adds edges from u to every id in targets.
func connect(method string, g core.Store, u int64, targets []int64) error {
	for _, v := range targets {
		if _, err := g.AddEdgeReport(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
		}
	}

	return nil
}
