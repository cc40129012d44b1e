// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// impl_no_preferential.go - NoPreferentialAttachment(n, m), growth without
// preferential attachment ("model A").
//
// Canonical model:
//   - Seed m isolated nodes.
//   - For each of the remaining n−m steps: add one node (NextID), draw m
//     distinct existing nodes uniformly (degree is ignored), connect.
//
// Contract:
//   - 0 < m ≤ n (else ErrInvalidParameter, before any mutation).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Adds exactly n nodes and m·(n−m) edges; on an empty store the result
//     has n nodes.
//   - A step whose population is smaller than m fails with
//     ErrInsufficientPopulation before it adds its node.
//
// Complexity:
//   - Time: O(n·(V + m)) for the per-step node snapshot and draw.
//
// Determinism:
//   - Node snapshot in creation order; draw order fixed by the RNG stream.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/sampler"
)

// NoPreferentialAttachment returns a Constructor growing n nodes where each
// new node attaches to m distinct existing nodes chosen uniformly.
func NoPreferentialAttachment(n, m int) Constructor {
	return func(g core.Store, cfg builderConfig) error {
		const method = MethodNoPreferentialAttachment

		// 1) Validate before touching g.
		if err := validateMin(method, "n", n, MinNodes); err != nil {
			return err
		}
		if err := validateMin(method, "m", m, MinEdgesPerNode); err != nil {
			return err
		}
		if m > n {
			return fmt.Errorf("%s: m=%d > n=%d: %w", method, m, n, ErrInvalidParameter)
		}
		if err := requireRand(method, cfg); err != nil {
			return err
		}

		log := cfg.logger.With().Str("model", method).Int("n", n).Int("m", m).Logger()
		log.Debug().Msg("growth started")

		// 2) Seed m isolated nodes.
		if err := addSeedNodes(method, g, m); err != nil {
			return err
		}

		// 3) Grow the remaining n−m nodes.
		for step := 0; step < n-m; step++ {
			nodes := g.Nodes()
			picks, err := sampler.Uniform(cfg.rng, len(nodes), m)
			if err != nil {
				return fmt.Errorf("%s: step %d: %w", method, step, err)
			}
			targets := make([]int64, len(picks))
			for i, idx := range picks {
				targets[i] = nodes[idx]
			}

			u := g.NextID()
			if err = g.AddNode(u, core.KindUntagged); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", method, u, err)
			}
			if err = connect(method, g, u, targets); err != nil {
				return err
			}
			log.Trace().Int("step", step).Int64("node", u).Ints64("targets", targets).Msg("node attached")
		}

		log.Debug().Int("nodes", g.NodeCount()).Msg("growth finished")

		return nil
	}
}
