// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// impl_no_growth.go - NoGrowthBarabasi(n, step), preferential attachment
// without growth ("model B").
//
// Canonical model:
//   - Seed n isolated nodes; the node count never changes afterwards.
//   - Each step: now ~ uniform over all nodes; selected ~ (degree+1)
//     weights; redraw selected while it equals now; add edge (now,selected).
//   - An already-present edge is a no-op: step counts attempts, not
//     effective insertions.
//
// Contract:
//   - n ≥ 1, step ≥ 0 (else ErrInvalidParameter).
//   - step > 0 needs at least MinRewireNodes nodes (else ErrDegenerateWeights
//     before the first step); redraws are bounded by cfg.maxRedraws.
//   - cfg.rng must be non-nil when step > 0 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(step·V) (weight vector rebuilt each step) + O(step·log V) per draw.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/sampler"
)

// NoGrowthBarabasi returns a Constructor that seeds n isolated nodes and
// then performs step preferential edge insertions among them.
func NoGrowthBarabasi(n, step int) Constructor {
	return func(g core.Store, cfg builderConfig) error {
		const method = MethodNoGrowthBarabasi

		// 1) Validate before touching g.
		if err := validateMin(method, "n", n, MinNodes); err != nil {
			return err
		}
		if err := validateMin(method, "step", step, 0); err != nil {
			return err
		}
		if step > 0 {
			if g.NodeCount()+n < MinRewireNodes {
				return fmt.Errorf("%s: %d node(s) cannot host a non-loop edge: %w",
					method, g.NodeCount()+n, ErrDegenerateWeights)
			}
			if err := requireRand(method, cfg); err != nil {
				return err
			}
		}

		log := cfg.logger.With().Str("model", method).Int("n", n).Int("steps", step).Logger()
		log.Debug().Msg("rewire started")

		// 2) Seed the fixed node set.
		if err := addSeedNodes(method, g, n); err != nil {
			return err
		}

		// 3) Rewire.
		skipped := 0
		for s := 0; s < step; s++ {
			ids, degrees := g.DegreeSnapshot()
			weights := sampler.DegreeWeights(degrees)

			pick, err := sampler.Uniform(cfg.rng, len(ids), 1)
			if err != nil {
				return fmt.Errorf("%s: step %d: %w", method, s, err)
			}
			now := pick[0]
			selected, err := drawDistinct(cfg, weights, now)
			if err != nil {
				return fmt.Errorf("%s: step %d: %w", method, s, err)
			}

			added, err := g.AddEdgeReport(ids[now], ids[selected])
			if err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, ids[now], ids[selected], err)
			}
			if !added {
				skipped++
			}
			log.Trace().Int("step", s).Int64("now", ids[now]).Int64("selected", ids[selected]).
				Bool("added", added).Msg("edge attempted")
		}

		log.Debug().Int("skipped", skipped).Msg("rewire finished")

		return nil
	}
}

// drawDistinct samples an index by weight, redrawing while it equals avoid.
// Gives up with ErrDegenerateWeights after cfg.maxRedraws redraws.
func drawDistinct(cfg builderConfig, weights []float64, avoid int) (int, error) {
	for attempt := 0; attempt <= cfg.maxRedraws; attempt++ {
		idx, err := sampler.SampleWithReplacement(cfg.rng, weights)
		if err != nil {
			return 0, err
		}
		if idx != avoid {
			return idx, nil
		}
	}

	return 0, fmt.Errorf("no distinct target after %d redraws: %w", cfg.maxRedraws, ErrDegenerateWeights)
}
