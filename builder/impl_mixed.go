// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// impl_mixed.go - the two node-addition primitives that callers compose into
// hybrid growth: AddBANode (preferential) and AddRandomNode (Bernoulli).
//
// Contract (both):
//   - Mutate g in place; the new node takes g.NextID().
//   - Candidates are the nodes present before the call, in creation order.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// AddBANode(g, m):
//   - Tags the node KindBarabasi; draws m distinct candidates with weight
//     degree+1 without replacement; connects to each.
//   - m < 1 → ErrInvalidParameter; m > NodeCount → ErrInsufficientPopulation.
//     Both are raised before the node is added.
//
// AddRandomNode(g, p):
//   - Tags the node KindRandom; one Bernoulli(p) trial per candidate.
//   - p=0 ⇒ isolated node; p=1 ⇒ connected to every candidate.
//   - p ∉ [0,1] → ErrInvalidParameter before the node is added.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/sampler"
)

// AddBANode adds one preferentially attached node to g.
// Complexity: O(V + m·log V).
func AddBANode(g core.Store, m int, opts ...BuilderOption) error {
	if g == nil {
		return fmt.Errorf("%s: %w", MethodAddBANode, ErrNilGraph)
	}

	return addBANode(g, m, newBuilderConfig(opts...))
}

// AddRandomNode adds one node connected to each existing node with
// probability p.
// Complexity: O(V).
func AddRandomNode(g core.Store, p float64, opts ...BuilderOption) error {
	if g == nil {
		return fmt.Errorf("%s: %w", MethodAddRandomNode, ErrNilGraph)
	}

	return addRandomNode(g, p, newBuilderConfig(opts...))
}

func addBANode(g core.Store, m int, cfg builderConfig) error {
	const method = MethodAddBANode

	if err := validateMin(method, "m", m, MinEdgesPerNode); err != nil {
		return err
	}
	if err := requireRand(method, cfg); err != nil {
		return err
	}

	// Weights come from the pre-insertion state; the new node is not a candidate.
	ids, degrees := g.DegreeSnapshot()
	if m > len(ids) {
		return fmt.Errorf("%s: m=%d > nodes=%d: %w", method, m, len(ids), ErrInsufficientPopulation)
	}
	picks, err := sampler.SampleWithoutReplacement(cfg.rng, sampler.DegreeWeights(degrees), m)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	targets := make([]int64, len(picks))
	for i, idx := range picks {
		targets[i] = ids[idx]
	}

	u := g.NextID()
	if err = g.AddNode(u, core.KindBarabasi); err != nil {
		return fmt.Errorf("%s: AddNode(%d): %w", method, u, err)
	}
	if err = connect(method, g, u, targets); err != nil {
		return err
	}
	cfg.logger.Trace().Str("op", method).Int64("node", u).Ints64("targets", targets).Msg("node attached")

	return nil
}

func addRandomNode(g core.Store, p float64, cfg builderConfig) error {
	const method = MethodAddRandomNode

	if err := validateProbability(method, p); err != nil {
		return err
	}
	if err := requireRand(method, cfg); err != nil {
		return err
	}

	candidates := g.Nodes()
	u := g.NextID()
	if err := g.AddNode(u, core.KindRandom); err != nil {
		return fmt.Errorf("%s: AddNode(%d): %w", method, u, err)
	}

	linked := 0
	for _, v := range candidates {
		// p was validated above, Bernoulli cannot fail here
		ok, _ := sampler.Bernoulli(cfg.rng, p)
		if !ok {
			continue
		}
		if _, err := g.AddEdgeReport(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
		}
		linked++
	}
	cfg.logger.Trace().Str("op", method).Int64("node", u).Int("links", linked).Msg("node attached")

	return nil
}
