// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// impl_schedule.go - Schedule(seeds, grow, steps...), hybrid growth from a
// repeating pattern of node-addition steps.
//
// Canonical model:
//   - Seed `seeds` isolated untagged nodes.
//   - Apply steps[0], steps[1], … cyclically until `grow` nodes were added.
//
// Contract:
//   - seeds ≥ 0, grow ≥ 0; grow > 0 needs at least one step (else
//     ErrInvalidParameter). Nil steps → ErrNilGraph.
//   - Per-step failures (e.g. a BA step with m > NodeCount) surface as the
//     step's sentinel; nodes added by earlier steps stay.
//
// AI-Hints:
//   - ParsePattern("BBR", m, p) builds [BA(m), BA(m), Random(p)].

package builder

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/netgrowth/core"
)

// Step is one node-addition primitive bound to its parameter.
type Step func(g core.Store, cfg builderConfig) error

// BAStep binds AddBANode to m.
func BAStep(m int) Step {
	return func(g core.Store, cfg builderConfig) error { return addBANode(g, m, cfg) }
}

// RandomStep binds AddRandomNode to p.
func RandomStep(p float64) Step {
	return func(g core.Store, cfg builderConfig) error { return addRandomNode(g, p, cfg) }
}

// ParsePattern turns a token string into steps: PatternBA ('B') yields
// BAStep(m), PatternRandom ('R') yields RandomStep(p). Case-insensitive;
// whitespace is ignored.
func ParsePattern(pattern string, m int, p float64) ([]Step, error) {
	var steps []Step
	for i, r := range pattern {
		if unicode.IsSpace(r) {
			continue
		}
		switch unicode.ToUpper(r) {
		case PatternBA:
			steps = append(steps, BAStep(m))
		case PatternRandom:
			steps = append(steps, RandomStep(p))
		default:
			return nil, fmt.Errorf("%s: pattern %q: unknown token %q at %d: %w",
				MethodSchedule, pattern, r, i, ErrInvalidParameter)
		}
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%s: empty pattern: %w", MethodSchedule, ErrInvalidParameter)
	}

	return steps, nil
}

// Schedule returns a Constructor seeding `seeds` nodes and then growing
// `grow` nodes by cycling through steps.
func Schedule(seeds, grow int, steps ...Step) Constructor {
	return func(g core.Store, cfg builderConfig) error {
		const method = MethodSchedule

		if err := validateMin(method, "seeds", seeds, 0); err != nil {
			return err
		}
		if err := validateMin(method, "grow", grow, 0); err != nil {
			return err
		}
		if grow > 0 && len(steps) == 0 {
			return fmt.Errorf("%s: no steps to grow %d nodes: %w", method, grow, ErrInvalidParameter)
		}
		for i, s := range steps {
			if s == nil {
				return fmt.Errorf("%s: nil step at index %d: %w", method, i, ErrNilGraph)
			}
		}

		log := cfg.logger.With().Str("model", method).Int("seeds", seeds).Int("grow", grow).
			Int("pattern", len(steps)).Logger()
		log.Debug().Msg("schedule started")

		if err := addSeedNodes(method, g, seeds); err != nil {
			return err
		}
		for i := 0; i < grow; i++ {
			if err := steps[i%len(steps)](g, cfg); err != nil {
				return fmt.Errorf("%s: node %d of %d: %w", method, i+1, grow, err)
			}
		}

		log.Debug().Int("nodes", g.NodeCount()).Msg("schedule finished")

		return nil
	}
}
