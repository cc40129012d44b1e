// Package builder grows and rewires core graphs with the stochastic models
// that vary the two ingredients of the Barabási–Albert model: growth and
// preferential attachment.
//
// The package offers the following key components:
//
//	Orchestration
//	  Constructor                      func(g core.Store, cfg builderConfig) error
//	  Apply                            run constructors against a caller-supplied store
//	  BuildGraph                       Apply starting from an explicit empty core.Graph
//	Models (Constructors)
//	  NoPreferentialAttachment(n, m)   growth with uniform targets, "model A"
//	  NoGrowthBarabasi(n, step)        preferential rewiring of a fixed node set, "model B"
//	  Schedule(seeds, grow, steps...)  repeating pattern of node insertions
//	Node-addition primitives (mutate in place)
//	  AddBANode(g, m, ...)             one node, m ≥ 1 targets by (degree+1) weight
//	  AddRandomNode(g, p, ...)         one node, Bernoulli(p) per existing node
//	Configuration primitives
//	  BuilderOption                    WithSeed, WithRand, WithLogger, WithMaxRedraws
//
// Guarantees:
//
//   - Graphs stay simple: no self-loops, no duplicate edges.
//   - Determinism: same seed, options and call order ⇒ identical graphs.
//   - Validation happens before a step mutates the graph; a failing step
//     leaves earlier steps' mutations in place.
//   - Runtime errors are sentinels wrapped with method context; option
//     constructors panic on meaningless input.
package builder
