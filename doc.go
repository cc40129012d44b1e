// Package netgrowth is a small laboratory for growing scale-free networks
// and measuring how far each growth rule drifts from a power law.
//
// What is inside?
//
//	core/     – simple undirected graph with provenance tags per node
//	sampler/  – degree-weighted and uniform draws on an explicit RNG
//	builder/  – growth models as functional-option constructors:
//	              NoPreferentialAttachment  (growth, uniform targets)
//	              NoGrowthBarabasi          (fixed nodes, preferential edges)
//	              AddBANode / AddRandomNode (single mixed-model insertions)
//	              Schedule + ParsePattern   (repeat "BBR"-style patterns)
//	fitting/  – degree distribution, degree correlation, y = b·xᵃ fits, plots
//	config/   – YAML + flag configuration and the zerolog logger
//	cmd/netgrowth – CLI printing a YAML report per run
//
// Determinism: every stochastic path draws from a caller-provided
// *rand.Rand (builder.WithSeed / builder.WithRand). Same seed, same graph.
//
// Quick example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.NoPreferentialAttachment(2000, 3),
//	)
//	law, _, err := fitting.FitDegreeDistribution(g)
//	fmt.Println(law.A)
//
//	go install github.com/katalvlaran/netgrowth/cmd/netgrowth@latest
package netgrowth
