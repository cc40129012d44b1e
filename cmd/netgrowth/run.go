package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgrowth/bfs"
	"github.com/katalvlaran/netgrowth/builder"
	"github.com/katalvlaran/netgrowth/config"
	"github.com/katalvlaran/netgrowth/fitting"
)

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Grow one graph and report its degree statistics",
		Long: `Grow one graph and print a YAML report.

Models:
  a      uniform attachment: n nodes, each new node links to m existing ones
  b      no growth: n isolated nodes, steps preferential edge insertions
  mixed  m seed nodes, then n-m nodes following pattern (B = preferential, R = random with p)

Examples:
  netgrowth run --model a --n 2000 --m 3 --seed 1
  netgrowth run --model b --n 500 --steps 20000
  netgrowth run --model mixed --n 1000 --m 2 --p 0.01 --pattern BBR --plot-dir plots
  netgrowth run --config run.yaml --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			if configPath != "" {
				if err := cfg.LoadFromFile(configPath); err != nil {
					return err
				}
			}
			if err := cfg.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cfg.CreateLogger(cmd.ErrOrStderr())
			rep, err := execute(cfg, log)
			if err != nil {
				return err
			}

			return rep.write(cmd.OutOrStdout())
		},
	}

	d := config.New()
	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "YAML run configuration")
	fs.String(config.FlagName(config.KeyModel), d.Model(), "growth model: a, b or mixed")
	fs.Int(config.FlagName(config.KeyN), d.N(), "node count")
	fs.Int(config.FlagName(config.KeyM), d.M(), "edges per new node (a, mixed) and seed nodes (mixed)")
	fs.Float64(config.FlagName(config.KeyP), d.P(), "edge probability of random insertions (mixed)")
	fs.Int(config.FlagName(config.KeySteps), d.Steps(), "edge insertion attempts (b)")
	fs.String(config.FlagName(config.KeyPattern), d.Pattern(), "insertion pattern of B and R tokens (mixed)")
	fs.Int64(config.FlagName(config.KeySeed), 0, "random seed (default: current time)")
	fs.String(config.FlagName(config.KeyPlotDir), d.PlotDir(), "write log-log plots into this directory")
	fs.String(config.FlagName(config.KeyLogLevel), d.LogLevel(), "log level (trace, debug, info, warn, error)")

	return cmd
}

// execute grows the configured model and fits its degree statistics.
// Fit failures are recorded in the report; growth failures abort the run.
func execute(cfg *config.Config, log zerolog.Logger) (*report, error) {
	runID := uuid.NewString()
	log = log.With().Str("run", runID).Str("model", cfg.Model()).Logger()

	cons, rep, err := plan(cfg)
	if err != nil {
		return nil, err
	}
	rep.RunID = runID

	log.Info().Int64("seed", cfg.Seed()).Msg("growth started")
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(cfg.Seed()), builder.WithLogger(log)},
		cons,
	)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	rep.Nodes, rep.Edges = g.NodeCount(), g.EdgeCount()
	rep.Kinds = make(map[string]int)
	for k, n := range g.KindCounts() {
		rep.Kinds[k.String()] = n
	}
	if cfg.Model() == config.ModelB {
		rep.SkippedDuplicates = cfg.Steps() - g.EdgeCount()
	}
	sizes, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	rep.Components = len(sizes)
	if len(sizes) > 0 {
		rep.LargestComponent = sizes[0]
	}
	log.Info().Int("nodes", rep.Nodes).Int("edges", rep.Edges).Msg("growth finished")

	dist, distSeries, distErr := fitting.FitDegreeDistribution(g)
	rep.Distribution = newFitReport(dist, distSeries, distErr)
	corr, corrSeries, corrErr := fitting.FitDegreeCorrelation(g)
	rep.Correlation = newFitReport(corr, corrSeries, corrErr)
	for _, e := range []error{distErr, corrErr} {
		if e != nil {
			log.Warn().Err(e).Msg("fit skipped")
		}
	}

	if dir := cfg.PlotDir(); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("run %s: plot dir: %w", runID, err)
		}
		plots := []struct {
			name, ylabel string
			s            fitting.Series
			law          fitting.PowerLaw
			err          error
		}{
			{"degree-distribution", "P(k)", distSeries, dist, distErr},
			{"degree-correlation", "knn(k)", corrSeries, corr, corrErr},
		}
		for _, p := range plots {
			if p.err != nil {
				continue
			}
			path := filepath.Join(dir, runID+"-"+p.name+".png")
			opts := fitting.PlotOptions{Title: p.name, XLabel: "k", YLabel: p.ylabel}
			if err := fitting.Plot(path, p.s.X, p.s.Y, p.law, opts); err != nil {
				return nil, fmt.Errorf("run %s: %w", runID, err)
			}
			rep.Plots = append(rep.Plots, path)
			log.Debug().Str("path", path).Msg("plot written")
		}
	}

	return rep, nil
}

// plan turns the configuration into a constructor and the report header.
func plan(cfg *config.Config) (builder.Constructor, *report, error) {
	rep := &report{Model: cfg.Model(), Params: params{N: cfg.N(), Seed: cfg.Seed()}}

	switch cfg.Model() {
	case config.ModelA:
		rep.Params.M = cfg.M()
		return builder.NoPreferentialAttachment(cfg.N(), cfg.M()), rep, nil
	case config.ModelB:
		rep.Params.Steps = cfg.Steps()
		return builder.NoGrowthBarabasi(cfg.N(), cfg.Steps()), rep, nil
	case config.ModelMixed:
		steps, err := builder.ParsePattern(cfg.Pattern(), cfg.M(), cfg.P())
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		rep.Params.M, rep.Params.P, rep.Params.Pattern = cfg.M(), cfg.P(), cfg.Pattern()
		return builder.Schedule(cfg.M(), cfg.N()-cfg.M(), steps...), rep, nil
	}

	return nil, nil, fmt.Errorf("%w: unknown model %q", config.ErrInvalidConfig, cfg.Model())
}
