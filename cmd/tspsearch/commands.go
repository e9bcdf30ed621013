package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/tspsearch/render"
	"github.com/katalvlaran/tspsearch/tsp"
)

// Debug progress is logged every annealLogEvery / tabuLogEvery iterations.
const (
	annealLogEvery = 500
	tabuLogEvery   = 10
)

// app carries the state shared by the root and its sub-commands.
type app struct {
	cfgFile string
	flags   Config // raw flag values; applied only when the flag was set
	cfg     Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{flags: DefaultConfig()}

	root := &cobra.Command{
		Use:           "tspsearch",
		Short:         "Solve symmetric TSP instances with A*, simulated annealing or tabu search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.IntVar(&a.flags.Cities, "cities", a.flags.Cities, "number of random cities")
	pf.Int64Var(&a.flags.Seed, "seed", a.flags.Seed, "seed for cities and solvers")
	pf.StringVar(&a.flags.Metric, "metric", a.flags.Metric, "distance metric: euclidean or geodesic")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "debug, info, warn or error")
	pf.StringVar(&a.flags.DOT, "dot", "", "write the tour as Graphviz DOT to this file")

	root.AddCommand(a.astarCmd(), a.annealCmd(), a.tabuCmd())
	return root
}

func (a *app) astarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "astar",
		Short: "Best-first search with a remaining-cost heuristic (small instances)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.override(cmd, "start", func() { a.cfg.AStar.Start = a.flags.AStar.Start })
			a.override(cmd, "heuristic", func() { a.cfg.AStar.Heuristic = a.flags.AStar.Heuristic })
			a.override(cmd, "visited", func() { a.cfg.AStar.Visited = a.flags.AStar.Visited })
			a.override(cmd, "max-exact", func() { a.cfg.AStar.MaxExact = a.flags.AStar.MaxExact })
			a.override(cmd, "max-nodes", func() { a.cfg.AStar.MaxNodes = a.flags.AStar.MaxNodes })
			return a.solve(cmd, tsp.AStarSearch)
		},
	}
	f := cmd.Flags()
	f.IntVar(&a.flags.AStar.Start, "start", a.flags.AStar.Start, "start city index")
	f.StringVar(&a.flags.AStar.Heuristic, "heuristic", a.flags.AStar.Heuristic, "permutation or mst")
	f.StringVar(&a.flags.AStar.Visited, "visited", a.flags.AStar.Visited,
		"shared or path (path keeps every partial order open; memory is bounded by --max-nodes)")
	f.IntVar(&a.flags.AStar.MaxExact, "max-exact", a.flags.AStar.MaxExact, "city cap for the permutation heuristic")
	f.IntVar(&a.flags.AStar.MaxNodes, "max-nodes", a.flags.AStar.MaxNodes, "search node cap; the run fails once it is reached")
	return cmd
}

func (a *app) annealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "anneal",
		Aliases: []string{"sa"},
		Short:   "Simulated annealing over swap moves",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.override(cmd, "temperature", func() { a.cfg.Anneal.Temperature = a.flags.Anneal.Temperature })
			a.override(cmd, "cooling", func() { a.cfg.Anneal.Cooling = a.flags.Anneal.Cooling })
			a.override(cmd, "iterations", func() { a.cfg.Anneal.Iterations = a.flags.Anneal.Iterations })
			return a.solve(cmd, tsp.SimulatedAnnealing)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&a.flags.Anneal.Temperature, "temperature", a.flags.Anneal.Temperature, "initial temperature")
	f.Float64Var(&a.flags.Anneal.Cooling, "cooling", a.flags.Anneal.Cooling, "cooling rate in (0,1]")
	f.IntVar(&a.flags.Anneal.Iterations, "iterations", a.flags.Anneal.Iterations, "number of iterations")
	return cmd
}

func (a *app) tabuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabu",
		Short: "Tabu search over swap moves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.override(cmd, "iterations", func() { a.cfg.Tabu.Iterations = a.flags.Tabu.Iterations })
			a.override(cmd, "tabu-size", func() { a.cfg.Tabu.Size = a.flags.Tabu.Size })
			return a.solve(cmd, tsp.TabuSearch)
		},
	}
	f := cmd.Flags()
	f.IntVar(&a.flags.Tabu.Iterations, "iterations", a.flags.Tabu.Iterations, "number of iterations")
	f.IntVar(&a.flags.Tabu.Size, "tabu-size", a.flags.Tabu.Size, "tabu list capacity")
	return cmd
}

// load reads the config file, applies the persistent flags that were set
// and installs the logger.
func (a *app) load(cmd *cobra.Command) error {
	a.cfg = DefaultConfig()
	if a.cfgFile != "" {
		cfg, err := ReadConfig(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	a.override(cmd, "cities", func() { a.cfg.Cities = a.flags.Cities })
	a.override(cmd, "seed", func() { a.cfg.Seed = a.flags.Seed })
	a.override(cmd, "metric", func() { a.cfg.Metric = a.flags.Metric })
	a.override(cmd, "log-level", func() { a.cfg.LogLevel = a.flags.LogLevel })
	a.override(cmd, "dot", func() { a.cfg.DOT = a.flags.DOT })

	lvl, err := a.cfg.Level()
	if err != nil {
		return err
	}
	a.log = newLogger(cmd.ErrOrStderr(), lvl)
	return nil
}

func (a *app) override(cmd *cobra.Command, name string, apply func()) {
	if cmd.Flags().Changed(name) {
		apply()
	}
}

func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// solve runs algo on the configured cities and prints the result.
func (a *app) solve(cmd *cobra.Command, algo tsp.Algorithm) error {
	cs, err := a.cfg.CityList()
	if err != nil {
		return err
	}
	dist, err := a.cfg.Distances(cs)
	if err != nil {
		return err
	}
	if _, err = tsp.ValidateDistances(dist); err != nil {
		return fmt.Errorf("distance matrix over %d cities: %w", len(cs), err)
	}
	opts, err := a.cfg.Options(algo)
	if err != nil {
		return err
	}
	opts.OnProgress = a.progressLogger(algo)

	a.log.Info("solving", "algorithm", algo, "cities", len(cs), "seed", a.cfg.Seed, "metric", a.cfg.Metric)
	began := time.Now()
	res, err := tsp.SolveWithMatrix(dist, opts)
	if err != nil {
		a.log.Error("solve failed", "algorithm", algo, "err", err)
		return err
	}
	a.log.Info("solved", "algorithm", algo, "cost", res.Cost, "elapsed", time.Since(began))

	out := cmd.OutOrStdout()
	if !res.Found() {
		fmt.Fprintln(out, "no tour found")
		return nil
	}
	names := make([]string, 0, len(res.Tour)+1)
	for _, c := range tsp.ClosedTour(res.Tour) {
		names = append(names, cs[c].Name)
	}
	fmt.Fprintf(out, "tour: %s\n", tsp.DebugString(res.Tour))
	fmt.Fprintf(out, "route: %s\n", strings.Join(names, " -> "))
	fmt.Fprintf(out, "cost: %.3f\n", res.Cost)

	if a.cfg.DOT != "" {
		src, err := render.DOT(cs, res.Tour, algo.String())
		if err != nil {
			return err
		}
		if err = os.WriteFile(a.cfg.DOT, []byte(src), 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
		a.log.Info("wrote dot file", "file", a.cfg.DOT)
	}
	return nil
}

// progressLogger returns a debug hook for the metaheuristics, or nil when
// debug output is off.
func (a *app) progressLogger(algo tsp.Algorithm) func(tsp.Progress) {
	if !a.log.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	switch algo {
	case tsp.SimulatedAnnealing:
		return func(p tsp.Progress) {
			if p.Iteration%annealLogEvery == 0 {
				a.log.Debug("anneal", "iter", p.Iteration, "temperature", p.Temperature,
					"current", p.CurrentCost, "best", p.BestCost)
			}
		}
	case tsp.TabuSearch:
		return func(p tsp.Progress) {
			if p.Iteration%tabuLogEvery == 0 {
				a.log.Debug("tabu", "iter", p.Iteration, "current", p.CurrentCost,
					"best", p.BestCost, "tabu", p.TabuSize)
			}
		}
	default:
		return nil
	}
}
