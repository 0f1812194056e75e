// colony is a headless scheduler for the ACO simulation engine: it generates
// a random graph, runs generations to completion, and reports the best tour.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/varankin/colony/graph"
	"github.com/varankin/colony/sim"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "colony",
		Short: "Ant Colony Optimization tour search on random graphs",
		Long: `colony runs the ACO metaheuristic headlessly: it generates a fully
connected random graph, advances the colony tick by tick until the
configured number of generations completes, and prints the best tour.

All randomness is seeded; the same seed reproduces the same run.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("colony version %s\n", version)
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a random graph and run the simulation to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			rng := sim.NewRNG(cfg.Seed)
			g, err := graph.Generate(cfg.Nodes, cfg.Width, cfg.Height, rng)
			if err != nil {
				return err
			}
			if g.NodeCount() < sim.MinSimNodes {
				// Advisory per the error contract: refuse before any tick.
				return fmt.Errorf("need at least %d nodes to simulate, have %d: %w",
					sim.MinSimNodes, g.NodeCount(), sim.ErrInsufficientGraph)
			}

			params := cfg.simParameters()
			final, err := sim.Run(sim.NewState(g), params, rng, cfg.MaxTicks)
			if err != nil {
				if errors.Is(err, sim.ErrMaxIterationsReached) {
					// Normal stop; Run already swallows it, but keep the
					// advisory path in case of future surfacing.
					err = nil
				} else {
					return err
				}
			}

			printResult(cmd, final, params)
			return nil
		},
	}

	cmd.Flags().String("config", "", "YAML run configuration file")
	cmd.Flags().Int("nodes", 0, "number of random nodes (overrides config)")
	cmd.Flags().Float64("width", 0, "canvas width (overrides config)")
	cmd.Flags().Float64("height", 0, "canvas height (overrides config)")
	cmd.Flags().Int64("seed", 0, "RNG seed; 0 uses the deterministic default")
	cmd.Flags().Int("ants", 0, "ants per generation (overrides config)")
	cmd.Flags().Float64("alpha", -1, "pheromone exponent (overrides config)")
	cmd.Flags().Float64("beta", -1, "distance exponent (overrides config)")
	cmd.Flags().Float64("rho", -1, "evaporation rate (overrides config)")
	cmd.Flags().Float64("q", -1, "deposit scale (overrides config)")
	cmd.Flags().Int("iterations", 0, "generations to run (overrides config)")
	cmd.Flags().Int("max-ticks", 0, "hard tick bound; 0 derives one from iterations")

	return cmd
}

// resolveConfig builds the effective run configuration: defaults, then the
// YAML file when given, then any explicitly set flags on top.
func resolveConfig(cmd *cobra.Command) (runConfig, error) {
	var (
		cfg = defaultRunConfig()
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if cfg, err = loadRunConfig(path); err != nil {
			return cfg, err
		}
	}

	if cmd.Flags().Changed("nodes") {
		cfg.Nodes, _ = cmd.Flags().GetInt("nodes")
	}
	if cmd.Flags().Changed("width") {
		cfg.Width, _ = cmd.Flags().GetFloat64("width")
	}
	if cmd.Flags().Changed("height") {
		cfg.Height, _ = cmd.Flags().GetFloat64("height")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("max-ticks") {
		cfg.MaxTicks, _ = cmd.Flags().GetInt("max-ticks")
	}
	if cmd.Flags().Changed("ants") {
		cfg.Parameters.Ants, _ = cmd.Flags().GetInt("ants")
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Parameters.Alpha, _ = cmd.Flags().GetFloat64("alpha")
	}
	if cmd.Flags().Changed("beta") {
		cfg.Parameters.Beta, _ = cmd.Flags().GetFloat64("beta")
	}
	if cmd.Flags().Changed("rho") {
		cfg.Parameters.Rho, _ = cmd.Flags().GetFloat64("rho")
	}
	if cmd.Flags().Changed("q") {
		cfg.Parameters.Q, _ = cmd.Flags().GetFloat64("q")
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Parameters.Iterations, _ = cmd.Flags().GetInt("iterations")
	}

	return cfg, nil
}

// printResult reports the run outcome on the command's stdout.
func printResult(cmd *cobra.Command, s sim.State, p sim.Parameters) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "generations completed: %d/%d\n", s.Iteration, p.Iterations)
	if len(s.BestTour) == 0 {
		fmt.Fprintln(out, "no tour completed (population stalled)")
		return
	}
	fmt.Fprintf(out, "best tour length: %.3f\n", s.BestTourLength)
	fmt.Fprintf(out, "best tour: %s\n", formatTour(s.BestTour))
}

// formatTour renders a tour as "0 → 3 → 1 → 0".
func formatTour(tour []graph.NodeID) string {
	parts := make([]string, len(tour))
	for i, id := range tour {
		parts[i] = string(id)
	}
	return strings.Join(parts, " → ")
}
