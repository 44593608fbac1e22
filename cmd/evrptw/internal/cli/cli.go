// Package cli wires the cobra/pflag command tree for the evrptw binary:
// construct, improve, and solve, each logging through zerolog and
// persisting a run record through runlog.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/evrptw/alns"
	"github.com/katalvlaran/evrptw/construct"
	"github.com/katalvlaran/evrptw/core"
	"github.com/katalvlaran/evrptw/ioformat"
	"github.com/katalvlaran/evrptw/localsearch"
	"github.com/katalvlaran/evrptw/runconfig"
	"github.com/katalvlaran/evrptw/runlog"
	"github.com/katalvlaran/evrptw/verifier"
)

// NewRootCommand builds the evrptw command tree, logging through logger.
func NewRootCommand(logger zerolog.Logger) *cobra.Command {
	var runLogPath string

	root := &cobra.Command{
		Use:   "evrptw",
		Short: "Electric vehicle routing problem with time windows solver",
	}
	root.PersistentFlags().StringVar(&runLogPath, "run-log", "runs.jsonl", "path to the run-history log file")

	root.AddCommand(
		newConstructCommand(&logger, &runLogPath),
		newImproveCommand(&logger, &runLogPath),
		newSolveCommand(&logger, &runLogPath),
	)
	return root
}

func newConstructCommand(logger *zerolog.Logger, runLogPath *string) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "construct <instance> [--config cfg.json]",
		Short: "Run the greedy constructor only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()
			start := time.Now()

			inst, err := loadInstance(args[0])
			if err != nil {
				return err
			}
			ccfg := construct.DefaultConfig()
			if configPath != "" {
				rc, err := runconfig.Load(configPath)
				if err != nil {
					return err
				}
				ccfg = rc.ToConstructConfig()
			}

			sol, elapsed, err := construct.Construct(inst, ccfg)
			if err != nil {
				return err
			}

			logger.Info().
				Str("run_id", runID).
				Str("instance", args[0]).
				Dur("elapsed", elapsed).
				Float64("best_distance", sol.TotalDistance).
				Msg("construct complete")

			return writeSolutionAndLog(*runLogPath, runID, args[0], sol, 0, time.Since(start), "construct")
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON run config")
	return cmd
}

func newImproveCommand(logger *zerolog.Logger, runLogPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "improve <instance> <solution>",
		Short: "Run relocate local search to a fixed point on a saved solution",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()
			start := time.Now()

			inst, err := loadInstance(args[0])
			if err != nil {
				return err
			}
			sol, err := loadSolution(inst, args[1])
			if err != nil {
				return err
			}

			improved := localsearch.Improve(inst, sol)

			logger.Info().
				Str("run_id", runID).
				Str("instance", args[0]).
				Float64("best_distance", improved.TotalDistance).
				Msg("improve complete")

			return writeSolutionAndLog(*runLogPath, runID, args[0], improved, 0, time.Since(start), "improve")
		},
	}
	return cmd
}

func newSolveCommand(logger *zerolog.Logger, runLogPath *string) *cobra.Command {
	var configPath, verifyBinary string
	cmd := &cobra.Command{
		Use:   "solve <instance> [--config cfg.json] [--verify verifier-bin]",
		Short: "Construct, improve, and run ALNS end to end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()
			start := time.Now()

			inst, err := loadInstance(args[0])
			if err != nil {
				return err
			}

			ccfg := construct.DefaultConfig()
			acfg := alns.DefaultConfig()
			if configPath != "" {
				rc, rcErr := runconfig.Load(configPath)
				if rcErr != nil {
					return rcErr
				}
				ccfg = rc.ToConstructConfig()
				acfg = rc.ToALNSConfig()
			}

			initial, _, err := construct.Construct(inst, ccfg)
			if err != nil {
				return err
			}
			improved := localsearch.Improve(inst, initial)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)
			go func() {
				select {
				case <-sig:
					cancel()
				case <-ctx.Done():
				}
			}()

			best, stats, err := alns.Run(ctx, inst, improved, acfg)
			if err != nil && len(stats.Iterations) == 0 {
				return err
			}

			logger.Info().
				Str("run_id", runID).
				Str("instance", args[0]).
				Int("iterations", len(stats.Iterations)).
				Float64("best_distance", best.TotalDistance).
				Dur("elapsed", stats.TotalRuntime).
				Msg("solve complete")

			outPath := args[0] + ".solution"
			if werr := writeSolutionFile(outPath, inst, best); werr != nil {
				return werr
			}

			if verifyBinary != "" {
				report, verr := verifier.Run(ctx, verifyBinary, args[0], outPath)
				if verr != nil {
					return verr
				}
				logger.Info().Bool("passed", report.Passed).Strs("violations", report.Violations).Msg("verification complete")
				if !report.Passed {
					return fmt.Errorf("solve: solution failed verification: %v", report.Violations)
				}
			}

			return writeSolutionAndLog(*runLogPath, runID, args[0], best, len(stats.Iterations), time.Since(start), "solve")
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON run config")
	cmd.Flags().StringVar(&verifyBinary, "verify", "", "path to an external verifier binary")
	return cmd
}

func loadInstance(path string) (*core.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: opening instance %s: %w", path, err)
	}
	defer f.Close()
	return ioformat.ReadInstance(f)
}

func loadSolution(inst *core.Instance, path string) (*core.Solution, error) {
	// The solution file format's node IDs must be resolved back to indices
	// before they can feed local search; this is the reader half that
	// ioformat's writer-focused solution format never needed on the
	// construct/solve paths, so it lives here rather than in ioformat.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: opening solution %s: %w", path, err)
	}
	defer f.Close()

	idByID := make(map[string]int, inst.NumNodes())
	for i := 0; i < inst.NumNodes(); i++ {
		idByID[inst.Node(i).ID] = i
	}

	routes, err := parseSolutionRoutes(f, idByID)
	if err != nil {
		return nil, err
	}
	return core.NewSolution(inst, routes), nil
}

// parseSolutionRoutes reads the writer's format (distance line, then one
// comma-separated line of node IDs per route) and resolves IDs to indices.
func parseSolutionRoutes(r io.Reader, idByID map[string]int) ([]core.Route, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("cli: empty solution file")
	}

	var routes []core.Route
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		route := make(core.Route, len(fields))
		for i, id := range fields {
			idx, ok := idByID[strings.TrimSpace(id)]
			if !ok {
				return nil, fmt.Errorf("cli: unknown node id %q in solution file", id)
			}
			route[i] = idx
		}
		routes = append(routes, route)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cli: reading solution file: %w", err)
	}
	return routes, nil
}

func writeSolutionFile(path string, inst *core.Instance, sol *core.Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli: creating %s: %w", path, err)
	}
	defer f.Close()
	return ioformat.WriteSolution(f, inst, sol)
}

func writeSolutionAndLog(runLogPath, runID, instancePath string, sol *core.Solution, iterations int, elapsed time.Duration, outcome string) error {
	return runlog.Append(runLogPath, runlog.Record{
		RunID:        runID,
		Instance:     instancePath,
		BestDistance: sol.TotalDistance,
		Iterations:   iterations,
		Elapsed:      elapsed,
		Outcome:      outcome,
	})
}
