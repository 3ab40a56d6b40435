package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/graphio"
	"github.com/katalvlaran/longpath/internal/config"
	"github.com/katalvlaran/longpath/longestpath"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find a heaviest simple path",
		Long: `Find a simple path of maximum total weight.

Methods:
  exact             exhaustive search; --time turns it into an anytime search
  jump-greedy       randomized restarts with random jumps (default budget 60s)
  topk-escalation   top-K walks escalating to epsilon-greedy (default budget 2.5s)
  single-pass       one threshold walk per start vertex
  topk-random-seed  one greedy walk from a random top-StartK edge
  greedy-sweep      one greedy-max walk per start vertex

The default budgets apply when neither --time nor --max-restarts is given.
An interrupt (Ctrl-C or SIGTERM) abandons the search and exits non-zero
without output; use --time to get the best path found within a budget.

Output (text): the path weight, then the path's vertex labels.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringP("method", "m", longestpath.MethodExact.String(), "Solver method")
	f.StringP("time", "t", "none", `Time limit: duration ("1.5s"), seconds ("2") or "none"`)
	f.Int("k", longestpath.DefaultOptions().K, "Candidate pool size for top-K selection")
	f.Int("start-k", longestpath.DefaultOptions().StartK, "Number of heaviest edges to seed from (topk-random-seed)")
	f.Float64("jump-prob", longestpath.DefaultOptions().JumpProb, "Random jump probability (jump-greedy)")
	f.Float64("random-prob", longestpath.DefaultOptions().RandomProb, "Uniform pick probability (topk-escalation phase 2)")
	f.Int64("seed", 0, "Random seed (0 = fixed default)")
	f.Int("max-restarts", 0, "Restart cap for restart-based methods (0 = unlimited)")
	f.Int("workers", longestpath.DefaultOptions().Workers, "Parallel start vertices (exact)")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	err := a.bindFlags(cmd, map[string]string{
		"method":       config.KeyMethod,
		"time":         config.KeyTimeLimit,
		"k":            config.KeyK,
		"start-k":      config.KeyStartK,
		"jump-prob":    config.KeyJumpProb,
		"random-prob":  config.KeyRandomProb,
		"seed":         config.KeySeed,
		"max-restarts": config.KeyMaxRestarts,
		"workers":      config.KeyWorkers,
	})
	if err != nil {
		return err
	}

	opts, err := a.cfg.SolverOptions()
	if err != nil {
		return err
	}
	format, err := a.cfg.OutputFormat()
	if err != nil {
		return err
	}

	in, err := a.readGraph(cmd, args)
	if err != nil {
		return err
	}

	a.log.Info().
		Stringer("method", opts.Method).
		Dur("time_limit", opts.TimeLimit).
		Int("k", opts.K).
		Int("start_k", opts.StartK).
		Int64("seed", opts.Seed).
		Int("max_restarts", opts.MaxRestarts).
		Int("workers", opts.Workers).
		Msg("solving")

	res, err := solveContext(cmd.Context(), in.Graph, opts)
	if err != nil {
		if errors.Is(err, errInterrupted) {
			a.log.Warn().Err(err).Msg("solve abandoned")
		}
		return err
	}
	if err := longestpath.CheckResult(in.Graph, res); err != nil {
		return err
	}

	a.log.Info().
		Float64("weight", res.Weight).
		Int("vertices", res.Len()).
		Int("restarts", res.Restarts).
		Bool("truncated", res.Truncated).
		Dur("elapsed", res.Elapsed).
		Msg("solved")
	if res.Truncated {
		a.log.Warn().Msg("time limit reached; result is the best found so far")
	}

	rep := graphio.NewReport(res, in.Labels)
	rep.RunID = a.runID

	return graphio.WriteResult(cmd.OutOrStdout(), format, a.cfg.Precision(), rep)
}

var errInterrupted = errors.New("solve interrupted")

// solveContext runs the solver until it returns or ctx is done. Solvers only
// stop on their own time budget, so on cancellation the search is abandoned
// and keeps running until the process exits.
func solveContext(ctx context.Context, g *core.Graph, opts longestpath.Options) (longestpath.Result, error) {
	type outcome struct {
		res longestpath.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := longestpath.Solve(g, opts)
		done <- outcome{res, err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return longestpath.Result{}, fmt.Errorf("%w: %w", errInterrupted, context.Cause(ctx))
	}
}
