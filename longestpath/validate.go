// Package longestpath - validation helpers shared by every solver.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input: only sentinel errors from types.go.
package longestpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/longpath/core"
)

// weightTol is the tolerance, relative to max(1, |weight|), CheckResult allows between a reported
// weight and its recomputation (float summation order may differ).
const weightTol = 1e-9

// validateOptions checks g and every Options field.
//
// Complexity: O(1).
func validateOptions(g *core.Graph, opts Options) error {
	if g == nil {
		return ErrNilGraph
	}
	if opts.TimeLimit < 0 && opts.TimeLimit != NoTimeLimit {
		return ErrBadTimeLimit
	}
	if opts.K < 1 {
		return ErrBadK
	}
	if opts.StartK < 1 {
		return ErrBadStartK
	}
	if !validProbability(opts.JumpProb) || !validProbability(opts.RandomProb) {
		return ErrBadProbability
	}
	if opts.MaxRestarts < 0 {
		return ErrBadMaxRestarts
	}
	if opts.Workers < 1 {
		return ErrBadWorkers
	}

	return nil
}

// requireBudget rejects restart strategies that could never stop.
func requireBudget(opts Options) error {
	if opts.TimeLimit == NoTimeLimit && opts.MaxRestarts == 0 {
		return ErrUnboundedSearch
	}

	return nil
}

func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// CheckResult verifies res against g: the path must be simple, every
// consecutive pair must be an edge, and res.Weight must match the recomputed
// sum. An empty path is accepted (a solver reporting "no solution").
func CheckResult(g *core.Graph, res Result) error {
	if g == nil {
		return ErrNilGraph
	}
	if res.Empty() {
		return nil
	}
	w, err := core.ValidatePath(g, res.Vertices)
	if err != nil {
		return err
	}
	if math.Abs(w-res.Weight) > weightTol*math.Max(1, math.Abs(w)) {
		return fmt.Errorf("longestpath: reported weight %g, recomputed %g: %w", res.Weight, w, ErrWeightMismatch)
	}

	return nil
}
