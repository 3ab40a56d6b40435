package longestpath

import (
	"time"

	"github.com/katalvlaran/longpath/core"
)

// JumpGreedy samples trajectories until the budget runs out and returns the
// heaviest. Each trajectory starts at a uniformly random vertex and walks
// greedily: uniform among the max-weight unvisited neighbors, except that
// with probability JumpProb (when more than one unvisited neighbor exists)
// the move is uniform among all unvisited neighbors.
//
// Budget: TimeLimit and/or MaxRestarts; at least one must be set
// (ErrUnboundedSearch). If no trajectory completes, the result is an empty
// path with weight -1 ("no solution produced").
//
// Options used: TimeLimit, MaxRestarts, JumpProb, Seed/Rand.
func JumpGreedy(g *core.Graph, opts Options) (Result, error) {
	if err := validateOptions(g, opts); err != nil {
		return Result{}, err
	}
	if err := requireBudget(opts); err != nil {
		return Result{}, err
	}
	begin := time.Now()
	dl := newDeadline(opts.TimeLimit)
	adj := g.Adjacency()
	n := len(adj)
	rng := opts.rng()

	res := Result{Method: MethodJumpGreedy}
	var best incumbent
	if n > 0 {
		w := newWalker(adj, dl, rng)
		sel := &maxTieSelector{jumpProb: opts.JumpProb}
		seed := make([]int, 1)
		for !restartCapReached(opts, res.Restarts) {
			if dl.expired() {
				res.Truncated = true
				break
			}
			seed[0] = rng.Intn(n)
			vs, weight, ok := w.run(seed, 0, sel)
			if !ok {
				res.Truncated = true
				break
			}
			res.Restarts++
			best.offer(vs, weight)
		}
	}

	if best.set {
		res.Path = best.path
	} else {
		res.Path = core.Path{Weight: -1}
	}
	res.Elapsed = time.Since(begin)

	return res, nil
}

// restartCapReached reports whether MaxRestarts trajectories have completed.
func restartCapReached(opts Options, restarts int) bool {
	return opts.MaxRestarts > 0 && restarts >= opts.MaxRestarts
}
