package longestpath

import (
	"time"

	"github.com/katalvlaran/longpath/core"
)

// TopKEscalation runs two phases of edge-seeded trajectories and returns the
// heaviest across both.
//
// Seeding: a uniformly random undirected edge (u, v), u < v, becomes the path
// [u, v]; the walk continues from v.
//
//	Phase 1: extend uniformly among the K heaviest unvisited neighbors. A
//	         counter of consecutive non-improving trajectories ends the phase
//	         when it reaches the number of distinct edges.
//	Phase 2: extend uniformly among all unvisited neighbors when a draw is
//	         <= RandomProb, else to the heaviest one. Runs until the budget
//	         ends.
//
// Budget: TimeLimit and/or MaxRestarts (across both phases); at least one must
// be set (ErrUnboundedSearch). A trajectory cut by the deadline is discarded.
// A graph without edges yields the trivial path [0] with weight 0; if the
// budget expires before any trajectory completes the path is empty, weight 0.
//
// Options used: TimeLimit, MaxRestarts, K, RandomProb, Seed/Rand.
func TopKEscalation(g *core.Graph, opts Options) (Result, error) {
	if err := validateOptions(g, opts); err != nil {
		return Result{}, err
	}
	if err := requireBudget(opts); err != nil {
		return Result{}, err
	}
	begin := time.Now()
	dl := newDeadline(opts.TimeLimit)
	adj := g.Adjacency()
	rng := opts.rng()
	res := Result{Method: MethodTopKEscalation}

	edges := undirectedEdges(adj)
	if len(edges) == 0 {
		res.Path = trivialPath(len(adj))
		res.Elapsed = time.Since(begin)
		return res, nil
	}

	var best incumbent
	w := newWalker(adj, dl, rng)
	seed := make([]int, 2)

	// trajectory runs one seeded walk; false means the budget is spent.
	trajectory := func(sel Selector) (improved, more bool) {
		if restartCapReached(opts, res.Restarts) {
			return false, false
		}
		if dl.expired() {
			res.Truncated = true
			return false, false
		}
		e := pick(rng, edges)
		seed[0], seed[1] = e.From, e.To
		vs, weight, ok := w.run(seed, e.Weight, sel)
		if !ok {
			res.Truncated = true
			return false, false
		}
		res.Restarts++

		return best.offer(vs, weight), true
	}

	// Phase 1: top-k until stagnation.
	phase1 := topKSelector{k: opts.K}
	stagnant := 0
	more := true
	for more && stagnant < len(edges) {
		var improved bool
		improved, more = trajectory(phase1)
		if improved {
			stagnant = 0
		} else {
			stagnant++
		}
	}

	// Phase 2: epsilon-greedy until the budget ends.
	phase2 := epsilonGreedySelector{prob: opts.RandomProb}
	for more {
		_, more = trajectory(phase2)
	}

	res.Path = best.path
	res.Elapsed = time.Since(begin)

	return res, nil
}

// undirectedEdges lists each edge once as (u, v, w) with u < v, scanning
// vertices ascending and neighbors in adjacency order.
func undirectedEdges(adj [][]core.Neighbor) []core.Edge {
	var out []core.Edge
	for u, nbs := range adj {
		for _, nb := range nbs {
			if u < nb.To {
				out = append(out, core.Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}

	return out
}

// trivialPath is [0] with weight 0, or the empty path when n == 0.
func trivialPath(n int) core.Path {
	if n == 0 {
		return core.Path{}
	}

	return core.Path{Vertices: []int{0}, Weight: 0}
}
