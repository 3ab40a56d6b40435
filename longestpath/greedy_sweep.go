package longestpath

import (
	"time"

	"github.com/katalvlaran/longpath/core"
)

// GreedySweep walks from every start vertex, always taking the first
// heaviest unvisited neighbor, and keeps the heaviest walk (first start on
// ties). Deterministic.
//
// The deadline is checked between starts only: every completed walk is
// whole. The first start always runs, so the result is never empty for a
// non-empty graph.
//
// Options used: TimeLimit.
//
// Complexity: O(V · (V + E)).
func GreedySweep(g *core.Graph, opts Options) (Result, error) {
	if err := validateOptions(g, opts); err != nil {
		return Result{}, err
	}
	begin := time.Now()
	dl := newDeadline(opts.TimeLimit)
	adj := g.Adjacency()
	n := len(adj)
	res := Result{Method: MethodGreedySweep, Path: trivialPath(n)}

	if n > 0 {
		w := newWalker(adj, deadline{}, nil)
		var best incumbent
		seed := make([]int, 1)
		for s := 0; s < n; s++ {
			if s > 0 && dl.expired() {
				res.Truncated = true
				break
			}
			seed[0] = s
			vs, weight, _ := w.run(seed, 0, greedyMaxSelector{})
			best.offer(vs, weight)
			res.Restarts++
		}
		res.Path = best.path
	}
	res.Elapsed = time.Since(begin)

	return res, nil
}
