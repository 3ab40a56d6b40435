package longestpath

import (
	"time"

	"github.com/katalvlaran/longpath/core"
)

// SinglePassGreedy walks once from every start vertex with a cumulative
// threshold rule: at the current vertex, scan its unvisited neighbors in
// adjacency order and move to the first whose edge weight strictly exceeds
// the weight accumulated so far; stop when none does. The heaviest walk wins
// (first start on ties).
//
// The rule is deliberately not greedy-max: after the first edge, only edges
// heavier than the whole path so far qualify, so walks stay short unless
// weights grow fast along them.
//
// Deterministic: no RNG, no time budget. Options are validated but unused.
//
// Complexity: O(V · (V + E)) worst case.
func SinglePassGreedy(g *core.Graph, opts Options) (Result, error) {
	if err := validateOptions(g, opts); err != nil {
		return Result{}, err
	}
	begin := time.Now()
	adj := g.Adjacency()
	n := len(adj)
	res := Result{Method: MethodSinglePassGreedy, Path: trivialPath(n)}

	if n > 0 {
		w := newWalker(adj, deadline{}, nil)
		best := incumbent{path: res.Path, set: true}
		seed := make([]int, 1)
		for s := 0; s < n; s++ {
			seed[0] = s
			vs, weight, _ := w.run(seed, 0, thresholdSelector{})
			best.offer(vs, weight)
		}
		res.Path = best.path
		res.Restarts = n
	}
	res.Elapsed = time.Since(begin)

	return res, nil
}
