package longestpath

import (
	"sort"
	"time"

	"github.com/katalvlaran/longpath/core"
)

// TopKRandomSeed builds a single trajectory. The seed is chosen uniformly
// among the StartK heaviest directed edge records (each undirected edge
// appears once per orientation; stable descending order). The walk then
// extends uniformly among the K heaviest unvisited neighbors until a dead
// end.
//
// No restarts and no time budget. A graph without edges yields the trivial
// path [0] with weight 0.
//
// Options used: K, StartK, Seed/Rand.
func TopKRandomSeed(g *core.Graph, opts Options) (Result, error) {
	if err := validateOptions(g, opts); err != nil {
		return Result{}, err
	}
	begin := time.Now()
	adj := g.Adjacency()
	rng := opts.rng()
	res := Result{Method: MethodTopKRandomSeed}

	records := directedEdges(adj)
	if len(records) == 0 {
		res.Path = trivialPath(len(adj))
		res.Elapsed = time.Since(begin)
		return res, nil
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Weight > records[j].Weight })

	top := records
	if len(top) > opts.StartK {
		top = top[:opts.StartK]
	}
	e := pick(rng, top)

	w := newWalker(adj, deadline{}, rng)
	vs, weight, _ := w.run([]int{e.From, e.To}, e.Weight, topKSelector{k: opts.K})
	res.Path = core.Path{Vertices: append([]int(nil), vs...), Weight: weight}
	res.Restarts = 1
	res.Elapsed = time.Since(begin)

	return res, nil
}

// directedEdges lists every adjacency entry as a directed record (u → v).
func directedEdges(adj [][]core.Neighbor) []core.Edge {
	var out []core.Edge
	for u, nbs := range adj {
		for _, nb := range nbs {
			out = append(out, core.Edge{From: u, To: nb.To, Weight: nb.Weight})
		}
	}

	return out
}
