package bfs

import (
	"github.com/katalvlaran/longpath/core"
)

// DoubleSweep runs BFS from start, then again from the farthest vertex found,
// and returns the BFS-tree path between the two sweep ends.
//
// The path is a shortest (in hops) simple path inside start's component, so
// its hop count is a lower bound on that component's hop diameter; on trees
// it is exact. Its weighted length is a valid baseline for longest-path
// search. An isolated start yields the single-vertex path [start].
//
// Complexity: two BFS runs, O(V + E).
func DoubleSweep(g *core.Graph, start int, opts ...Option) ([]int, error) {
	first, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}
	far, _ := first.Farthest()

	second, err := BFS(g, far, opts...)
	if err != nil {
		return nil, err
	}
	end, _ := second.Farthest()

	return second.PathTo(end)
}

// HopDiameter returns the largest DoubleSweep hop count over all connected
// components of g (0 for graphs without edges).
func HopDiameter(g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	best := 0
	for _, comp := range g.Components() {
		if len(comp) < 2 {
			continue
		}
		path, err := DoubleSweep(g, comp[0], opts...)
		if err != nil {
			return 0, err
		}
		if hops := len(path) - 1; hops > best {
			best = hops
		}
	}

	return best, nil
}
