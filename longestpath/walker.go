// Package longestpath - the heuristic trajectory engine.
//
// Every heuristic builds trajectories the same way: start from a seed path,
// repeatedly collect the unvisited neighbors of the current vertex and let a
// Selector pick one, stop at a dead end. Only the Selector differs between
// strategies; walker owns everything else (visitation, deadline, buffers).
package longestpath

import (
	"math/rand"

	"github.com/katalvlaran/longpath/core"
)

// Step is what a Selector sees for one extension decision.
type Step struct {
	// Current is the vertex at the end of the trajectory.
	Current int

	// Weight is the trajectory's accumulated weight so far.
	Weight float64

	// Candidates are Current's unvisited neighbors in adjacency order.
	// The slice is scratch owned by the engine: Choose may reorder it.
	Candidates []core.Neighbor

	// Rand is the run's random source.
	Rand *rand.Rand
}

// Selector picks the next edge of a trajectory. Returning false ends the
// trajectory at Current even though candidates remain.
// Choose is only called with at least one candidate.
type Selector interface {
	Choose(step *Step) (core.Neighbor, bool)
}

// walker runs trajectories over one adjacency snapshot.
type walker struct {
	adj     [][]core.Neighbor
	dl      deadline
	visited []bool
	path    []int
	step    Step
}

func newWalker(adj [][]core.Neighbor, dl deadline, r *rand.Rand) *walker {
	return &walker{
		adj:     adj,
		dl:      dl,
		visited: make([]bool, len(adj)),
		path:    make([]int, 0, len(adj)),
		step:    Step{Rand: r},
	}
}

// run extends seed (a simple path whose weight is seedWeight) with sel until
// a dead end. The deadline is polled before every extension step; on expiry
// run returns ok == false and the partial trajectory must be discarded.
//
// The returned slice is the walker's buffer and is overwritten by the next
// run: copy it to keep it.
//
// Complexity: O(Σ deg(v)) over the visited vertices plus the selector's cost.
func (w *walker) run(seed []int, seedWeight float64, sel Selector) (vertices []int, weight float64, ok bool) {
	// Clear the previous trajectory's marks only.
	for _, v := range w.path {
		w.visited[v] = false
	}
	w.path = append(w.path[:0], seed...)
	for _, v := range seed {
		w.visited[v] = true
	}
	weight = seedWeight
	cur := seed[len(seed)-1]

	for {
		if w.dl.expired() {
			return w.path, weight, false
		}

		// Collect unvisited neighbors in adjacency order.
		cands := w.step.Candidates[:0]
		for _, nb := range w.adj[cur] {
			if !w.visited[nb.To] {
				cands = append(cands, nb)
			}
		}
		w.step.Candidates = cands
		if len(cands) == 0 {
			break // dead end
		}

		w.step.Current = cur
		w.step.Weight = weight
		nb, more := sel.Choose(&w.step)
		if !more {
			break
		}

		w.visited[nb.To] = true
		w.path = append(w.path, nb.To)
		weight += nb.Weight
		cur = nb.To
	}

	return w.path, weight, true
}

// incumbent tracks the best trajectory of a run.
type incumbent struct {
	path core.Path
	set  bool
}

// offer records (vertices, weight) on strict improvement, copying vertices.
// The first offer is always recorded. Reports whether it was recorded.
func (b *incumbent) offer(vertices []int, weight float64) bool {
	if b.set && weight <= b.path.Weight {
		return false
	}
	vs := make([]int, len(vertices))
	copy(vs, vertices)
	b.path = core.Path{Vertices: vs, Weight: weight}
	b.set = true

	return true
}
