// File: gonum.go
// Role: Bridge to gonum's graph packages (export + connected components).
// Determinism:
//   - Components() orders vertices ascending and components by smallest id.

package core

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToGonum exports g as a gonum simple.WeightedUndirectedGraph. Node ids are
// the vertex ids; every vertex is present, including isolated ones.
// Absent edges report +Inf through gonum's Weight accessor.
// Complexity: O(V + E).
func (g *Graph) ToGonum() *simple.WeightedUndirectedGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := range g.adj {
		out.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.edges {
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(int64(e.From)), simple.Node(int64(e.To)), e.Weight))
	}

	return out
}

// Components returns the connected components of g using gonum topo.
// Each component lists its vertices ascending; components are ordered by
// their smallest vertex.
// Complexity: O(V log V + E).
func (g *Graph) Components() [][]int {
	cc := topo.ConnectedComponents(g.ToGonum())

	out := make([][]int, 0, len(cc))
	for _, comp := range cc {
		ids := make([]int, len(comp))
		for i, node := range comp {
			ids[i] = int(node.ID())
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
