// Package prim_kruskal provides an implementation of Kruskal's algorithm for
// the Maximum Spanning Forest. It works on a raw edge list over [0, n) or on
// a *core.Graph and produces the selected edges and their total weight.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/longpath/core"
)

// MaximumSpanningForest computes a maximum-weight spanning forest of the
// undirected graph given by edges over vertices [0, n).
//
// Error Conditions:
//   - ErrNegativeOrder    : n < 0.
//   - ErrVertexOutOfRange : an edge endpoint outside [0, n).
//
// A disconnected graph is not an error: the forest spans each component and
// Weight reports whatever was accumulated.
//
// Steps:
//  1. Validate n and every endpoint.
//  2. Copy edges and sort by descending Weight (sort.SliceStable keeps the
//     caller's order for equal weights, so results are deterministic).
//  3. Initialize a DisjointSet over n elements.
//  4. Scan: every successful Union adds the edge and its weight; a failed
//     Union is a cycle-forming edge and is skipped. Self-loops never unite.
//  5. Stop early once n-1 edges are selected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func MaximumSpanningForest(edges []core.Edge, n int) (Forest, error) {
	// 1. Validate inputs.
	if n < 0 {
		return Forest{}, ErrNegativeOrder
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return Forest{}, fmt.Errorf("prim_kruskal: edges[%d]=(%d,%d) n=%d: %w", i, e.From, e.To, n, ErrVertexOutOfRange)
		}
	}
	if n <= 1 || len(edges) == 0 {
		// Nothing to connect: empty forest, zero weight.
		return Forest{Edges: []core.Edge{}}, nil
	}

	// 2. Sort a private copy by descending weight; stable keeps input order on ties.
	sorted := make([]core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	// 3. Union-find over all vertices.
	dsu := NewDisjointSet(n)

	// 4. Greedy scan.
	forest := Forest{Edges: make([]core.Edge, 0, n-1)}
	for _, e := range sorted {
		if !dsu.Union(e.From, e.To) {
			// Already connected: this edge would close a cycle.
			continue
		}
		forest.Edges = append(forest.Edges, e)
		forest.Weight += e.Weight
		// 5. A spanning tree on n vertices has exactly n-1 edges.
		if len(forest.Edges) == n-1 {
			break
		}
	}

	return forest, nil
}

// Kruskal computes the maximum spanning forest of graph using its edges in
// insertion order as the tie-break order.
//
// Error Conditions:
//   - ErrNilGraph : graph is nil.
//
// Complexity: O(E log E + α(V)·E).
func Kruskal(graph *core.Graph) (Forest, error) {
	if graph == nil {
		return Forest{}, ErrNilGraph
	}

	return MaximumSpanningForest(graph.Edges(), graph.Order())
}
