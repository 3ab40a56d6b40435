// Package core: Graph method implementations.
//
// This file provides the mutation (InsertEdge) and query (Order, Size,
// Neighbors, Weight, HasEdge, Edges, Adjacency, HeaviestEdge) operations on
// the Graph type defined in types.go. Every method takes mu; readers use
// RLock so concurrent read-only use is safe.

package core

import (
	"math"
)

// InsertEdge records the undirected edge {u, v} with weight w.
//
// Steps:
//  1. Validate ids (non-negative, u != v) and weight (finite).
//  2. Grow the vertex set to max(u, v)+1 if needed.
//  3. If the pair already exists, overwrite the weight on both sides
//     (last-write-wins) and keep the original iteration slot.
//  4. Otherwise append v to adj[u], u to adj[v] and the pair to edges.
//
// Returns ErrNegativeVertex, ErrSelfLoop or ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(u, v int, w float64) error {
	// 1) Input validation
	if u < 0 || v < 0 {
		return ErrNegativeVertex
	}
	if u == v {
		return ErrSelfLoop
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure both endpoints exist
	g.growLocked(max(u, v) + 1)

	// 3) Duplicate pair: last write wins on both sides
	k := keyOf(u, v)
	if idx, ok := g.edgeIndex[k]; ok {
		g.edges[idx].Weight = w
		g.adj[u][g.slot[u][v]].Weight = w
		g.adj[v][g.slot[v][u]].Weight = w

		return nil
	}

	// 4) Fresh pair: mirror adjacency
	g.slotLocked(u)[v] = len(g.adj[u])
	g.adj[u] = append(g.adj[u], Neighbor{To: v, Weight: w})
	g.slotLocked(v)[u] = len(g.adj[v])
	g.adj[v] = append(g.adj[v], Neighbor{To: u, Weight: w})

	g.edgeIndex[k] = len(g.edges)
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})

	return nil
}

// Grow ensures the graph has at least n vertices; new vertices are isolated.
// A smaller n is a no-op (there is no removal).
// Complexity: O(n - Order()).
func (g *Graph) Grow(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.growLocked(n)
}

// growLocked extends the vertex set to at least n vertices. Caller holds mu.
func (g *Graph) growLocked(n int) {
	if extra := n - len(g.adj); extra > 0 {
		g.adj = append(g.adj, make([][]Neighbor, extra)...)
		g.slot = append(g.slot, make([]map[int]int, extra)...)
	}
}

// slotLocked returns v's slot map, allocating it on first use. Caller holds mu.
func (g *Graph) slotLocked(v int) map[int]int {
	if g.slot[v] == nil {
		g.slot[v] = make(map[int]int)
	}

	return g.slot[v]
}

// Order returns the number of vertices n.
// Complexity: O(1).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Size returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasVertex reports whether v is in [0, Order()).
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.adj)
}

// Neighbors returns a copy of v's neighbor list in first-insertion order.
// Vertices without edges yield an empty, non-nil slice.
// Returns ErrVertexNotFound if v is outside [0, Order()).
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return nil, ErrVertexNotFound
	}
	out := make([]Neighbor, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Degree returns the number of neighbors of v (0 for unknown vertices).
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return 0
	}

	return len(g.adj[v])
}

// Weight returns the weight of edge {u, v} and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weightLocked(u, v)
}

func (g *Graph) weightLocked(u, v int) (float64, bool) {
	if u < 0 || u >= len(g.adj) {
		return 0, false
	}
	i, ok := g.slot[u][v]
	if !ok {
		return 0, false
	}

	return g.adj[u][i].Weight, true
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Edges returns the distinct undirected edges in first-insertion order.
// The returned slice is a copy.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Adjacency returns a deep snapshot of every neighbor list, indexed by vertex.
// Solvers call this once per run and iterate the snapshot without locks.
// Complexity: O(V + E).
func (g *Graph) Adjacency() [][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Neighbor, len(g.adj))
	for v, nbs := range g.adj {
		out[v] = make([]Neighbor, len(nbs))
		copy(out[v], nbs)
	}

	return out
}

// HeaviestEdge returns the first edge (in insertion order) with the maximum
// weight, and false when the graph has no edges.
// Complexity: O(E).
func (g *Graph) HeaviestEdge() (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.edges) == 0 {
		return Edge{}, false
	}
	best := g.edges[0]
	for _, e := range g.edges[1:] {
		if e.Weight > best.Weight {
			best = e
		}
	}

	return best, true
}
