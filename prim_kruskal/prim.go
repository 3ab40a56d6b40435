// Package prim_kruskal provides an implementation of Prim's Maximum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and grows the tree from a specified root vertex using a max-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Prim computes the maximum spanning tree of the connected component that
// contains root by growing outwards from root using a max-heap.
//
// Error Conditions:
//   - ErrNilGraph           : graph is nil.
//   - core.ErrVertexNotFound: root is outside [0, graph.Order()).
//
// Vertices unreachable from root are not covered; use Kruskal for a forest
// over every component. On a connected graph both produce the same Weight.
//
// Steps:
//  1. Validate graph and root.
//  2. Take one adjacency snapshot so the loop never touches the live graph.
//  3. Mark root as visited and push all edges adjacent to root.
//  4. While the heap is not empty and fewer than n-1 edges are selected:
//     a. Pop the heaviest edge (u→v); ties resolve in push order.
//     b. If v is already visited, skip (this edge would form a cycle).
//     c. Otherwise add the edge, mark v and accumulate its weight.
//     d. Push all edges from v to unvisited neighbors.
//  5. Return the tree edges and their total weight.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) (Forest, error) {
	// 1. Validate inputs.
	if graph == nil {
		return Forest{}, ErrNilGraph
	}
	if !graph.HasVertex(root) {
		return Forest{}, fmt.Errorf("prim_kruskal: root %d: %w", root, core.ErrVertexNotFound)
	}

	// 2. Snapshot adjacency.
	adj := graph.Adjacency()
	n := len(adj)
	visited := make([]bool, n)
	forest := Forest{Edges: make([]core.Edge, 0, n-1)}

	// 3. Seed the heap from root.
	pq := &edgePQ{}
	heap.Init(pq)
	var seq int
	push := func(u int) {
		for _, nb := range adj[u] {
			if !visited[nb.To] {
				heap.Push(pq, candidate{edge: core.Edge{From: u, To: nb.To, Weight: nb.Weight}, seq: seq})
				seq++
			}
		}
	}
	visited[root] = true
	push(root)

	// 4. Main loop: extract heaviest edge and expand the tree.
	for pq.Len() > 0 && len(forest.Edges) < n-1 {
		c := heap.Pop(pq).(candidate)
		v := c.edge.To
		if visited[v] {
			continue
		}
		visited[v] = true
		forest.Edges = append(forest.Edges, c.edge)
		forest.Weight += c.edge.Weight
		push(v)
	}

	// 5. Done.
	return forest, nil
}

// candidate is a heap entry: an edge leaving the tree plus its push sequence.
type candidate struct {
	edge core.Edge
	seq  int
}

// edgePQ implements heap.Interface for a max-heap of candidates, ordered by
// edge Weight descending, then by push sequence ascending.
type edgePQ []candidate

// Len returns the number of candidates in the priority queue.
// Complexity: O(1).
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i should be popped before j.
// Complexity: O(1).
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight > pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last candidate. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
