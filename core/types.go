// File: types.go
// Role: Sentinel errors, value types (Neighbor, Edge) and the Graph struct.
//
// Errors:
//
//	ErrNegativeVertex  - vertex id < 0.
//	ErrVertexNotFound  - vertex id outside [0, n).
//	ErrSelfLoop        - edge (v, v) requested.
//	ErrBadWeight       - weight is NaN or ±Inf.
//	ErrEmptyPath       - path has no vertices.
//	ErrDuplicateVertex - path visits a vertex twice.
//	ErrMissingEdge     - consecutive path vertices are not adjacent.
//
// Concurrency:
//   - All public methods take mu (sync.RWMutex). Solvers never iterate the live
//     structure: they take an Adjacency() snapshot once per call.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertex indicates a negative vertex id was supplied.
	ErrNegativeVertex = errors.New("core: negative vertex id")

	// ErrVertexNotFound indicates an operation referenced a vertex outside [0, n).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge from a vertex to itself was requested.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrEmptyPath indicates a path without any vertex.
	ErrEmptyPath = errors.New("core: path is empty")

	// ErrDuplicateVertex indicates a path that is not simple.
	ErrDuplicateVertex = errors.New("core: vertex visited more than once")

	// ErrMissingEdge indicates two consecutive path vertices without an edge.
	ErrMissingEdge = errors.New("core: edge does not exist")
)

// Neighbor is one entry of a vertex's adjacency: the adjacent vertex and the
// weight of the connecting edge.
type Neighbor struct {
	// To is the adjacent vertex id.
	To int

	// Weight is the weight of the undirected edge.
	Weight float64
}

// Edge is an undirected weighted edge. From/To keep the orientation of the
// first insertion of the pair; Weight is always the latest written value.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// pairKey is the canonical (lo < hi) key of an unordered vertex pair.
type pairKey struct {
	lo, hi int
}

func keyOf(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Graph is a weighted undirected simple graph over vertices [0, Order()).
//
// Invariants (held under mu):
//   - weight(u,v) == weight(v,u): both adjacency sides are written together.
//   - no self-loops; at most one edge per unordered pair.
//   - slot[v][u] is the index of u inside adj[v]; slot[v] is nil until v
//     gets its first neighbor.
//   - edgeIndex[keyOf(u,v)] is the index of the pair inside edges.
type Graph struct {
	mu sync.RWMutex // guards everything below

	adj       [][]Neighbor    // vertex → neighbors, first-insertion order
	slot      []map[int]int   // vertex → neighbor → index in adj[vertex]
	edges     []Edge          // distinct undirected edges, first-insertion order
	edgeIndex map[pairKey]int // unordered pair → index in edges
}

// NewGraph creates a Graph with n isolated vertices [0, n).
// A negative n is treated as 0. More vertices appear on demand when
// InsertEdge references an id ≥ Order(). Isolated vertices cost two slice
// headers each; per-vertex maps are allocated on first use.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{
		adj:       make([][]Neighbor, n),
		slot:      make([]map[int]int, n),
		edgeIndex: make(map[pairKey]int),
	}
}
