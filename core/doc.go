// Package core provides the weighted undirected graph substrate used by the
// longest-path solvers, the spanning-forest utilities and the I/O adapters.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are integer ids [0, n). String labels live outside core
//     (see package graphio).
//   - Edges are undirected, weighted (float64, finite), simple: no self-loops,
//     one weight per unordered pair, later insertions overwrite the weight.
//   - Storage is symmetric: weight(u,v) == weight(v,u) at all times.
//   - Neighbor iteration follows first-insertion order; deterministic solvers
//     give identical results on identically built graphs.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int) *Graph                        // O(n)
//	InsertEdge(u, v int, w float64) error         // O(1)†
//	Grow(n int)                                   // O(Δn), isolated vertices
//
//	// Query
//	Order() int                                   // O(1)
//	Size() int                                    // O(1)
//	HasVertex(v int) bool                         // O(1)
//	Neighbors(v int) ([]Neighbor, error)          // O(deg v), copy
//	Degree(v int) int                             // O(1)
//	Weight(u, v int) (float64, bool)              // O(1)
//	HasEdge(u, v int) bool                        // O(1)
//	Edges() []Edge                                // O(E), insertion order
//	Adjacency() [][]Neighbor                      // O(V+E), lock-free snapshot
//	HeaviestEdge() (Edge, bool)                   // O(E)
//
//	// Paths
//	ValidatePath(g, vertices) (float64, error)    // O(len)
//	NewPath(g, vertices) (Path, error)            // O(len)
//
//	// gonum bridge
//	ToGonum() *simple.WeightedUndirectedGraph     // O(V+E)
//	Components() [][]int                          // O(V log V + E)
//
// † amortized: slices and slot maps grow geometrically.
//
// There is no removal operation: graphs are built once per run and stay
// read-only while solvers execute.
package core
