// Package prim_kruskal provides two algorithms for computing the Maximum Spanning Forest
// of an undirected, weighted *core.Graph: Kruskal's algorithm and Prim's algorithm,
// together with the DisjointSet (union-find) structure Kruskal is built on.
//
// What & Why
//
//   - What is a maximum spanning forest?
//     Given an undirected weighted graph G = (V, E), it is an acyclic subset T ⊆ E that
//     spans every connected component of G and maximizes the sum of weights in T.
//     On a connected graph it is a spanning tree with exactly |V|−1 edges.
//
//   - Why it matters here:
//     The heaviest spanning forest is a cheap structural summary of where the weight of
//     a graph lives. The longest-path CLI reports it next to heuristic results, and its
//     weight bounds every simple path from above on non-negative graphs (a simple path
//     is itself a forest).
//
// Algorithms Provided
//
//   - MaximumSpanningForest(edges []core.Edge, n int) (Forest, error)
//     Kruskal over a raw edge list on vertices [0, n). Sort by descending weight (stable:
//     equal weights keep the caller's order), scan with a DisjointSet, skip every edge
//     whose endpoints are already joined, stop after n−1 selections.
//     Time: O(E log E + α(V)·E). Space: O(V + E).
//
//   - Kruskal(g *core.Graph) (Forest, error)
//     MaximumSpanningForest over g.Edges() in insertion order.
//
//   - Prim(g *core.Graph, root int) (Forest, error)
//     Grow a single tree from root with a max-heap of candidate edges leaving the tree.
//     Covers only root's component. Time: O(E log E). Space: O(V + E).
//
//   - Compute(g, opts...) selects either algorithm through MSTOptions.
//
// Disconnected graphs are not an error: Kruskal returns a forest, Prim a tree of the
// root's component.
//
// Error Conditions
//
//   - ErrNilGraph          : graph is nil (Kruskal, Prim).
//   - ErrNegativeOrder     : n < 0 (MaximumSpanningForest).
//   - ErrVertexOutOfRange  : an edge endpoint outside [0, n) (MaximumSpanningForest).
//   - core.ErrVertexNotFound: Prim root outside [0, Order()).
//   - ErrUnknownMethod     : Compute with a method other than "kruskal" or "prim".
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
