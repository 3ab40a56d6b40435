// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: slice indexed by vertex, distance from start or Unreached
//   - Parent: slice indexed by vertex, predecessor in the BFS tree or Unreached
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - DoubleSweep and HopDiameter estimate component diameters in hops.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - A BFS-tree path between two sweep ends is a simple path, which makes it
//     a cheap baseline for longest-path search and a lower bound on the hop
//     diameter reported by the longestpath CLI's stats command.
//
// Determinism
//
//	BFS reads one Graph.Adjacency() snapshot and enqueues neighbors in
//	adjacency (insertion) order, so the visit sequence is fully reproducible.
//	Edge weights never affect distances; they are only passed to FilterNeighbor.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth, Parent, visited set)
//
// Usage
//
//	result, err := bfs.BFS(
//	    g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int, w float64) bool { return w > 0 }),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside [0, n).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for an unreached vertex.
//   - ctx.Err() on cancellation, and wrapped OnVisit hook errors.
package bfs
