// Package graphio reads and writes the plain-text edge-list format used by
// the longestpath CLI, and renders solver results.
//
// Input format:
//
//	n m            header: declared vertex count, edge count
//	u v w          m lines: two vertex labels and a weight
//
// Labels are arbitrary whitespace-free tokens. They are mapped to vertex ids
// 0..n-1 in order of first appearance; ids that never appear in an edge line
// are isolated vertices. Blank lines are skipped; lines after the m-th edge
// are ignored.
//
// Output:
//
//   - Write emits the same edge-list format (used by "generate").
//   - WriteResult renders a Report as text (weight line, then the path's
//     labels on one line), JSON or YAML.
//
// Errors (all wrapped with the 1-based line number where one applies):
//
//	ErrBadHeader        - header missing or not two non-negative integers.
//	ErrBadEdgeLine      - edge line is not "label label weight", the weight
//	                      is not a finite number, or the edge is a self-loop.
//	ErrTooManyVertices  - more distinct labels than the declared n.
//	ErrTruncatedInput   - fewer than m edge lines.
//	ErrUnknownLabel     - Labels.Resolve got a label that is not in the graph.
//	ErrUnknownFormat    - ParseFormat got an unsupported name.
package graphio
