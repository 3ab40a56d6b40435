// Package longpath is a toolkit for the longest simple path problem on
// weighted undirected graphs.
//
// The problem is NP-hard, so the toolkit pairs an exact anytime search with
// a family of restart, sweep and randomized heuristics, and surrounds them
// with the pieces needed to feed and check them:
//
//	core/          thread-safe int-vertex Graph, Edge, Path and ValidatePath
//	longestpath/   Solve, Exact and the heuristic engine (Options, Result)
//	prim_kruskal/  disjoint-set union and maximum spanning forests
//	bfs/           breadth-first search, double sweeps, hop diameters
//	builder/       deterministic and seeded synthetic graphs
//	graphio/       edge-list reader/writer, labels, text/JSON/YAML reports
//	cmd/longestpath  the command line: solve, mst, validate, stats, generate
//
// Quick example:
//
//	g := core.NewGraph(4)
//	_ = g.InsertEdge(0, 1, 1)
//	_ = g.InsertEdge(1, 2, 2)
//	_ = g.InsertEdge(2, 3, 3)
//	res, _ := longestpath.Exact(g, longestpath.DefaultOptions())
//	// res.Vertices == [0 1 2 3], res.Weight == 6
//
// Or from the shell:
//
//	longestpath generate --kind random -n 30 -p 0.2 --weights uniform | longestpath solve -t 2s
//
//	go get github.com/katalvlaran/longpath
package longpath
