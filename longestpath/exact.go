// Package longestpath - exact longest simple path by exhaustive backtracking.
//
// Algorithm:
//  1. For every start vertex s in ascending order, with a fresh visitation
//     array, run recurse(s, 0).
//  2. recurse(v, acc) marks v. If the deadline has passed or v has no
//     neighbors it returns [v] with acc. Otherwise it extends into every
//     unvisited neighbor and keeps the heaviest result; an extension replaces
//     the current best only on strict improvement.
//  3. The neighbor mark is undone by a deferred call, so every exit from a
//     branch leaves the visitation array as its siblings expect.
//  4. The global best is the first start achieving the maximum.
//
// Deadline: checked once per recursive call. Expiry turns the current vertex
// into a dead end; accumulated weight is never discarded and no error is
// returned.
//
// Complexity: exponential (all simple paths) without a deadline.
package longestpath

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/longpath/core"
)

// exactEngine owns the scratch state of one search from one start at a time.
type exactEngine struct {
	// Graph data (read-only snapshot shared between engines).
	adj [][]core.Neighbor

	// Time budget
	dl        deadline
	truncated bool

	// Current search state
	visited []bool
}

func newExactEngine(adj [][]core.Neighbor, dl deadline) *exactEngine {
	return &exactEngine{adj: adj, dl: dl, visited: make([]bool, len(adj))}
}

// recurse returns the heaviest path starting at v, stored in reverse
// (v is the last element), and its total weight including acc.
// Precondition: v is not visited on entry.
func (e *exactEngine) recurse(v int, acc float64) ([]int, float64) {
	e.visited[v] = true

	// Base case: out of time, or nowhere to go.
	if e.dl.expired() {
		e.truncated = true
		return []int{v}, acc
	}
	if len(e.adj[v]) == 0 {
		return []int{v}, acc
	}

	var (
		bestRev []int
		bestW   = acc
	)
	for _, nb := range e.adj[v] {
		if e.visited[nb.To] {
			continue
		}
		rev, w := e.extend(nb.To, acc+nb.Weight)
		if w > bestW {
			bestRev, bestW = rev, w
		}
	}

	return append(bestRev, v), bestW
}

// extend runs recurse on u and always clears u's mark afterwards.
func (e *exactEngine) extend(u int, acc float64) ([]int, float64) {
	defer func() { e.visited[u] = false }()

	return e.recurse(u, acc)
}

// fromStart runs one top-level search on a clean visitation array and
// returns the path in forward order.
func (e *exactEngine) fromStart(s int) ([]int, float64) {
	clear(e.visited)
	rev, w := e.recurse(s, 0)
	e.visited[s] = false
	reverseInts(rev)

	return rev, w
}

// Exact returns a maximum-weight simple path of g, or the best found before
// opts.TimeLimit expired (Result.Truncated).
//
// Options used: TimeLimit, Workers. With Workers > 1 the start vertices are
// searched concurrently (bounded by Workers) and reduced in ascending start
// order, so the answer equals the sequential one whenever the deadline does
// not interfere.
//
// Returns an empty path with weight 0 for a graph with no vertices.
func Exact(g *core.Graph, opts Options) (Result, error) {
	if err := validateOptions(g, opts); err != nil {
		return Result{}, err
	}
	begin := time.Now()
	dl := newDeadline(opts.TimeLimit)
	adj := g.Adjacency()
	n := len(adj)

	res := Result{Method: MethodExact}
	if n == 0 {
		res.Elapsed = time.Since(begin)
		return res, nil
	}

	type startResult struct {
		path      []int
		weight    float64
		truncated bool
	}
	results := make([]startResult, n)

	if opts.Workers == 1 {
		e := newExactEngine(adj, dl)
		for s := 0; s < n; s++ {
			e.truncated = false
			p, w := e.fromStart(s)
			results[s] = startResult{path: p, weight: w, truncated: e.truncated}
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(opts.Workers)
		for s := 0; s < n; s++ {
			eg.Go(func() error {
				e := newExactEngine(adj, dl)
				p, w := e.fromStart(s)
				results[s] = startResult{path: p, weight: w, truncated: e.truncated}
				return nil
			})
		}
		_ = eg.Wait() // workers never fail
	}

	// Reduce in ascending start order: first maximum wins.
	best := 0
	for s := range results {
		if results[s].weight > results[best].weight {
			best = s
		}
		res.Truncated = res.Truncated || results[s].truncated
	}
	res.Path = core.Path{Vertices: results[best].path, Weight: results[best].weight}
	res.Restarts = n
	res.Elapsed = time.Since(begin)

	return res, nil
}

func reverseInts(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
