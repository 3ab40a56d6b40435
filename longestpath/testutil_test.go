// Package longestpath_test provides lightweight helpers shared across the
// *_test.go files of this package.
package longestpath_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longestpath"
)

const (
	// seedDet is a deterministic seed for RNG-based solvers.
	seedDet = int64(7)

	// restartsAmple is a restart cap large enough for small graphs to hit
	// their heaviest edge with overwhelming probability.
	restartsAmple = 400

	// nSmall keeps the bitmask reference solver cheap (2^n · n^2).
	nSmall = 8

	// nTrials is the number of random graphs per property test.
	nTrials = 25
)

// buildChain returns A-B-C-D with strictly increasing weights 1, 2, 3.
func buildChain(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	require.NoError(t, g.InsertEdge(0, 1, 1))
	require.NoError(t, g.InsertEdge(1, 2, 2))
	require.NoError(t, g.InsertEdge(2, 3, 3))

	return g
}

// buildHook returns 0-1 (1), 1-2 (5), 2-3 (3): small enough to trace every
// strategy by hand.
func buildHook(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	require.NoError(t, g.InsertEdge(0, 1, 1))
	require.NoError(t, g.InsertEdge(1, 2, 5))
	require.NoError(t, g.InsertEdge(2, 3, 3))

	return g
}

// randomGraph returns a G(n, p) graph with integer weights in [1, 20].
func randomGraph(t testing.TB, r *rand.Rand, n int, p float64) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				require.NoError(t, g.InsertEdge(u, v, float64(1+r.Intn(20))))
			}
		}
	}

	return g
}

// completeGraph returns K_n with weights (u+v)%7+1.
func completeGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			require.NoError(t, g.InsertEdge(u, v, float64((u+v)%7+1)))
		}
	}

	return g
}

// referenceLongest computes the longest simple path weight by dynamic
// programming over (visited set, end vertex). Independent of the solver.
func referenceLongest(g *core.Graph) float64 {
	n := g.Order()
	if n == 0 {
		return 0
	}
	full := 1 << n
	dp := make([][]float64, full)
	for m := range dp {
		dp[m] = make([]float64, n)
		for v := range dp[m] {
			dp[m][v] = math.Inf(-1)
		}
	}
	for v := 0; v < n; v++ {
		dp[1<<v][v] = 0
	}
	best := 0.0
	for m := 1; m < full; m++ {
		for v := 0; v < n; v++ {
			cur := dp[m][v]
			if math.IsInf(cur, -1) {
				continue
			}
			if cur > best {
				best = cur
			}
			nbs, _ := g.Neighbors(v)
			for _, nb := range nbs {
				if m&(1<<nb.To) != 0 {
					continue
				}
				next := m | 1<<nb.To
				if w := cur + nb.Weight; w > dp[next][nb.To] {
					dp[next][nb.To] = w
				}
			}
		}
	}

	return best
}

// requireValid asserts the result is a simple path whose weight matches.
func requireValid(t *testing.T, g *core.Graph, res longestpath.Result) {
	t.Helper()
	require.NoError(t, longestpath.CheckResult(g, res))
}

// heaviestWeight returns the heaviest edge weight, or 0 with no edges.
func heaviestWeight(g *core.Graph) float64 {
	e, ok := g.HeaviestEdge()
	if !ok {
		return 0
	}

	return e.Weight
}
