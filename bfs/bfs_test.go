package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/bfs"
	"github.com/katalvlaran/longpath/core"
)

// mustGraph builds a graph of order n from unit-weight edge pairs.
func mustGraph(t testing.TB, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, p := range pairs {
		require.NoError(t, g.InsertEdge(p[0], p[1], 1))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph(2)
	_, err = bfs.BFS(g, 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, -1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	res, err := bfs.BFS(core.NewGraph(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, []int{0}, res.Depth)
	assert.Equal(t, []int{bfs.Unreached}, res.Parent)

	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

// TestBFS_CycleDepths checks depths and parents on the 4-cycle 0-1-2-3-0.
func TestBFS_CycleDepths(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1}, res.Depth)
	assert.Equal(t, []int{bfs.Unreached, 0, 1, 0}, res.Parent)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

// TestBFS_Disconnected leaves other components unreached.
func TestBFS_Disconnected(t *testing.T) {
	g := mustGraph(t, 5, [2]int{0, 1}, [2]int{2, 3})

	res, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, res.Order)
	assert.False(t, res.Reached(0))
	assert.False(t, res.Reached(4))
	assert.False(t, res.Reached(99))
	assert.True(t, res.Reached(3))

	_, err = res.PathTo(0)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_MaxDepth stops expansion past the limit.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustGraph(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, bfs.Unreached, res.Depth[3])

	// zero means unlimited
	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
}

// TestBFS_FilterNeighbor skips heavy edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.InsertEdge(0, 1, 1))
	require.NoError(t, g.InsertEdge(0, 2, 10))

	light := func(_, _ int, w float64) bool { return w < 5 }
	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(light))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.False(t, res.Reached(2))
}

// TestBFS_Hooks records hook invocation order.
func TestBFS_Hooks(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})

	var enq, deq, vis []int
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id, _ int) error { vis = append(vis, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, enq)
	assert.Equal(t, []int{0, 1, 2}, deq)
	assert.Equal(t, []int{0, 1, 2}, vis)
}

// TestBFS_OnVisitError aborts and wraps the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop")

	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	g := mustGraph(t, 2, [2]int{0, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDoubleSweep finds the ends of a path regardless of the start.
func TestDoubleSweep(t *testing.T) {
	// 0-1-2-3-4 with a pendant 5 on 2
	g := mustGraph(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{2, 5})

	path, err := bfs.DoubleSweep(g, 2)
	require.NoError(t, err)
	require.Len(t, path, 5)
	_, err = core.ValidatePath(g, path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 4}, []int{path[0], path[len(path)-1]})

	// isolated start
	path, err = bfs.DoubleSweep(core.NewGraph(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	_, err = bfs.DoubleSweep(g, 42)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestHopDiameter takes the maximum over components.
func TestHopDiameter(t *testing.T) {
	g := mustGraph(t, 8,
		[2]int{0, 1}, // P2
		[2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, // P4
		// 6, 7 isolated
	)
	d, err := bfs.HopDiameter(g)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	d, err = bfs.HopDiameter(core.NewGraph(3))
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = bfs.HopDiameter(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
