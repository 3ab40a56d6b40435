// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// emission order, composition and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/builder"
	"github.com/katalvlaran/longpath/core"
)

// pairs returns g's edges as [from, to] in insertion order.
func pairs(g *core.Graph) [][2]int {
	es := g.Edges()
	out := make([][2]int, len(es))
	for i, e := range es {
		out[i] = [2]int{e.From, e.To}
	}
	return out
}

// build is BuildGraph that fails the test on error.
func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	require.NotNil(t, g)
	return g
}

// TestBuilders_Functional runs table-driven functional tests for each deterministic builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int // expected number of vertices
		wantE       int // expected number of edges
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}, pairs(g))
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, pairs(g))
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 4; i++ {
					for j := i + 1; j < 4; j++ {
						assert.True(t, g.HasEdge(i, j), "missing %d-%d", i, j)
					}
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Star(5)",
			ctor:  builder.Star(5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				for leaf := 1; leaf < 5; leaf++ {
					assert.Equal(t, 1, g.Degree(leaf))
				}
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				// rim 0..3, hub 4
				assert.Equal(t, 4, g.Degree(4))
				for i := 0; i < 4; i++ {
					assert.Equal(t, 3, g.Degree(i))
				}
				assert.Equal(t, [2]int{3, 0}, pairs(g)[3], "rim closes before the spokes")
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				// cell (r,c) = r*3 + c; right then bottom per cell
				assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}, pairs(g))
			},
		},
		{
			name:  "Grid(1,1)",
			ctor:  builder.Grid(1, 1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(0, 1), "left side is independent")
				assert.False(t, g.HasEdge(2, 3), "right side is independent")
				assert.True(t, g.HasEdge(1, 4))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, nil, tc.ctor)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.Size())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors checks that every constructor rejects its invalid domain
// with the documented sentinel.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,1)", nil, builder.CompleteBipartite(0, 1), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", seeded, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", seeded, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,-0.1)", seeded, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular(3,3)", seeded, builder.RandomRegular(3, 3), builder.ErrTooFewVertices},
		{"RandomRegular odd", seeded, builder.RandomRegular(3, 1), builder.ErrTooFewVertices},
		{"RandomRegular no rng", nil, builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

// TestBuildGraph_Composition checks that constructors append disjoint blocks.
func TestBuildGraph_Composition(t *testing.T) {
	t.Parallel()

	g := build(t, nil, builder.Path(3), builder.Cycle(3))
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 5, g.Size())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {5, 3}}, pairs(g))
	assert.False(t, g.HasEdge(2, 3), "blocks stay disjoint")
	assert.Len(t, g.Components(), 2)

	empty := build(t, nil)
	assert.Equal(t, 0, empty.Order())
}

// TestBuildGraph_Weights checks the weight policy in emission order.
func TestBuildGraph_Weights(t *testing.T) {
	t.Parallel()

	g := build(t, []builder.BuilderOption{builder.WithConstantWeight(2.5)}, builder.Path(4))
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}

	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(99), builder.WithUniformWeight(1, 10)}
	}
	a := build(t, opts(), builder.Complete(5))
	b := build(t, opts(), builder.Complete(5))
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same weights")
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 10.0)
	}
}

func TestRandomSparse(t *testing.T) {
	t.Parallel()

	none := build(t, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(6, 0))
	assert.Equal(t, 6, none.Order())
	assert.Equal(t, 0, none.Size())

	full := build(t, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(6, 1))
	assert.Equal(t, 15, full.Size())

	a := build(t, []builder.BuilderOption{builder.WithSeed(21)}, builder.RandomSparse(20, 0.3))
	b := build(t, []builder.BuilderOption{builder.WithSeed(21)}, builder.RandomSparse(20, 0.3))
	assert.Equal(t, pairs(a), pairs(b))
	for _, p := range pairs(a) {
		assert.Less(t, p[0], p[1], "trials run over i<j")
	}
}

func TestRandomRegular(t *testing.T) {
	t.Parallel()

	g := build(t, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(10, 3))
	assert.Equal(t, 10, g.Order())
	assert.Equal(t, 15, g.Size())
	for v := 0; v < 10; v++ {
		assert.Equal(t, 3, g.Degree(v), "vertex %d", v)
	}

	iso := build(t, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(4, 0))
	assert.Equal(t, 4, iso.Order())
	assert.Equal(t, 0, iso.Size())

	// Offsets apply after earlier blocks.
	mixed := build(t, []builder.BuilderOption{builder.WithSeed(2)}, builder.Path(2), builder.RandomRegular(4, 2))
	assert.Equal(t, 6, mixed.Order())
	for v := 2; v < 6; v++ {
		assert.Equal(t, 2, mixed.Degree(v))
	}
}
