package longestpath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longestpath"
)

func TestOptionsValidation(t *testing.T) {
	g := buildChain(t)
	cases := []struct {
		name   string
		mutate func(*longestpath.Options)
		want   error
	}{
		{"k zero", func(o *longestpath.Options) { o.K = 0 }, longestpath.ErrBadK},
		{"start_k negative", func(o *longestpath.Options) { o.StartK = -1 }, longestpath.ErrBadStartK},
		{"jump prob above one", func(o *longestpath.Options) { o.JumpProb = 1.5 }, longestpath.ErrBadProbability},
		{"random prob NaN", func(o *longestpath.Options) { o.RandomProb = math.NaN() }, longestpath.ErrBadProbability},
		{"workers zero", func(o *longestpath.Options) { o.Workers = 0 }, longestpath.ErrBadWorkers},
		{"max restarts negative", func(o *longestpath.Options) { o.MaxRestarts = -2 }, longestpath.ErrBadMaxRestarts},
		{"time limit negative", func(o *longestpath.Options) { o.TimeLimit = -5 }, longestpath.ErrBadTimeLimit},
		{"unknown method", func(o *longestpath.Options) { o.Method = longestpath.Method(99) }, longestpath.ErrUnsupportedMethod},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := longestpath.DefaultOptions()
			tc.mutate(&opts)
			_, err := longestpath.Solve(g, opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolve_NilGraph(t *testing.T) {
	for _, m := range longestpath.Methods() {
		opts := longestpath.DefaultOptions()
		opts.Method = m
		opts.MaxRestarts = 1
		_, err := longestpath.Solve(nil, opts)
		assert.ErrorIs(t, err, longestpath.ErrNilGraph, "%v", m)
	}
}

func TestSolve_DispatchesEveryMethod(t *testing.T) {
	g := buildChain(t)
	for _, m := range longestpath.Methods() {
		opts := longestpath.DefaultOptions()
		opts.Method = m
		opts.MaxRestarts = 10
		res, err := longestpath.Solve(g, opts)
		require.NoError(t, err, "%v", m)
		assert.Equal(t, m, res.Method)
		requireValid(t, g, res)
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range longestpath.Methods() {
		got, err := longestpath.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := longestpath.ParseMethod("  TopK_Escalation ")
	require.NoError(t, err)
	assert.Equal(t, longestpath.MethodTopKEscalation, got)

	_, err = longestpath.ParseMethod("simulated-annealing")
	assert.ErrorIs(t, err, longestpath.ErrUnsupportedMethod)

	assert.Equal(t, "Method(42)", longestpath.Method(42).String())
}

func TestCheckResult(t *testing.T) {
	g := buildChain(t)

	ok := longestpath.Result{Path: core.Path{Vertices: []int{1, 2, 3}, Weight: 5}}
	assert.NoError(t, longestpath.CheckResult(g, ok))

	bad := longestpath.Result{Path: core.Path{Vertices: []int{1, 2, 3}, Weight: 6}}
	assert.ErrorIs(t, longestpath.CheckResult(g, bad), longestpath.ErrWeightMismatch)

	dup := longestpath.Result{Path: core.Path{Vertices: []int{1, 2, 1}, Weight: 4}}
	assert.ErrorIs(t, longestpath.CheckResult(g, dup), core.ErrDuplicateVertex)

	gap := longestpath.Result{Path: core.Path{Vertices: []int{0, 2}, Weight: 0}}
	assert.ErrorIs(t, longestpath.CheckResult(g, gap), core.ErrMissingEdge)

	assert.NoError(t, longestpath.CheckResult(g, longestpath.Result{Path: core.Path{Weight: -1}}))
	assert.ErrorIs(t, longestpath.CheckResult(nil, ok), longestpath.ErrNilGraph)
}

func TestDefaultOptions(t *testing.T) {
	o := longestpath.DefaultOptions()
	assert.Equal(t, longestpath.MethodExact, o.Method)
	assert.Equal(t, longestpath.NoTimeLimit, o.TimeLimit)
	assert.Equal(t, 3, o.K)
	assert.Equal(t, 5, o.StartK)
	assert.Equal(t, 0.15, o.JumpProb)
	assert.Equal(t, 0.30, o.RandomProb)
	assert.Equal(t, 1, o.Workers)
	assert.Zero(t, o.MaxRestarts)
}
