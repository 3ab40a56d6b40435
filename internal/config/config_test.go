package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/graphio"
	"github.com/katalvlaran/longpath/internal/config"
	"github.com/katalvlaran/longpath/longestpath"
)

func TestDefaults(t *testing.T) {
	c := config.New()

	opts, err := c.SolverOptions()
	require.NoError(t, err)

	def := longestpath.DefaultOptions()
	assert.Equal(t, longestpath.MethodExact, opts.Method)
	assert.Equal(t, longestpath.NoTimeLimit, opts.TimeLimit)
	assert.Equal(t, def.K, opts.K)
	assert.Equal(t, def.StartK, opts.StartK)
	assert.Equal(t, def.JumpProb, opts.JumpProb)
	assert.Equal(t, def.RandomProb, opts.RandomProb)
	assert.Equal(t, def.Workers, opts.Workers)
	assert.Zero(t, opts.Seed)
	assert.Zero(t, opts.MaxRestarts)

	assert.Equal(t, "info", c.LogLevel())
	f, err := c.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatText, f)
	assert.Equal(t, -1, c.Precision())
}

func TestSet_Overrides(t *testing.T) {
	c := config.New()
	c.Set(config.KeyMethod, "topk_escalation")
	c.Set(config.KeyTimeLimit, "250ms")
	c.Set(config.KeyK, 4)
	c.Set(config.KeySeed, 42)

	opts, err := c.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, longestpath.MethodTopKEscalation, opts.Method)
	assert.Equal(t, 250*time.Millisecond, opts.TimeLimit)
	assert.Equal(t, 4, opts.K)
	assert.Equal(t, int64(42), opts.Seed)
}

func TestSolverOptions_DefaultBudgets(t *testing.T) {
	tests := []struct {
		method   string
		limit    string
		restarts int
		want     time.Duration
	}{
		{"jump-greedy", "none", 0, 60 * time.Second},
		{"topk-escalation", "none", 0, 2500 * time.Millisecond},
		{"topk-escalation", "1s", 0, time.Second},
		{"jump-greedy", "none", 10, longestpath.NoTimeLimit},
		{"exact", "none", 0, longestpath.NoTimeLimit},
		{"greedy-sweep", "none", 0, longestpath.NoTimeLimit},
	}

	for _, tc := range tests {
		t.Run(tc.method+"/"+tc.limit, func(t *testing.T) {
			c := config.New()
			c.Set(config.KeyMethod, tc.method)
			c.Set(config.KeyTimeLimit, tc.limit)
			c.Set(config.KeyMaxRestarts, tc.restarts)

			opts, err := c.SolverOptions()
			require.NoError(t, err)
			assert.Equal(t, tc.want, opts.TimeLimit)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LONGPATH_SOLVER_METHOD", "single-pass")
	t.Setenv("LONGPATH_SOLVER_WORKERS", "3")
	t.Setenv("LONGPATH_OUTPUT_FORMAT", "yaml")

	c := config.New()
	opts, err := c.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, longestpath.MethodSinglePassGreedy, opts.Method)
	assert.Equal(t, 3, opts.Workers)

	f, err := c.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatYAML, f)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "longpath.yaml")
	body := []byte("solver:\n  method: jump-greedy\n  time_limit: 2\n  jump_prob: 0.5\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	c := config.New()
	require.NoError(t, c.LoadFromFile(path))

	opts, err := c.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, longestpath.MethodJumpGreedy, opts.Method)
	assert.Equal(t, 2*time.Second, opts.TimeLimit)
	assert.Equal(t, 0.5, opts.JumpProb)
	assert.Equal(t, "debug", c.LogLevel())

	require.Error(t, config.New().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestBindFlag(t *testing.T) {
	fs := pflag.NewFlagSet("solve", pflag.ContinueOnError)
	fs.Int("k", 3, "")
	require.NoError(t, fs.Parse([]string{"--k", "9"}))

	c := config.New()
	require.NoError(t, c.BindFlag(config.KeyK, fs.Lookup("k")))
	assert.Equal(t, 9, c.K())

	err := c.BindFlag(config.KeyK, fs.Lookup("nope"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSolverOptions_Invalid(t *testing.T) {
	c := config.New()
	c.Set(config.KeyMethod, "simulated-annealing")
	_, err := c.SolverOptions()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, longestpath.ErrUnsupportedMethod)

	c = config.New()
	c.Set(config.KeyTimeLimit, "soon")
	_, err = c.SolverOptions()
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	c = config.New()
	c.Set(config.KeyFormat, "csv")
	_, err = c.OutputFormat()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestParseTimeLimit(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"", longestpath.NoTimeLimit, false},
		{"none", longestpath.NoTimeLimit, false},
		{"Unlimited", longestpath.NoTimeLimit, false},
		{"0", 0, false},
		{"2", 2 * time.Second, false},
		{"0.5", 500 * time.Millisecond, false},
		{"1m30s", 90 * time.Second, false},
		{"250ms", 250 * time.Millisecond, false},
		{"-1s", 0, true},
		{"-2", 0, true},
		{"nan", 0, true},
		{"1e300", 0, true},
		{"soon", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := config.ParseTimeLimit(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCreateLogger(t *testing.T) {
	c := config.New()
	var buf bytes.Buffer
	log := c.CreateLogger(&buf)

	log.Debug().Msg("hidden at info")
	log.Info().Int("order", 4).Msg("graph loaded")

	out := buf.String()
	assert.NotContains(t, out, "hidden at info")
	assert.Contains(t, out, "graph loaded")
	assert.Contains(t, out, "service=")
	assert.Contains(t, out, config.ServiceName)

	c.Set(config.KeyLogLevel, "not-a-level")
	buf.Reset()
	fallback := c.CreateLogger(&buf)
	fallback.Info().Msg("falls back to info")
	assert.Contains(t, buf.String(), "falls back to info")
}
