// Package config manages CLI configuration using Viper: defaults, an
// optional YAML file, LONGPATH_* environment overrides and bound cobra
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/longpath/graphio"
	"github.com/katalvlaran/longpath/longestpath"
)

// EnvPrefix prefixes every environment override: solver.time_limit is
// read from LONGPATH_SOLVER_TIME_LIMIT.
const EnvPrefix = "LONGPATH"

// ServiceName is the "service" field of every log line.
const ServiceName = "longestpath"

// Configuration keys.
const (
	KeyMethod      = "solver.method"
	KeyTimeLimit   = "solver.time_limit"
	KeyK           = "solver.k"
	KeyStartK      = "solver.start_k"
	KeyJumpProb    = "solver.jump_prob"
	KeyRandomProb  = "solver.random_prob"
	KeySeed        = "solver.seed"
	KeyMaxRestarts = "solver.max_restarts"
	KeyWorkers     = "solver.workers"
	KeyLogLevel    = "logging.level"
	KeyFormat      = "output.format"
	KeyPrecision   = "output.precision"
)

// ErrInvalidConfig wraps every value that cannot be turned into solver or
// output settings.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config manages CLI configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment overrides enabled.
func New() *Config {
	v := viper.New()
	def := longestpath.DefaultOptions()

	// Solver parameters
	v.SetDefault(KeyMethod, longestpath.MethodExact.String())
	v.SetDefault(KeyTimeLimit, "none")
	v.SetDefault(KeyK, def.K)
	v.SetDefault(KeyStartK, def.StartK)
	v.SetDefault(KeyJumpProb, def.JumpProb)
	v.SetDefault(KeyRandomProb, def.RandomProb)
	v.SetDefault(KeySeed, int64(0))
	v.SetDefault(KeyMaxRestarts, def.MaxRestarts)
	v.SetDefault(KeyWorkers, def.Workers)

	// Logging parameters
	v.SetDefault(KeyLogLevel, "info")

	// Output parameters
	v.SetDefault(KeyFormat, string(graphio.FormatText))
	v.SetDefault(KeyPrecision, -1)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file; the format follows the extension.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	return nil
}

// BindFlag makes flag override key once the flag is set on the command line.
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("config: bind %s: no such flag: %w", key, ErrInvalidConfig)
	}

	return c.v.BindPFlag(key, flag)
}

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Getters for solver parameters
func (c *Config) Method() string      { return c.v.GetString(KeyMethod) }
func (c *Config) TimeLimit() string   { return c.v.GetString(KeyTimeLimit) }
func (c *Config) K() int              { return c.v.GetInt(KeyK) }
func (c *Config) StartK() int         { return c.v.GetInt(KeyStartK) }
func (c *Config) JumpProb() float64   { return c.v.GetFloat64(KeyJumpProb) }
func (c *Config) RandomProb() float64 { return c.v.GetFloat64(KeyRandomProb) }
func (c *Config) Seed() int64         { return c.v.GetInt64(KeySeed) }
func (c *Config) MaxRestarts() int    { return c.v.GetInt(KeyMaxRestarts) }
func (c *Config) Workers() int        { return c.v.GetInt(KeyWorkers) }

func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

func (c *Config) Format() string { return c.v.GetString(KeyFormat) }
func (c *Config) Precision() int { return c.v.GetInt(KeyPrecision) }

// OutputFormat parses output.format.
func (c *Config) OutputFormat() (graphio.Format, error) {
	f, err := graphio.ParseFormat(c.Format())
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", KeyFormat, ErrInvalidConfig, err)
	}

	return f, nil
}

// DefaultBudgets are the time limits restart methods get when neither a
// time limit nor a restart cap is configured.
var DefaultBudgets = map[longestpath.Method]time.Duration{
	longestpath.MethodJumpGreedy:     60 * time.Second,
	longestpath.MethodTopKEscalation: 2500 * time.Millisecond,
}

// SolverOptions converts the solver section into library options. Parsing
// failures (method name, time limit) are reported here; range checks on the
// numeric knobs stay with the solver. Restart methods without any budget
// fall back to DefaultBudgets.
func (c *Config) SolverOptions() (longestpath.Options, error) {
	opts := longestpath.DefaultOptions()

	m, err := longestpath.ParseMethod(c.Method())
	if err != nil {
		return opts, fmt.Errorf("%s: %w: %w", KeyMethod, ErrInvalidConfig, err)
	}
	limit, err := ParseTimeLimit(c.TimeLimit())
	if err != nil {
		return opts, fmt.Errorf("%s: %w", KeyTimeLimit, err)
	}

	opts.Method = m
	opts.TimeLimit = limit
	if limit == longestpath.NoTimeLimit && c.MaxRestarts() == 0 {
		if d, ok := DefaultBudgets[m]; ok {
			opts.TimeLimit = d
		}
	}
	opts.K = c.K()
	opts.StartK = c.StartK()
	opts.JumpProb = c.JumpProb()
	opts.RandomProb = c.RandomProb()
	opts.Seed = c.Seed()
	opts.MaxRestarts = c.MaxRestarts()
	opts.Workers = c.Workers()

	return opts, nil
}

// maxLimitSeconds keeps a seconds value inside time.Duration's range.
const maxLimitSeconds = float64(math.MaxInt64 / int64(time.Second))

// ParseTimeLimit accepts a Go duration ("1.5s", "250ms"), a plain number of
// seconds ("2", "0.5") or "none"/"" for no limit. Negative values are rejected.
func ParseTimeLimit(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "none", "unlimited", "inf":
		return longestpath.NoTimeLimit, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		secs, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(secs) || math.Abs(secs) > maxLimitSeconds {
			return 0, fmt.Errorf("time limit %q: %w", s, ErrInvalidConfig)
		}
		d = time.Duration(secs * float64(time.Second))
	}
	if d < 0 {
		return 0, fmt.Errorf("time limit %q is negative: %w", s, ErrInvalidConfig)
	}

	return d, nil
}

// CreateLogger creates a zerolog logger based on config, writing
// human-readable lines to out.
func (c *Config) CreateLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", ServiceName).Logger()
}
