// File: types.go
// Role: Method enumeration, Options, Result and sentinel errors.
// Policy:
//   - No logging, no panics on user input: only sentinel errors below.
//   - Options are plain values; start from DefaultOptions() and override.

package longestpath

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/longpath/core"
)

// Sentinel errors for option validation and dispatch.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("longestpath: graph is nil")

	// ErrBadK indicates Options.K < 1.
	ErrBadK = errors.New("longestpath: k must be >= 1")

	// ErrBadStartK indicates Options.StartK < 1.
	ErrBadStartK = errors.New("longestpath: start_k must be >= 1")

	// ErrBadProbability indicates JumpProb or RandomProb outside [0, 1] (or NaN).
	ErrBadProbability = errors.New("longestpath: probability must be in [0, 1]")

	// ErrBadWorkers indicates Options.Workers < 1.
	ErrBadWorkers = errors.New("longestpath: workers must be >= 1")

	// ErrBadMaxRestarts indicates Options.MaxRestarts < 0.
	ErrBadMaxRestarts = errors.New("longestpath: max restarts must be >= 0")

	// ErrBadTimeLimit indicates a negative TimeLimit other than NoTimeLimit.
	ErrBadTimeLimit = errors.New("longestpath: time limit must be >= 0 or NoTimeLimit")

	// ErrUnboundedSearch indicates a restart strategy with neither a time
	// budget nor a restart cap: it would never return.
	ErrUnboundedSearch = errors.New("longestpath: restart strategy needs a time limit or max restarts")

	// ErrUnsupportedMethod indicates an unknown Method value or name.
	ErrUnsupportedMethod = errors.New("longestpath: unsupported method")

	// ErrWeightMismatch indicates a Result whose weight disagrees with its path.
	ErrWeightMismatch = errors.New("longestpath: result weight mismatch")
)

// NoTimeLimit disables the wall-clock budget.
const NoTimeLimit time.Duration = -1

// Method selects a solver.
type Method int

const (
	// MethodExact is exhaustive backtracking over simple paths.
	MethodExact Method = iota
	// MethodJumpGreedy samples greedy-max walks with random jumps from random starts.
	MethodJumpGreedy
	// MethodTopKEscalation seeds on random edges and extends top-k, then epsilon-greedy.
	MethodTopKEscalation
	// MethodSinglePassGreedy extends while an edge beats the accumulated weight.
	MethodSinglePassGreedy
	// MethodTopKRandomSeed runs one top-k walk seeded among the heaviest edges.
	MethodTopKRandomSeed
	// MethodGreedySweep runs a deterministic greedy-max walk from every vertex.
	MethodGreedySweep
)

var methodNames = [...]string{
	MethodExact:            "exact",
	MethodJumpGreedy:       "jump-greedy",
	MethodTopKEscalation:   "topk-escalation",
	MethodSinglePassGreedy: "single-pass",
	MethodTopKRandomSeed:   "topk-random-seed",
	MethodGreedySweep:      "greedy-sweep",
}

// String returns the CLI name of m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// Methods lists every supported method in declaration order.
func Methods() []Method {
	out := make([]Method, len(methodNames))
	for i := range methodNames {
		out[i] = Method(i)
	}

	return out
}

// ParseMethod maps a CLI name (case-insensitive, '_' accepted for '-') to a Method.
func ParseMethod(s string) (Method, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range methodNames {
		if name == key {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("longestpath: %q: %w", s, ErrUnsupportedMethod)
}

// Options configures every solver. Fields a solver does not use are ignored,
// but all fields are validated.
type Options struct {
	// Method is the solver Solve dispatches to.
	Method Method

	// TimeLimit is the wall-clock budget measured from call entry.
	// NoTimeLimit disables it; 0 expires immediately.
	TimeLimit time.Duration

	// K is the breadth of the top-k candidate set.
	K int

	// StartK is the breadth of the heaviest-edge seed set (TopKRandomSeed).
	StartK int

	// JumpProb is the chance of a uniform move among all candidates (JumpGreedy).
	JumpProb float64

	// RandomProb is the chance of a uniform move in phase 2 (TopKEscalation).
	RandomProb float64

	// Seed feeds the default RNG; 0 maps to a fixed default seed.
	Seed int64

	// Rand, when non-nil, is used instead of Seed. It is caller-owned and
	// must not be shared with concurrent calls.
	Rand *rand.Rand

	// MaxRestarts caps the number of trajectories of restart strategies.
	// 0 means unlimited.
	MaxRestarts int

	// Workers bounds the exact solver's concurrent start vertices.
	Workers int
}

// DefaultOptions returns the documented defaults:
//
//	Method=MethodExact, TimeLimit=NoTimeLimit, K=3, StartK=5,
//	JumpProb=0.15, RandomProb=0.30, Seed=0, MaxRestarts=0, Workers=1.
func DefaultOptions() Options {
	return Options{
		Method:      MethodExact,
		TimeLimit:   NoTimeLimit,
		K:           3,
		StartK:      5,
		JumpProb:    0.15,
		RandomProb:  0.30,
		Seed:        0,
		MaxRestarts: 0,
		Workers:     1,
	}
}

// Result is a solver outcome.
type Result struct {
	// Path is the best simple path found and its weight.
	core.Path

	// Method is the solver that produced the path.
	Method Method

	// Restarts is the number of completed trajectories (heuristics) or
	// explored start vertices (exact).
	Restarts int

	// Truncated reports that the time budget stopped the search early.
	Truncated bool

	// Elapsed is the wall-clock time spent in the solver.
	Elapsed time.Duration
}
