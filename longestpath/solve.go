// Package longestpath - unified dispatcher.
//
// Solve validates Options once and routes to the solver named by
// opts.Method. Every solver is also callable directly.
package longestpath

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Solve runs the solver selected by opts.Method on g.
//
// Errors: validation sentinels from types.go, ErrUnboundedSearch for restart
// strategies without a budget, ErrUnsupportedMethod for unknown methods.
func Solve(g *core.Graph, opts Options) (Result, error) {
	switch opts.Method {
	case MethodExact:
		return Exact(g, opts)
	case MethodJumpGreedy:
		return JumpGreedy(g, opts)
	case MethodTopKEscalation:
		return TopKEscalation(g, opts)
	case MethodSinglePassGreedy:
		return SinglePassGreedy(g, opts)
	case MethodTopKRandomSeed:
		return TopKRandomSeed(g, opts)
	case MethodGreedySweep:
		return GreedySweep(g, opts)
	default:
		return Result{}, fmt.Errorf("longestpath: %v: %w", opts.Method, ErrUnsupportedMethod)
	}
}
