// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go, one topology per file.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order => identical graphs.
//   - Safety: never panic at build time; constructors return sentinel errors.
//
// Vertex placement:
//   - Every constructor appends its vertices after the ones already in g
//     (base = g.Order()), so BuildGraph(nil, Path(3), Cycle(4)) yields the
//     disjoint union P3 + C4 on vertices 0..6.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Place their vertices at [g.Order(), g.Order()+k) and never touch older ones.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: sum of each constructor's cost.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Reject a nil constructor instead of panicking on the call.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Labels renders the first n vertex labels under the ID scheme selected by
// opts (decimal by default). The CLI uses it to name generated vertices.
// Returns nil for n <= 0.
// Complexity: O(n) calls of the ID function.
func Labels(n int, opts ...BuilderOption) []string {
	if n <= 0 {
		return nil
	}
	cfg := newBuilderConfig(opts...)
	out := make([]string, n)
	for i := range out {
		out[i] = cfg.idFn(i)
	}

	return out
}
