// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Appends n vertices base..base+n-1.
//   - Emits edges in stable order i -> (i+1)%n for i=0..n-1 (the closing
//     edge (n-1, 0) comes last).
//   - Weights from cfg.weightFn(cfg.rng) in emission order.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", nameCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		base := reserve(g, n)
		return ring(g, cfg, nameCycle, base, n)
	}
}

// ring emits the n edges of a cycle over base..base+n-1. Shared with Wheel.
func ring(g *core.Graph, cfg builderConfig, method string, base, n int) error {
	for i := 0; i < n; i++ {
		if err := connect(g, cfg, method, base+i, base+(i+1)%n); err != nil {
			return err
		}
	}

	return nil
}
