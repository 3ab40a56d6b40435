// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n vertices base..base+n-1.
//   - Emits edges in stable order (base+i, base+i+1) for i=0..n-2.
//   - Weights from cfg.weightFn(cfg.rng), one draw per edge in emission order.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", namePath, n, MinPathNodes, ErrTooFewVertices)
		}

		base := reserve(g, n)
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, namePath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
