// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K1 is a single isolated vertex.
//   - Emits every unordered pair once, i asc then j asc with j > i.
//   - Weights from cfg.weightFn(cfg.rng) in emission order.
//
// Complexity:
//   - Time: O(n²) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", nameComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		base := reserve(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, nameComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
