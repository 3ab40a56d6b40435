// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left partition is base..base+n1-1, right partition follows.
//   - Emits every cross pair (L_i, R_j): i asc over L, inner j asc over R.
//
// Complexity:
//   - Time: O(n1 + n2) vertices + O(n1·n2) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
				nameCompleteBipartite, MinPartition, n1, n2, ErrTooFewVertices)
		}

		left := reserve(g, n1+n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := connect(g, cfg, nameCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
