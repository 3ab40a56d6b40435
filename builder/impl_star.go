// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): one center plus n-1 leaves.
//   - The center is the first appended vertex (base); leaves follow.
//   - Spokes are emitted (center, leaf) in ascending leaf order.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Star returns a Constructor that builds the star S_n (K_{1,n-1}).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", nameStar, n, MinStarNodes, ErrTooFewVertices)
		}

		center := reserve(g, n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			if err := connect(g, cfg, nameStar, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
