// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   - Wₙ = Cₙ₋₁ + hub, i.e., a cycle of size (n-1) plus a hub vertex.
//   - Therefore, n ≥ 4 (since the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   - Rim vertices are base..base+n-2 in ring order; the hub is base+n-1.
//   - Emits the rim edges first (same order as Cycle), then the spokes
//     (hub, rim i) in ascending i.
//
// Complexity:
//   - Time: O(n) vertices + 2(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", nameWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		base := reserve(g, n)
		rim := n - 1
		if err := ring(g, cfg, nameWheel, base, rim); err != nil {
			return err
		}

		hub := base + rim
		for i := 0; i < rim; i++ {
			if err := connect(g, cfg, nameWheel, hub, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
