// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// helpers.go - vertex placement and edge emission shared by impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// reserve appends n isolated vertices to g and returns the id of the first.
// Constructors address their local vertex i as base+i.
// Complexity: O(n).
func reserve(g *core.Graph, n int) int {
	base := g.Order()
	g.Grow(base + n)

	return base
}

// connect inserts {u, v} with the next weight from cfg, wrapping core errors
// with the constructor's method tag.
// Complexity: O(1) amortized.
func connect(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weight()
	if err := g.InsertEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: InsertEdge(%d, %d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
