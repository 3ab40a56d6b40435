// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   - Cell (r, c) is vertex base + r*cols + c (row-major).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - For each cell in row-major order emit Right then Bottom if present.
//
// Complexity:
//   - Time: O(rows*cols).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				nameGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		base := reserve(g, rows*cols)
		cell := func(r, c int) int { return base + r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				// Right neighbor
				if c+1 < cols {
					if err := connect(g, cfg, nameGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				// Bottom neighbor
				if r+1 < rows {
					if err := connect(g, cfg, nameGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
