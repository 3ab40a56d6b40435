// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n, p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//   - A trial succeeds when rng.Float64() < p, so p=0 never and p=1 always
//     emits an edge.
//   - The edge weight is drawn right after its successful trial, from the
//     same rng.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, j asc (j>i). Fixed seed => fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				nameRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if !(p >= MinProbability && p <= MaxProbability) { // also rejects NaN
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				nameRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", nameRandomSparse, ErrNeedRandSource)
		}

		// 2) Place vertices, then run trials in fixed order.
		base := reserve(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(g, cfg, nameRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
