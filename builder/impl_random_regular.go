// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Algorithm (configuration model with bounded retries):
//  1. Lay out d stubs per vertex: [0×d, 1×d, ..., (n-1)×d].
//  2. Shuffle the stubs with cfg.rng and pair them consecutively.
//  3. Reject the attempt on a self-pair or a repeated pair; retry up to
//     maxStubMatchingAttempts times.
//  4. On success append the n vertices and emit the pairs in stub order.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n*d even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - ErrConstructFailed when every attempt is rejected; g is untouched then.
//   - d = 0 yields n isolated vertices.
//
// Complexity:
//   - Time: O(n·d) per attempt.
//   - Space: O(n·d) for stubs and the pair set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// RandomRegular returns a Constructor that samples a simple d-regular graph on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate domain.
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				nameRandomRegular, n, MinRandomNodes, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				nameRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				nameRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", nameRandomRegular, ErrNeedRandSource)
		}

		// 2) Stubs: vertex i repeated d times.
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// 3) Shuffle and match until a simple pairing appears.
		seen := make(map[[2]int]struct{}, len(stubs)/2)
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs, seen) {
				continue
			}

			base := reserve(g, n)
			for i := 0; i < len(stubs); i += 2 {
				if err := connect(g, cfg, nameRandomRegular, base+stubs[i], base+stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			nameRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph
// (no self-pair, no repeated pair). seen is scratch and is cleared first.
func simplePairing(stubs []int, seen map[[2]int]struct{}) bool {
	clear(seen)
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
