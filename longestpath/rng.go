// Package longestpath - RNG utilities shared by the randomized heuristics.
//
// Goals:
//   - Determinism: same seed ⇒ identical trajectories.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package longestpath

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// rng returns the caller's source when set, else a fresh seeded stream.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// pick returns a uniformly chosen element of c. c must be non-empty.
// A single candidate still consumes one draw so trajectories depend only on
// the seed and the candidate counts.
func pick[T any](r *rand.Rand, c []T) T {
	return c[r.Intn(len(c))]
}
