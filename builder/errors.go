// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w: "<Method>: <detail>: %w".
//   - Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
//
// Priority when several validations fail:
//   - ErrTooFewVertices     - size/domain checks first (n, rows, cols, degree).
//   - ErrInvalidProbability - then probability ranges.
//   - ErrNeedRandSource     - then RNG presence for stochastic builders.
//   - ErrConstructFailed    - only after all retries are exhausted.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, rows, cols, degree)
// is outside the allowed domain for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted permitted attempts
// (stub-matching retries for RandomRegular) or received a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownScheme indicates an unsupported ID scheme name in IDScheme.
var ErrUnknownScheme = errors.New("builder: unknown id scheme")
