// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// weight_fn.go - edge weight distributions for graph constructors.
//
// Every WeightFn yields finite, non-negative weights. Stochastic ones return
// DefaultEdgeWeight when no RNG is configured, so unseeded builds stay
// deterministic.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight from rng, which may be nil.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(*rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns value. Panics unless value is finite and >= 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || !finite(value) {
		panic(fmt.Sprintf("ConstantWeightFn: bad weight %g", value))
	}

	return func(*rand.Rand) float64 { return value }
}

// UniformWeightFn samples [lo, hi), or returns lo when the bounds meet.
// Panics unless 0 <= lo <= hi, both finite.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo || !finite(lo) || !finite(hi) {
		panic(fmt.Sprintf("UniformWeightFn: bad bounds [%g, %g)", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// NormalWeightFn samples N(mean, stddev), rounded to an integer and clipped
// at 0. Panics on a negative or non-finite parameter.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 || !finite(mean) || !finite(stddev) {
		panic(fmt.Sprintf("NormalWeightFn: bad parameters mean=%g stddev=%g", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// ExponentialWeightFn samples Exp(rate) (mean 1/rate), rounded to an
// integer. Panics unless rate is finite and > 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 || !finite(rate) {
		panic(fmt.Sprintf("ExponentialWeightFn: bad rate %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi float64) BuilderOption { return WithWeightFn(UniformWeightFn(lo, hi)) }

// WithNormalWeight is WithWeightFn(NormalWeightFn(mean, stddev)).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight is WithWeightFn(ExponentialWeightFn(rate)).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
