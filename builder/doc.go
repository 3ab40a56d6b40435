// Package builder provides reusable “functional‐options”‐style graph fixtures
// for the longpath toolkit: deterministic topologies for tests, benchmarks and
// the CLI's generate command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): empty graph, resolved config, constructors in order.
//     – Constructor: a func(*core.Graph, builderConfig) error appending one block.
//   - Topologies (impl_*.go):
//     – Path(n), Cycle(n), Complete(n), Star(n), Wheel(n), Grid(rows, cols),
//     CompleteBipartite(n1, n2), RandomSparse(n, p), RandomRegular(n, d).
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: RNG for stochastic constructors and weights.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), rounded, clipped at 0.
//     – ExponentialWeightFn: exponential ∼Exp(rate), rounded.
//   - Vertex label schemes (IDFn implementations, see Labels and IDScheme):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//     – PrefixIDFn:        prefix + decimal ("v0","v1",…).
//
// Guarantees:
//
//   - Composition: each constructor appends its vertices after the existing
//     ones, so several constructors build a disjoint union.
//   - Determinism: same options, seed and constructor order give identical
//     graphs, including edge insertion order and weights.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors for invalid build parameters, wrapped with
//     the constructor name for context.
//   - Documented algorithmic complexity per constructor.
package builder
