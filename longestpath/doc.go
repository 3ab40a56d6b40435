// Package longestpath finds heavy simple paths in weighted undirected graphs.
//
// The longest simple path problem is NP-hard, so the package offers one
// exact solver with an optional wall-clock cutoff and a family of greedy
// and randomized heuristics sharing a single trajectory engine.
//
//	Method                  Kind        Budget                 RNG
//	MethodExact             exact       optional TimeLimit     no
//	MethodJumpGreedy        restarts    TimeLimit/MaxRestarts  yes
//	MethodTopKEscalation    restarts    TimeLimit/MaxRestarts  yes
//	MethodSinglePassGreedy  sweep       none                   no
//	MethodTopKRandomSeed    one walk    none                   yes
//	MethodGreedySweep       sweep       optional TimeLimit     no
//
// Entry points:
//
//   - Solve(g, opts) dispatches on opts.Method; each solver is also exported.
//   - DefaultOptions() returns K=3, StartK=5, JumpProb=0.15, RandomProb=0.30,
//     no time limit, one worker.
//   - CheckResult(g, res) re-validates a result against the graph.
//
// Guarantees:
//
//   - Every returned path is simple and its Weight equals the sum of its
//     consecutive edge weights.
//   - Running out of time is never an error: solvers return the best result
//     completed so far and set Result.Truncated.
//   - Disconnected or edge-less graphs degrade to a single-vertex path of
//     weight 0 (JumpGreedy reports weight -1 with no path when no trajectory
//     completed at all).
//   - Given the same graph, Options and seed, results are identical.
//
// Randomness: Options.Rand if set, else a stream seeded from Options.Seed
// (0 maps to a fixed default). A *rand.Rand must not be shared between
// concurrent calls.
//
// Concurrency: solvers take one Graph.Adjacency() snapshot at entry and are
// otherwise self-contained. Exact can fan out start vertices over
// Options.Workers goroutines; all other solvers are single-threaded.
//
// The package does not log.
package longestpath
