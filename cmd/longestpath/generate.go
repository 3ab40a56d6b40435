package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/builder"
	"github.com/katalvlaran/longpath/graphio"
)

// errInvalidFlag reports a generate flag value the builder would reject.
var errInvalidFlag = errors.New("invalid flag value")

// Graph kinds accepted by generate --kind.
const (
	kindPath      = "path"
	kindCycle     = "cycle"
	kindComplete  = "complete"
	kindStar      = "star"
	kindWheel     = "wheel"
	kindGrid      = "grid"
	kindBipartite = "bipartite"
	kindRandom    = "random"
	kindRegular   = "regular"
)

// Weight distributions accepted by generate --weights.
const (
	weightsConst   = "const"
	weightsUniform = "uniform"
	weightsNormal  = "normal"
	weightsExp     = "exp"
)

type generateFlags struct {
	kind    string
	n, m, d int
	p       float64
	seed    int64

	weights      string
	weight       float64
	minW, maxW   float64
	mean, stddev float64
	rate         float64
	ids, prefix  string
}

func newGenerateCmd(a *app) *cobra.Command {
	var gf generateFlags

	cmd := &cobra.Command{
		Use:   "generate --kind KIND -n N",
		Short: "Emit a synthetic graph as an edge-list",
		Long: `Generate a graph and write it as an edge-list that solve, mst, validate and
stats read back.

Kinds:
  path, cycle, complete, star, wheel   n vertices
  grid                                 n rows × m columns
  bipartite                            K(n, m)
  random                               G(n, p), each pair kept with probability p
  regular                              random d-regular graph on n vertices

Random kinds and non-constant weights draw from --seed, so the same flags
reproduce the same graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cons, err := gf.constructor()
			if err != nil {
				return err
			}
			opts, err := gf.options()
			if err != nil {
				return err
			}

			g, err := builder.BuildGraph(opts, cons)
			if err != nil {
				return err
			}
			a.log.Info().
				Str("kind", gf.kind).
				Int("order", g.Order()).
				Int("size", g.Size()).
				Int64("seed", gf.seed).
				Str("weights", gf.weights).
				Msg("graph generated")

			return graphio.Write(cmd.OutOrStdout(), g, graphio.LabelsFrom(builder.Labels(g.Order(), opts...)))
		},
	}

	f := cmd.Flags()
	f.StringVar(&gf.kind, "kind", kindPath, "Graph kind (path|cycle|complete|star|wheel|grid|bipartite|random|regular)")
	f.IntVarP(&gf.n, "n", "n", 0, "Vertex count (rows for grid, left side for bipartite)")
	f.IntVar(&gf.m, "m", 0, "Columns for grid, right side for bipartite")
	f.Float64VarP(&gf.p, "p", "p", 0.1, "Edge probability (random)")
	f.IntVarP(&gf.d, "d", "d", 3, "Degree (regular)")
	f.Int64Var(&gf.seed, "seed", 1, "Random seed")
	f.StringVar(&gf.weights, "weights", weightsConst, "Weight distribution (const|uniform|normal|exp)")
	f.Float64Var(&gf.weight, "weight", builder.DefaultEdgeWeight, "Edge weight (const)")
	f.Float64Var(&gf.minW, "min-weight", 1, "Lower bound (uniform)")
	f.Float64Var(&gf.maxW, "max-weight", 100, "Upper bound, exclusive (uniform)")
	f.Float64Var(&gf.mean, "mean", 50, "Mean (normal)")
	f.Float64Var(&gf.stddev, "stddev", 15, "Standard deviation (normal)")
	f.Float64Var(&gf.rate, "rate", 0.1, "Rate λ, mean 1/λ (exp)")
	f.StringVar(&gf.ids, "ids", builder.SchemeDecimal, "Vertex labels (decimal|excel|alnum|hex|prefix)")
	f.StringVar(&gf.prefix, "prefix", "v", "Label prefix (prefix ids)")
	_ = cmd.MarkFlagRequired("n")

	return cmd
}

// constructor maps kind and sizes onto a builder constructor. Size and
// probability checks are left to the builder.
func (gf generateFlags) constructor() (builder.Constructor, error) {
	switch strings.ToLower(gf.kind) {
	case kindPath:
		return builder.Path(gf.n), nil
	case kindCycle:
		return builder.Cycle(gf.n), nil
	case kindComplete:
		return builder.Complete(gf.n), nil
	case kindStar:
		return builder.Star(gf.n), nil
	case kindWheel:
		return builder.Wheel(gf.n), nil
	case kindGrid:
		return builder.Grid(gf.n, gf.m), nil
	case kindBipartite:
		return builder.CompleteBipartite(gf.n, gf.m), nil
	case kindRandom:
		return builder.RandomSparse(gf.n, gf.p), nil
	case kindRegular:
		return builder.RandomRegular(gf.n, gf.d), nil
	default:
		return nil, fmt.Errorf("--kind %q: %w", gf.kind, errInvalidFlag)
	}
}

// options validates weight and label flags before building options, since
// the builder's option constructors panic on bad parameters.
func (gf generateFlags) options() ([]builder.BuilderOption, error) {
	opts := []builder.BuilderOption{builder.WithSeed(gf.seed)}

	switch strings.ToLower(gf.weights) {
	case weightsConst:
		if !nonNegative(gf.weight) {
			return nil, fmt.Errorf("--weight %g: %w", gf.weight, errInvalidFlag)
		}
		opts = append(opts, builder.WithConstantWeight(gf.weight))
	case weightsUniform:
		if !nonNegative(gf.minW) || !nonNegative(gf.maxW) || gf.maxW < gf.minW {
			return nil, fmt.Errorf("--min-weight %g --max-weight %g: %w", gf.minW, gf.maxW, errInvalidFlag)
		}
		opts = append(opts, builder.WithUniformWeight(gf.minW, gf.maxW))
	case weightsNormal:
		if !nonNegative(gf.stddev) || math.IsNaN(gf.mean) || math.IsInf(gf.mean, 0) {
			return nil, fmt.Errorf("--mean %g --stddev %g: %w", gf.mean, gf.stddev, errInvalidFlag)
		}
		opts = append(opts, builder.WithNormalWeight(gf.mean, gf.stddev))
	case weightsExp:
		if !nonNegative(gf.rate) || gf.rate == 0 {
			return nil, fmt.Errorf("--rate %g: %w", gf.rate, errInvalidFlag)
		}
		opts = append(opts, builder.WithExponentialWeight(gf.rate))
	default:
		return nil, fmt.Errorf("--weights %q: %w", gf.weights, errInvalidFlag)
	}

	if strings.ContainsAny(gf.prefix, " \t\r\n") {
		return nil, fmt.Errorf("--prefix %q contains whitespace: %w", gf.prefix, errInvalidFlag)
	}
	idFn, err := builder.IDScheme(gf.ids, gf.prefix)
	if err != nil {
		return nil, err
	}

	return append(opts, builder.WithIDScheme(idFn)), nil
}

// nonNegative reports whether x is finite and ≥ 0.
func nonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}
