package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/bfs"
	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/graphio"
	"github.com/katalvlaran/longpath/prim_kruskal"
)

// statsView summarizes a graph. SweepPath is the double-sweep path of the
// largest component: a simple path whose weight is a cheap baseline for solve.
type statsView struct {
	RunID            string    `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Vertices         int       `json:"vertices" yaml:"vertices"`
	Edges            int       `json:"edges" yaml:"edges"`
	Components       int       `json:"components" yaml:"components"`
	LargestComponent int       `json:"largest_component" yaml:"largest_component"`
	Isolated         int       `json:"isolated" yaml:"isolated"`
	MaxDegree        int       `json:"max_degree" yaml:"max_degree"`
	TotalWeight      float64   `json:"total_weight" yaml:"total_weight"`
	HeaviestEdge     *edgeView `json:"heaviest_edge,omitempty" yaml:"heaviest_edge,omitempty"`
	ForestWeight     float64   `json:"spanning_forest_weight" yaml:"spanning_forest_weight"`
	HopDiameter      int       `json:"hop_diameter_lower_bound" yaml:"hop_diameter_lower_bound"`
	SweepPath        []string  `json:"sweep_path" yaml:"sweep_path"`
	SweepWeight      float64   `json:"sweep_weight" yaml:"sweep_weight"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize a graph",
		Long: `Print structural facts about the graph: order, size, components, degrees,
weights, the maximum spanning forest weight (an upper bound on any path
weight when weights are non-negative), a hop-diameter lower bound from BFS double sweeps, and the
sweep path of the largest component with its weight (a lower bound on the
heaviest simple path).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.cfg.OutputFormat()
			if err != nil {
				return err
			}
			in, err := a.readGraph(cmd, args)
			if err != nil {
				return err
			}

			view, err := summarize(cmd, in)
			if err != nil {
				return err
			}
			view.RunID = a.runID
			a.log.Info().
				Int("components", view.Components).
				Int("hop_diameter", view.HopDiameter).
				Float64("sweep_weight", view.SweepWeight).
				Msg("graph summarized")

			return writeStats(cmd.OutOrStdout(), format, a.cfg.Precision(), view)
		},
	}
}

// summarize computes statsView for in.
func summarize(cmd *cobra.Command, in *graphio.Input) (statsView, error) {
	g := in.Graph
	view := statsView{
		Vertices:  g.Order(),
		Edges:     g.Size(),
		SweepPath: []string{},
	}

	// 1) components
	comps := g.Components()
	view.Components = len(comps)
	var largest []int
	for _, c := range comps {
		if len(c) == 1 {
			view.Isolated++
		}
		if len(c) > len(largest) {
			largest = c
		}
	}
	view.LargestComponent = len(largest)

	// 2) degrees and weights
	for v := 0; v < g.Order(); v++ {
		view.MaxDegree = max(view.MaxDegree, g.Degree(v))
	}
	for _, e := range g.Edges() {
		view.TotalWeight += e.Weight
	}
	if e, ok := g.HeaviestEdge(); ok {
		view.HeaviestEdge = &edgeView{From: in.Labels.Label(e.From), To: in.Labels.Label(e.To), Weight: e.Weight}
	}

	// 3) spanning forest
	forest, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return statsView{}, err
	}
	view.ForestWeight = forest.Weight

	// 4) BFS sweeps
	ctxOpt := bfs.WithContext(cmd.Context())
	if view.HopDiameter, err = bfs.HopDiameter(g, ctxOpt); err != nil {
		return statsView{}, err
	}
	if len(largest) > 0 {
		path, err := bfs.DoubleSweep(g, largest[0], ctxOpt)
		if err != nil {
			return statsView{}, err
		}
		if view.SweepWeight, err = core.ValidatePath(g, path); err != nil {
			return statsView{}, err
		}
		view.SweepPath = in.Labels.Path(path)
	}

	return view, nil
}

func writeStats(w io.Writer, format graphio.Format, precision int, v statsView) error {
	if format != graphio.FormatText {
		return graphio.Encode(w, format, v)
	}

	fw := func(x float64) string { return graphio.FormatWeight(x, precision) }
	lines := [][2]string{
		{"vertices", fmt.Sprint(v.Vertices)},
		{"edges", fmt.Sprint(v.Edges)},
		{"components", fmt.Sprint(v.Components)},
		{"largest_component", fmt.Sprint(v.LargestComponent)},
		{"isolated", fmt.Sprint(v.Isolated)},
		{"max_degree", fmt.Sprint(v.MaxDegree)},
		{"total_weight", fw(v.TotalWeight)},
	}
	if v.HeaviestEdge != nil {
		e := v.HeaviestEdge
		lines = append(lines, [2]string{"heaviest_edge", fmt.Sprintf("%s %s %s", e.From, e.To, fw(e.Weight))})
	}
	lines = append(lines,
		[2]string{"spanning_forest_weight", fw(v.ForestWeight)},
		[2]string{"hop_diameter_lower_bound", fmt.Sprint(v.HopDiameter)},
		[2]string{"sweep_weight", fw(v.SweepWeight)},
	)
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", l[0], l[1]); err != nil {
			return err
		}
	}

	return nil
}
