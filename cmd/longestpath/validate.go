package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/graphio"
)

// pathView is the rendered result of a path check.
type pathView struct {
	RunID  string   `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Path   []string `json:"path" yaml:"path"`
	Weight float64  `json:"weight" yaml:"weight"`
}

func newValidateCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate [file] --path \"a b c\"",
		Short: "Check that a labeled path is simple and prints its weight",
		Long: `Check a path given as whitespace-separated vertex labels: every label
must be a vertex, no vertex may repeat, and consecutive vertices must be
adjacent. Prints the recomputed weight; exits non-zero on the first violation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.cfg.OutputFormat()
			if err != nil {
				return err
			}
			labels := strings.Fields(path)
			if len(labels) == 0 {
				return fmt.Errorf("--path: %w", core.ErrEmptyPath)
			}

			in, err := a.readGraph(cmd, args)
			if err != nil {
				return err
			}
			ids, err := in.Labels.Resolve(labels)
			if err != nil {
				return err
			}
			w, err := core.ValidatePath(in.Graph, ids)
			if err != nil {
				return fmt.Errorf("path %q: %w", path, err)
			}
			a.log.Info().Int("vertices", len(ids)).Float64("weight", w).Msg("path is valid")

			if format == graphio.FormatText {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), graphio.FormatWeight(w, a.cfg.Precision()))
				return err
			}

			return graphio.Encode(cmd.OutOrStdout(), format, pathView{RunID: a.runID, Path: labels, Weight: w})
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Path as whitespace-separated vertex labels")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
