package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/graphio"
	"github.com/katalvlaran/longpath/internal/config"
)

// app is the per-invocation state shared by every subcommand. It is filled
// by loadConfig before any RunE runs.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	runID string

	// global flags
	configFile string
	verbose    bool
}

// Execute builds a fresh command tree and runs it with signal handling.
// The first SIGINT or SIGTERM cancels the command context; the signal
// handler is then released so a second one terminates the process.
func Execute(ctx context.Context, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	context.AfterFunc(ctx, cancel)

	root := newRootCmd()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "longestpath",
		Short: "Heaviest simple paths in weighted undirected graphs",
		Long: `longestpath reads a weighted undirected graph as an edge list
("n m" header, then m lines "u v w") and searches for a simple path of
maximum total weight, exactly or with one of several heuristics.

Input is read from the file argument, or from stdin when it is absent or "-".`,
		PersistentPreRunE: a.loadConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "Path to a YAML config file")
	pf.String("log-level", "info", "Log level (trace|debug|info|warn|error|disabled)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Shorthand for --log-level debug")
	pf.StringP("output", "o", string(graphio.FormatText), "Output format ("+formatNames()+")")
	pf.Int("precision", -1, "Decimals in text output (-1 = shortest exact)")

	root.AddCommand(
		newSolveCmd(a),
		newMSTCmd(a),
		newValidateCmd(a),
		newStatsCmd(a),
		newGenerateCmd(a),
		newVersionCmd(),
	)

	return root
}

// loadConfig resolves configuration (defaults < file < env < flags) and
// builds the logger before any command runs.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	if a.configFile != "" {
		if err := a.cfg.LoadFromFile(a.configFile); err != nil {
			return err
		}
	}

	pf := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{
		config.KeyLogLevel:  "log-level",
		config.KeyFormat:    "output",
		config.KeyPrecision: "precision",
	} {
		if err := a.cfg.BindFlag(key, pf.Lookup(name)); err != nil {
			return err
		}
	}

	if a.verbose {
		a.cfg.Set(config.KeyLogLevel, "debug")
	}

	a.runID = uuid.NewString()
	a.log = a.cfg.CreateLogger(cmd.ErrOrStderr()).With().Str("run_id", a.runID).Logger()
	a.log.Debug().Str("command", cmd.Name()).Str("config_file", a.configFile).Msg("configuration loaded")

	return nil
}

// formatNames joins the supported output formats for help text.
func formatNames() string {
	names := make([]string, 0, len(graphio.Formats()))
	for _, f := range graphio.Formats() {
		names = append(names, string(f))
	}

	return strings.Join(names, "|")
}

// bindFlags maps command-local flags onto config keys.
func (a *app) bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for name, key := range keys {
		if err := a.cfg.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}

	return nil
}

// openInput returns the reader named by args: a file, or stdin for no
// argument or "-". The caller closes it.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	return os.Open(args[0])
}

// readGraph parses the input named by args.
func (a *app) readGraph(cmd *cobra.Command, args []string) (*graphio.Input, error) {
	rc, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	in, err := graphio.Read(rc)
	if err != nil {
		return nil, err
	}
	a.log.Info().
		Int("order", in.Graph.Order()).
		Int("size", in.Graph.Size()).
		Int("labels", in.Labels.Len()).
		Msg("graph loaded")

	return in, nil
}
