package cli

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	"github.com/TrevorS/clique"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ConfigFile string
	Xsi        int
	Tau        float64
	Prune      bool
	Workers    int
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}
	defaults := clique.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "run <data.csv>",
		Short: "Cluster a CSV file",
		Long: `Cluster the numeric rows of a CSV file with CLIQUE.

Every column is a dimension. A non-numeric first row is treated as a header
and empty cells are read as missing values. Use "-" to read from stdin.
Parameters come from the defaults, then the --config file, then explicit
flags.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCluster(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML config file (keys: xsi, tau, prune, workers)")
	cmd.Flags().IntVar(&opts.Xsi, "xsi", defaults.Xsi, "number of intervals per dimension")
	cmd.Flags().Float64Var(&opts.Tau, "tau", defaults.Tau, "density threshold as a fraction of all points, in (0, 1)")
	cmd.Flags().BoolVar(&opts.Prune, "prune", defaults.Prune, "prune low-coverage subspaces at every level")
	cmd.Flags().IntVar(&opts.Workers, "workers", defaults.Workers, "worker goroutines (0 = number of CPUs)")

	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(opts *RunOptions, cmd *cobra.Command) (clique.Config, error) {
	cfg := clique.DefaultConfig()
	if opts.ConfigFile != "" {
		fc, err := LoadConfigFile(opts.ConfigFile)
		if err != nil {
			return cfg, usageError("cannot load config", err)
		}
		fc.Apply(&cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("xsi") {
		cfg.Xsi = opts.Xsi
	}
	if flags.Changed("tau") {
		cfg.Tau = opts.Tau
	}
	if flags.Changed("prune") {
		cfg.Prune = opts.Prune
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.Workers
	}
	return cfg, nil
}

// newLogger returns a stderr logger enabled up to V(verbosity). stdr keeps
// its verbosity globally, so the returned restore func must be called when
// the run ends.
func newLogger(verbosity int, w io.Writer) (logr.Logger, func()) {
	if verbosity <= 0 {
		return logr.Discard(), func() {}
	}
	prev := stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(w, "", log.LstdFlags)), func() { stdr.SetVerbosity(prev) }
}

func runCluster(opts *RunOptions, path string, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return err
	}
	logger, restore := newLogger(opts.Verbose, cmd.ErrOrStderr())
	defer restore()
	cfg.Logger = logger

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return usageError("cannot open input", err)
		}
		defer f.Close()
		in = f
	}

	points, header, err := LoadPoints(in)
	if err != nil {
		return usageError("cannot read "+path, err)
	}
	cfg.Logger.V(1).Info("loaded points", "path", path, "points", len(points))

	res, err := clique.Run(cmd.Context(), points, cfg)
	if err != nil {
		switch {
		case errors.Is(err, clique.ErrInvalidConfig):
			return usageError("invalid parameters", err)
		case errors.Is(err, clique.ErrDimensionMismatch), errors.Is(err, clique.ErrDuplicateID):
			return usageError("invalid input", err)
		}
		return runError("clustering failed", err)
	}

	if err := WriteReport(cmd.OutOrStdout(), opts.Format, NewReport(points, header, cfg, res)); err != nil {
		return runError("cannot write report", err)
	}
	return nil
}
