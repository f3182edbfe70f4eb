package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"file-indexer/internal/config"
	"file-indexer/internal/filesystem"
	"file-indexer/internal/logging"
	"file-indexer/internal/memory"
	"file-indexer/internal/metrics"
	"file-indexer/internal/startup"
	"file-indexer/internal/workers"
)

// ErrUsage marks a malformed invocation: wrong argument count or a
// non-numeric argument where a number is expected.
var ErrUsage = errors.New("invalid usage")

// app carries state shared by every subcommand of one root command
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	mem        memory.ConfigResult
	configFile string
	verbose    bool
}

// NewRootCommand builds the file-indexer command tree. mem is the result of
// the GOMEMLIMIT setup done by main and is only reported at debug level.
func NewRootCommand(mem memory.ConfigResult) *cobra.Command {
	a := &app{v: config.New(), mem: mem}

	rootCmd := &cobra.Command{
		Use:   "file-indexer",
		Short: "Concurrent file indexer with SHA-256 checksums",
		Long: `file-indexer walks a directory tree, hashes every regular file with a
pool of workers and answers queries over the result.

Commands:
  index     Index a directory and report a summary
  find      List files larger than a size in megabytes
  checksum  Print the SHA-256 checksum of a file by name`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return usageError(cmd, errors.New("a command is required"))
		},
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.writeMetrics()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "optional YAML config file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.Bool("skip-hidden", false, "skip files and directories starting with '.'")
	flags.String("metrics-textfile", "", "write Prometheus metrics to this file after the run")
	flags.IntP("workers", "w", workers.Default, "number of hashing workers (0 = auto)")

	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeySkipHidden, flags.Lookup("skip-hidden"))
	_ = a.v.BindPFlag(config.KeyMetricsTextfile, flags.Lookup("metrics-textfile"))
	_ = a.v.BindPFlag(config.KeyWorkers, flags.Lookup("workers"))

	rootCmd.AddCommand(a.indexCmd())
	rootCmd.AddCommand(a.findCmd())
	rootCmd.AddCommand(a.checksumCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.LogLevel = logging.LevelDebug
	}
	a.cfg = cfg

	logging.SetLevel(cfg.LogLevel)
	metrics.InitializeMetrics()
	filesystem.SetObserver(metrics.NewFilesystemObserver())

	startup.LogConfig(cfg, a.mem)
	return nil
}

func (a *app) writeMetrics() error {
	if a.cfg == nil || a.cfg.MetricsTextfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	logging.Debug("Wrote metrics to %s", a.cfg.MetricsTextfile)
	return nil
}

// usageError prints the command usage and wraps err as ErrUsage
func usageError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(cmd.UsageString())
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// args wraps a cobra positional-args validator so that arity errors are
// reported as ErrUsage.
func args(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := validate(cmd, a); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  args(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), startup.GetBuildInfo().String())
		},
	}
}
