package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dylan-marx/rangesum/internal/config"
	"github.com/dylan-marx/rangesum/internal/ranges"
	"github.com/dylan-marx/rangesum/internal/ui"
	"github.com/spf13/cobra"
)

// skipConfig marks commands that must run even when the config file is broken.
const skipConfig = "skip-config"

type globalFlags struct {
	Config  string
	Quiet   bool
	Verbose bool
	Strict  bool
}

type app struct {
	root   *cobra.Command
	flags  globalFlags
	cfg    *config.GlobalConfig
	logger *ui.Logger
}

func newApp() *app {
	a := &app{}

	a.root = &cobra.Command{
		Use:   "rangesum [numbers...]",
		Short: "Summarize a list of integers as ranges",
		Long: "Reads a comma-separated list of integers and prints it as ranges,\n" +
			"e.g. 1,3,6,7,8 becomes 1, 3, 6-8. Malformed tokens are skipped.",
		Example: "  rangesum 1,3,6,7,8\n" +
			"  echo 5,10,15 | rangesum\n" +
			"  rangesum -- -3,-2,-1",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSummarize(cmd, args)
		},
	}

	a.root.PersistentFlags().StringVarP(&a.flags.Config, "config", "c", "", "Custom configuration file path")
	a.root.PersistentFlags().BoolVarP(&a.flags.Quiet, "quiet", "q", false, "Suppress output except errors")
	a.root.PersistentFlags().BoolVarP(&a.flags.Verbose, "verbose", "v", false, "Verbose output")
	a.root.Flags().BoolVarP(&a.flags.Strict, "strict", "s", false, "Fail on malformed tokens instead of skipping them")

	a.root.AddCommand(a.newExpandCmd(), a.newInitCmd(), a.newVersionCmd())

	colorizeHelp(a.root)
	return a
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	a := newApp()
	fmt.Fprintln(os.Stderr)
	if err := a.root.Execute(); err != nil {
		a.logError(err)
		os.Exit(1)
	}
}

func (a *app) logError(err error) {
	if a.logger != nil {
		a.logger.Error(err)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// setup builds the logger and loads configuration before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = ui.NewLogger(log.NewWithOptions(cmd.ErrOrStderr(), log.Options{}))

	cfg, err := config.LoadGlobal(a.flags.Config)
	if err != nil {
		if cmd.Annotations[skipConfig] == "" {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		a.logger.Warn("Ignoring configuration", "error", err)
		def := config.DefaultGlobalConfig()
		cfg = &def
	}
	a.cfg = cfg

	switch {
	case a.flags.Quiet:
		a.logger.SetLevel(log.ErrorLevel)
	case a.flags.Verbose:
		a.logger.SetLevel(log.DebugLevel)
	default:
		lvl, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			lvl = log.InfoLevel
		}
		a.logger.SetLevel(lvl)
	}
	return nil
}

func (a *app) strict(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("strict") {
		return a.flags.Strict
	}
	return a.cfg.Strict
}

func (a *app) runSummarize(cmd *cobra.Command, args []string) error {
	strict := a.strict(cmd)

	var validate func(string) error
	if strict {
		validate = func(s string) error {
			_, err := ranges.CollectStrict(s)
			return err
		}
	}

	input, err := a.readInput(cmd, args, numbersPrompt, validate)
	if handled, err := a.handleAbort(err); handled {
		return err
	}
	if err != nil {
		return err
	}

	set, bad := ranges.Inspect(input)
	for _, b := range bad {
		if strict {
			a.logger.Error("Malformed token", "token", b.Token, "position", b.Index)
		} else {
			a.logger.Debug("Discarded malformed token", "token", b.Token, "position", b.Index)
		}
	}
	if strict && len(bad) > 0 {
		return fmt.Errorf("%d malformed token(s) in strict mode", len(bad))
	}

	a.logger.Debug("Collected", "values", set.Len(), "segments", len(ranges.Segments(set)))
	fmt.Fprintln(cmd.OutOrStdout(), ranges.Summarize(set))
	return nil
}
