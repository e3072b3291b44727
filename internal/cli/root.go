// Package cli implements the cobra commands of the bigbench binary.
//
// Every command is a thin wrapper over the bigbench package: it parses
// arguments, builds a harness from layered settings (defaults, environment,
// flags), and prints the result as text or JSON.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/bigbench"
)

// Set from main via ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	jsonOutput bool
	verbose    bool
	seed       int64
	trials     int
	warmup     int
	noGC       bool

	logger *slog.Logger
}

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bigbench",
		Short: "Empirical time-complexity estimation",
		Long: `bigbench times algorithms at different input sizes and checks the
measurements against their theoretical growth functions.

Settings are layered: built-in defaults, then BIGBENCH_* environment
variables, then command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s)", Version, Commit),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.Int64Var(&opts.seed, "seed", 0, "Random seed (0 = wall clock)")
	flags.IntVar(&opts.trials, "trials", 5, "Timed runs per measurement; the fastest is kept")
	flags.IntVar(&opts.warmup, "warmup", 0, "Untimed runs before each measurement")
	flags.BoolVar(&opts.noGC, "no-gc", false, "Skip the runtime.GC() request before each timed run")

	rootCmd.AddCommand(newGrowthCommand(opts))
	rootCmd.AddCommand(newTimeCommand(opts))
	rootCmd.AddCommand(newEstimateCommand(opts))
	rootCmd.AddCommand(newEvaluateCommand(opts))
	rootCmd.AddCommand(newProfileCommand(opts))
	rootCmd.AddCommand(newRunCommand(opts))

	return rootCmd
}

// Execute runs the root command and exits with the error's code.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
			os.Exit(int(cliErr.Code))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(ExitGeneralError))
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

// harnessConfig layers env overrides and explicitly set flags over base.
func (o *options) harnessConfig(cmd *cobra.Command, base bigbench.HarnessConfig) (bigbench.HarnessConfig, error) {
	cfg := base
	if err := bigbench.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Trials = o.trials
	}
	if flags.Changed("warmup") {
		cfg.Warmup = o.warmup
	}
	if flags.Changed("no-gc") {
		cfg.CollectGarbage = !o.noGC
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}

	cfg.Logger = o.logger
	return cfg, nil
}

func (o *options) newHarness(cmd *cobra.Command) (*bigbench.Harness, error) {
	cfg, err := o.harnessConfig(cmd, bigbench.DefaultHarnessConfig())
	if err != nil {
		return nil, err
	}
	return bigbench.NewHarness(nil, nil, cfg), nil
}

// print writes v as indented JSON under --json, otherwise calls text.
func (o *options) print(w io.Writer, v any, text func(io.Writer)) error {
	if !o.jsonOutput {
		text(w)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseAlgorithm(s string) (bigbench.AlgorithmID, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: algorithm id %q", errBadArgument, s)
	}
	return bigbench.AlgorithmID(v), nil
}

func parseSize(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: input size %q", errBadArgument, s)
	}
	return v, nil
}
