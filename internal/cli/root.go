// Package cli implements the fjcnorm command-line interface: flag parsing,
// configuration and logger initialisation, and the single normalize run.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jurimetrics/fjcnorm/internal/application/normalize"
	"github.com/jurimetrics/fjcnorm/internal/config"
	"github.com/jurimetrics/fjcnorm/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the global CLI flags.
type rootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Verbose    bool
	Debug      bool
	NoColor    bool
	AsOfYear   int
	Summary    bool
}

// NewRootCommand creates the root cobra command with all flags registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fjcnorm [flags] <input.csv> <output.csv>",
		Short: "Normalize the FJC federal-judge commission export",
		Long: "fjcnorm converts the Federal Judicial Center's commission-centered export\n" +
			"(Biographical Directory of Article III Federal Judges) into a normalized\n" +
			"per-commission table: Judge, Circuit, Party, StartYear, EndYear.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (optional)")
	f.StringVarP(&opts.LogLevel, "loglevel", "L", "", "log level: debug|info|warn|error (default warn)")
	f.StringVarP(&opts.LogFile, "logfile", "l", "", "also write log entries to this file")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at info level")
	f.BoolVarP(&opts.Debug, "debug", "d", false, "log at debug level (overrides --verbose)")
	f.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	f.IntVar(&opts.AsOfYear, "as-of-year", 0, "end year for ongoing commissions (default: current year)")
	f.BoolVar(&opts.Summary, "summary", false, "print a per-circuit row-count table after the pass")

	return cmd
}

// run loads configuration, builds the logger, and executes the pass.
func run(cmd *cobra.Command, opts *rootOptions, input, output string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	svc := normalize.NewService(logger)
	res, err := svc.Run(cmd.Context(), normalize.Options{
		Input:    input,
		Output:   output,
		AsOfYear: cfg.Normalize.AsOfYear,
	})
	if err != nil {
		return err
	}

	if opts.Summary {
		printSummary(cmd.OutOrStdout(), res, opts.NoColor)
	}
	return nil
}

// loadConfig resolves configuration with flag > env > file > default
// precedence. The verbosity flags mirror the historical tool surface:
// -v promotes the level to info, -d to debug, -d winning over -v.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Verbose {
		cfg.Log.Level = "info"
	}
	if opts.Debug {
		cfg.Log.Level = "debug"
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.AsOfYear != 0 {
		cfg.Normalize.AsOfYear = opts.AsOfYear
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command against os.Args. It is the single entry
// point used by cmd/fjcnorm.
func Execute() error {
	return NewRootCommand().Execute()
}

// Exit prints err the way the CLI reports all failures and returns the
// process exit code.
func Exit(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
