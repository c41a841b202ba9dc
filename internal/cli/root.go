// Package cli implements the cobra-based command-line surface of the
// simlaunch binary.
//
// The root command delegates flag parsing wholesale to the config
// package, so the option schema, its collision self-check, and the parse
// itself live in one place. This package is responsible for the process
// edges only: usage and version output, diagnostic printing, and the
// translation of CLIError values into OS exit codes.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmr-tortoise/simlaunch/internal/config"
	"github.com/mmr-tortoise/simlaunch/internal/model"
)

// Version, Commit, and Date identify the binary. They are injected from
// the main package, which receives them from ldflags at build time.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "simlaunch [flags] [simulation-file ...]",
		Short: "Discrete-event simulation launcher",
		Long: `simlaunch parses and validates the startup parameters for a simulation
run, then hands the resulting configuration to the simulation engine.

Positional arguments are simulation description files, processed in the
order given. All options are optional; an invocation with no arguments
starts with the documented defaults.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// A typo in one flag should produce one diagnostic, not a screenful.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically;
		// Execute formats them once, on stderr.
		SilenceErrors: true,

		// Flag parsing is delegated to config.New so the cobra layer and
		// the library contract share a single parse path. RunE therefore
		// receives the raw argument vector.
		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, args)
		},
	}

	// Register the schema on the command for help/usage rendering only.
	// The values bound here are never read; see config.AddFlags.
	config.AddFlags(rootCmd.Flags())

	return rootCmd
}

// runLaunch is the main logic of the root command: construct the
// configuration, honor --version, and hand over to the engine.
func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := config.New(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return cmd.Help()
		}
		return err
	}
	// The configuration is owned here; release it exactly once on the
	// way out, whatever path returns.
	defer cfg.Free()

	if cfg.PrintVersion() {
		fmt.Fprintf(cmd.OutOrStdout(), "simlaunch %s (commit: %s, built: %s)\n", Version, Commit, Date)
		return nil
	}

	logger := newLogger(cfg.LogLevel())
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.Stringer("logLevel", cfg.LogLevel()),
		zap.Int("workerThreads", cfg.WorkerThreads()),
		zap.Int("minRunAhead", cfg.MinRunAhead()),
		zap.Uint64("minRunAheadNs", uint64(cfg.MinRunAheadTime())),
		zap.Bool("runPingExample", cfg.RunPingExample()),
		zap.Bool("runEchoExample", cfg.RunEchoExample()),
		zap.Bool("runFileExample", cfg.RunFileExample()),
		zap.Strings("inputFilenames", cfg.InputFilenames()),
	)

	// The simulation engine takes ownership of the run from here. It is
	// an external collaborator; the launcher's job ends with a validated
	// configuration.
	return nil
}

// Execute runs the root command and handles exit codes. This is the main
// entry point called from main.go.
//
// CLIError values carry their own exit codes; any other error exits with
// the general error code.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes a diagnostic to stderr. stdout stays reserved for
// successful command output.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}
