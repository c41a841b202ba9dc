package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/mmr-tortoise/simlaunch/internal/model"
)

// ErrHelp is returned by New when the invocation asked for help (-h or
// --help) instead of supplying a configuration. It is not a failure: the
// caller prints usage and exits 0.
var ErrHelp = pflag.ErrHelp

// options holds the flag bindings for one parse. It is scratch state:
// New copies the validated values into a Config and the options are
// discarded, so a failed parse can never leak a half-built Config.
type options struct {
	configPath string
	logLevel   string
	workers    int
	version    bool
	runAhead   int
	runPing    bool
	runEcho    bool
	runFile    bool
}

// registerMainGroup contributes the general launcher options.
func registerMainGroup(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.logLevel, "log-level", "",
		"Log verbosity: error, critical, warning, message, info or debug")
	fs.IntVarP(&o.workers, "workers", "w", 0,
		"Number of worker threads (0 = single-threaded)")
	fs.BoolVar(&o.version, "version", false,
		"Print version information and exit")
	fs.StringVar(&o.configPath, "config", "",
		"Path to a YAML or JSON(C) file with launcher defaults")
}

// registerNetworkGroup contributes the network timing options.
func registerNetworkGroup(fs *pflag.FlagSet, o *options) {
	fs.IntVar(&o.runAhead, "run-ahead", 0,
		"Minimum allowed network run-ahead interval in milliseconds")
}

// registerPluginExampleGroup contributes the built-in example toggles.
// The toggles are independent; any combination may be set.
func registerPluginExampleGroup(fs *pflag.FlagSet, o *options) {
	fs.BoolVar(&o.runPing, "run-ping-example", false,
		"Run the built-in ping example")
	fs.BoolVar(&o.runEcho, "run-echo-example", false,
		"Run the built-in echo example")
	fs.BoolVar(&o.runFile, "run-file-example", false,
		"Run the built-in file transfer example")
}

// optionGroups lists the schema fragments in registration order. The
// groups are additive and must not collide: pflag panics on a duplicate
// flag name, so assembling the schema is itself the collision check, and
// schema_test.go instantiates it to keep that invariant enforced.
var optionGroups = []func(*pflag.FlagSet, *options){
	registerMainGroup,
	registerNetworkGroup,
	registerPluginExampleGroup,
}

// newFlagSet assembles the full option schema into a fresh FlagSet bound
// to o. Output is discarded because diagnostics travel in the returned
// error; the CLI layer decides where they are printed.
func newFlagSet(o *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("simlaunch", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, register := range optionGroups {
		register(fs, o)
	}
	return fs
}

// AddFlags registers the full option schema on fs so that cobra can
// render it in help and usage output. The values bound here are never
// read; the authoritative parse happens in New, on its own FlagSet.
func AddFlags(fs *pflag.FlagSet) {
	var o options
	for _, register := range optionGroups {
		register(fs, &o)
	}
}

// New parses args (the full argument vector, without the program name)
// and returns a live Config.
//
// Parsing is single-pass and all-or-nothing. Any unknown flag, malformed
// value, or out-of-range number fails the whole construction with a
// *model.CLIError naming the offending argument, and no Config is
// returned. New has no side effects before success is determined: it
// writes nothing and mutates no process state.
//
// If --config was given, the named file supplies defaults that
// explicitly-set flags override; files listed there precede the
// command-line positionals in the resulting filename list.
func New(args []string) (*Config, error) {
	o := &options{}
	fs := newFlagSet(o)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, model.WrapCLIError(model.ExitUsageError, "invalid command line", err)
	}

	var filenames []string
	if o.configPath != "" {
		defaults, err := loadFileDefaults(o.configPath)
		if err != nil {
			return nil, err
		}
		applyFileDefaults(fs, o, defaults)
		for _, name := range defaults.Files {
			if name == "" {
				return nil, model.NewCLIError(model.ExitUsageError,
					fmt.Sprintf("config file %s: empty entry in files list", o.configPath))
			}
			filenames = append(filenames, name)
		}
	}

	// Range validation runs after file defaults are applied so that
	// out-of-range values are rejected no matter where they came from.
	if o.workers < 0 {
		return nil, model.NewCLIError(model.ExitUsageError,
			fmt.Sprintf("invalid value %d for --workers: must be >= 0", o.workers))
	}
	if o.runAhead < 0 {
		return nil, model.NewCLIError(model.ExitUsageError,
			fmt.Sprintf("invalid value %d for --run-ahead: must be >= 0", o.runAhead))
	}

	for i, arg := range fs.Args() {
		if arg == "" {
			return nil, model.NewCLIError(model.ExitUsageError,
				fmt.Sprintf("positional argument %d is empty: input filenames must be non-empty", i+1))
		}
	}
	filenames = append(filenames, fs.Args()...)

	return &Config{
		logLevelInput:  o.logLevel,
		workerThreads:  o.workers,
		printVersion:   o.version,
		minRunAhead:    o.runAhead,
		runPingExample: o.runPing,
		runEchoExample: o.runEcho,
		runFileExample: o.runFile,
		inputFilenames: filenames,
		state:          stateLive,
	}, nil
}
