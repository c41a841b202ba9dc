package config

import (
	"github.com/mmr-tortoise/simlaunch/internal/model"
	"github.com/mmr-tortoise/simlaunch/internal/sim"
)

// lifecycleState tracks where a Config is in its
// Uninitialized → Live → Destroyed lifecycle. The zero value is
// deliberately stateUninitialized, so a Config that was never built by
// New is caught by the liveness guard just like a freed one.
type lifecycleState int

const (
	stateUninitialized lifecycleState = iota
	stateLive
	stateDestroyed
)

// Config is the immutable result of parsing a command-line invocation.
// All fields are set exactly once, by New, and never mutated afterward,
// which makes a live Config safe for concurrent reads. Destruction is
// not synchronized: the single owner calls Free when no reader remains.
type Config struct {
	// logLevelInput is the raw user-supplied log level. It is stored
	// unvalidated and resolved lazily by LogLevel, because an
	// unrecognized level degrades to a default instead of failing.
	logLevelInput string

	// workerThreads is the number of worker threads the engine should
	// spawn. Zero means single-threaded operation.
	workerThreads int

	// printVersion records that --version was requested. The caller is
	// expected to print the version and exit 0 without starting a
	// simulation.
	printVersion bool

	// minRunAhead is the minimum network run-ahead interval in
	// milliseconds, a timing parameter handed to the network stack.
	minRunAhead int

	// Built-in example toggles. They are independent: any combination
	// may be set on one invocation.
	runPingExample bool
	runEchoExample bool
	runFileExample bool

	// inputFilenames holds the positional arguments in command-line
	// order. Duplicates are allowed and order is part of the contract.
	inputFilenames []string

	// state is the liveness tag checked by the debug guard.
	state lifecycleState
}

// Free releases the Config. It must be called exactly once by the owner;
// after Free returns, every accessor (and a second Free) is a programmer
// error caught by the debug liveness guard.
func (c *Config) Free() {
	c.assertLive()
	c.state = stateDestroyed
	// Drop the backing array so a guarded build cannot keep the
	// filenames reachable through a stale pointer.
	c.inputFilenames = nil
}

// LogLevelInput returns the raw log-level string as supplied on the
// command line, empty if the flag was omitted.
func (c *Config) LogLevelInput() string {
	c.assertLive()
	return c.logLevelInput
}

// LogLevel resolves the stored log-level input to a Severity. The
// resolution never fails: unrecognized input yields model.DefaultSeverity.
func (c *Config) LogLevel() model.Severity {
	c.assertLive()
	return model.ParseSeverity(c.logLevelInput)
}

// WorkerThreads returns the configured worker thread count, >= 0.
func (c *Config) WorkerThreads() int {
	c.assertLive()
	return c.workerThreads
}

// PrintVersion reports whether --version was requested.
func (c *Config) PrintVersion() bool {
	c.assertLive()
	return c.printVersion
}

// MinRunAhead returns the minimum network run-ahead interval in
// milliseconds, >= 0.
func (c *Config) MinRunAhead() int {
	c.assertLive()
	return c.minRunAhead
}

// MinRunAheadTime returns the minimum network run-ahead interval as
// simulation time, converted from the millisecond flag value.
func (c *Config) MinRunAheadTime() sim.Time {
	c.assertLive()
	return sim.Time(c.minRunAhead) * sim.OneMillisecond
}

// RunPingExample reports whether the built-in ping example was requested.
func (c *Config) RunPingExample() bool {
	c.assertLive()
	return c.runPingExample
}

// RunEchoExample reports whether the built-in echo example was requested.
func (c *Config) RunEchoExample() bool {
	c.assertLive()
	return c.runEchoExample
}

// RunFileExample reports whether the built-in file example was requested.
func (c *Config) RunFileExample() bool {
	c.assertLive()
	return c.runFileExample
}

// InputFilenames returns the positional filename arguments in the order
// they appeared on the command line. The returned slice is a copy, so a
// caller cannot mutate the Config through it.
func (c *Config) InputFilenames() []string {
	c.assertLive()
	out := make([]string, len(c.inputFilenames))
	copy(out, c.inputFilenames)
	return out
}
