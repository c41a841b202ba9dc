// Package main is the entry point for the simlaunch binary.
//
// All functionality lives in the internal/cli package; this file only
// injects build-time identification and runs the root command.
package main

import (
	"github.com/mmr-tortoise/simlaunch/internal/cli"
)

// version, commit, and date are set at build time via ldflags. During
// development they default to "dev", "none", and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This keeps
	// main.go decoupled from the CLI framework and minimal.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
