// Package model defines the domain types shared across the simlaunch
// startup core.
//
// This package contains pure data types with no I/O: the ordered log
// Severity enumeration with its resolver, and the exit codes (ExitCode)
// plus the error type (CLIError) that carries them from the configuration
// layer to the process exit handler.
package model
