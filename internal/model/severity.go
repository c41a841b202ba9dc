package model

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Severity is the internal, ordered representation of log verbosity.
// Lower values are more severe and less verbose:
//
//	error < critical < warning < message < info < debug
//
// A logger configured at a given severity emits that level and everything
// more severe. The ordering is part of the contract: callers compare
// severities with < and > directly.
type Severity int

const (
	// SeverityError reports only unrecoverable failures.
	SeverityError Severity = iota

	// SeverityCritical adds serious but survivable faults.
	SeverityCritical

	// SeverityWarning adds conditions that deserve operator attention.
	SeverityWarning

	// SeverityMessage adds normal operational milestones. This is the
	// default verbosity when no log level is configured.
	SeverityMessage

	// SeverityInfo adds detailed progress information.
	SeverityInfo

	// SeverityDebug is the most verbose level, intended for development.
	SeverityDebug
)

// DefaultSeverity is the severity used when the user supplied no log level
// or an unrecognized one. Misconfigured logging degrades to this default
// rather than preventing startup.
const DefaultSeverity = SeverityMessage

// String returns the canonical lower-case name of the severity.
// Unknown values stringify as "unknown".
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "warning"
	case SeverityMessage:
		return "message"
	case SeverityInfo:
		return "info"
	case SeverityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ZapLevel translates the severity into the nearest zap logging level.
// zap has no distinct critical or message level, so critical collapses
// onto error and message onto info.
func (s Severity) ZapLevel() zapcore.Level {
	switch s {
	case SeverityError, SeverityCritical:
		return zapcore.ErrorLevel
	case SeverityWarning:
		return zapcore.WarnLevel
	case SeverityDebug:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseSeverity resolves a user-supplied level name to a Severity.
// Matching is case-insensitive and surrounding whitespace is ignored;
// "warn" is accepted as a shorthand for "warning".
//
// ParseSeverity never fails: anything it does not recognize, including
// the empty string, resolves to DefaultSeverity.
func ParseSeverity(tag string) Severity {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "error":
		return SeverityError
	case "critical":
		return SeverityCritical
	case "warning", "warn":
		return SeverityWarning
	case "message":
		return SeverityMessage
	case "info":
		return SeverityInfo
	case "debug":
		return SeverityDebug
	default:
		return DefaultSeverity
	}
}
