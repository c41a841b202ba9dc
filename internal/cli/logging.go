package cli

import (
	"go.uber.org/zap"

	"github.com/mmr-tortoise/simlaunch/internal/model"
)

// newLogger builds the process logger at the resolved severity. Console
// output goes to stderr, keeping stdout free for command output.
func newLogger(sev model.Severity) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(sev.ZapLevel())
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		// Build only fails on unusable sink paths; stderr is always
		// usable, but a logger failure must not take down startup.
		return zap.NewNop()
	}
	return logger
}
