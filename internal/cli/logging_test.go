package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mmr-tortoise/simlaunch/internal/model"
)

// TestNewLogger_Level verifies that the logger honors the resolved
// severity: debug severity enables debug output, warning does not.
func TestNewLogger_Level(t *testing.T) {
	debugLogger := newLogger(model.SeverityDebug)
	require.NotNil(t, debugLogger)
	assert.True(t, debugLogger.Core().Enabled(zapcore.DebugLevel))

	warnLogger := newLogger(model.SeverityWarning)
	require.NotNil(t, warnLogger)
	assert.False(t, warnLogger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, warnLogger.Core().Enabled(zapcore.WarnLevel))
}
