package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLIError_Error verifies the message formatting with and without an
// underlying error.
func TestCLIError_Error(t *testing.T) {
	plain := NewCLIError(ExitUsageError, "invalid value for --workers")
	assert.Equal(t, "invalid value for --workers", plain.Error())

	wrapped := WrapCLIError(ExitGeneralError, "startup failed", fmt.Errorf("boom"))
	assert.Equal(t, "startup failed: boom", wrapped.Error())
}

// TestCLIError_Unwrap checks errors.Is/errors.As interoperability so
// callers can inspect the cause chain.
func TestCLIError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	var err error = WrapCLIError(ExitUsageError, "bad invocation", cause)

	assert.True(t, errors.Is(err, cause))

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, ExitUsageError, cliErr.Code)
}
