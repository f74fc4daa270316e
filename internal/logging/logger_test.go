package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
	assert.NotNil(t, Logger.logger)
}

func TestInitLogger_WithLogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
}

func TestInitLogger_WithInvalidLogLevel(t *testing.T) {
	// Invalid level falls back to the default config
	os.Setenv("LOG_LEVEL", "invalid")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
}

func TestSafeLogger_Info(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	// Should not panic
	logger.Info("test message")
	logger.Info("test with fields", zap.String("key", "value"))
}

func TestSafeLogger_Warn(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	logger.Warn("test warning")
	logger.Warn("test warning with fields", zap.Int("count", 42))
}

func TestSafeLogger_Debug(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	logger.Debug("test debug")
	logger.Debug("test debug with fields", zap.Bool("flag", true))
}

func TestSafeLogger_Error(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	logger.Error("test error")
	logger.Error("test error with fields", zap.String("error", "something went wrong"))
}

func TestSafeLogger_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	// All methods should be safe to call with nil logger
	logger.Info("test")
	logger.Warn("test")
	logger.Debug("test")
	logger.Error("test")
}

func TestSafeLogger_NilReceiver(t *testing.T) {
	var logger *SafeLogger

	logger.Info("test")
	logger.Warn("test")
	logger.Debug("test")
	logger.Error("test")
	assert.Nil(t, logger.With(zap.String("key", "value")))
}

func TestSafeLogger_With(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	child := logger.With(zap.String("slug", "criadores"))
	require.NotNil(t, child)
	child.Info("test")
}
