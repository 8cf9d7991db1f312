package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitAtDebugLevel(t *testing.T) {
	Init(Config{Level: DebugLevel})
	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Core().Enabled(zapcore.DebugLevel))

	// Must not panic with the logger initialized.
	Debug("debug message", String("k", "v"), Bool("flag", true))
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, zap.String("k", "v"), String("k", "v"))
	assert.Equal(t, zap.Bool("ranged", true), Bool("ranged", true))
	assert.Equal(t, zap.Int("count", 3), Int("count", 3))
}
