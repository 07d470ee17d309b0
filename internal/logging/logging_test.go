package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfig(t *testing.T) {
	quiet := Config(false)
	assert.Equal(t, zapcore.WarnLevel, quiet.Level.Level())
	assert.Equal(t, "console", quiet.Encoding)
	assert.Equal(t, []string{"stderr"}, quiet.OutputPaths)

	verbose := Config(true)
	assert.Equal(t, zapcore.DebugLevel, verbose.Level.Level())
}

func TestNew(t *testing.T) {
	logger, err := New(true)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
