package log

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"
)

func TestInitLogger(t *testing.T) {
	defer func(l *zap.Logger) { Logger = l }(Logger)

	require.NoError(t, InitLogger(false))
	assert.False(t, Logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, Logger.Core().Enabled(zap.InfoLevel))

	require.NoError(t, InitLogger(true))
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))
}
