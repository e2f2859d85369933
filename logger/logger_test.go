package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Log = zap.NewNop() })

	require.NoError(t, Init(false))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	require.NoError(t, Init(true))
	assert.False(t, Log.Core().Enabled(zap.DebugLevel))
	assert.True(t, Log.Core().Enabled(zap.InfoLevel))
}
