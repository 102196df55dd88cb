package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "delver.log")
	require.NoError(t, Init(path, false))

	Log.Infow("room transition", "room", "1,0")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "room transition")
	assert.Contains(t, string(data), "INFO")
}

func TestDebugFilteredWithoutDebugFlag(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "delver.log")
	require.NoError(t, Init(path, false))

	Log.Debugw("noisy detail")
	Log.Warnw("kept")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "noisy detail")
	assert.Contains(t, string(data), "kept")
}

func TestDefaultLoggerIsNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Log.Infow("silent")
	})
}
