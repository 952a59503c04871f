package logs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("anything else"))
}

func TestNewWithLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log, closer, err := New(slog.LevelInfo, path)
	require.NoError(t, err)

	log.Info("capture decoded", "bytes", 404)
	log.Debug("suppressed below the configured level")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "capture decoded")
	assert.Contains(t, string(data), "bytes=404")
	assert.NotContains(t, string(data), "suppressed")
}

func TestNewBadLogFile(t *testing.T) {
	_, _, err := New(slog.LevelInfo, filepath.Join(t.TempDir(), "missing", "dir", "run.log"))
	assert.Error(t, err)
}
