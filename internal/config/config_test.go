package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10, cfg.Cluster.MinPulse)
	assert.Equal(t, 250, cfg.Cluster.MaxPulse)
	assert.Equal(t, 50, cfg.Scan.LineWeight)
	assert.Equal(t, 0x0200, cfg.Header.MinStart)
	assert.Equal(t, 2, cfg.Strings.MinLength)
	assert.Equal(t, 200, cfg.ChecksumSample)
}

func TestLoadEmptyPathIsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesSubset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	doc := []byte("cluster:\n  max_pulse: 300\nscan:\n  min_lines: 5\nstrings:\n  location_prefixes: [\"YOU STAND \"]\n")
	require.NoError(t, os.WriteFile(path, doc, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Cluster.MaxPulse)
	assert.Equal(t, 10, cfg.Cluster.MinPulse, "unset keys keep their defaults")
	assert.Equal(t, 5, cfg.Scan.MinLines)
	assert.Equal(t, 50, cfg.Scan.LineWeight)
	assert.Equal(t, []string{"YOU STAND "}, cfg.Strings.LocationPrefixes)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cluster: ["), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}
