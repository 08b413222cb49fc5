package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEngineConfig_IsValid(t *testing.T) {
	cfg := DefaultEngineConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.IncrementalMinNodes)
	assert.InDelta(t, 0.2, cfg.IncrementalChangeRatio, 1e-9)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEngineConfig_ThresholdsRoundTrip(t *testing.T) {
	cfg := DefaultEngineConfig()
	th := cfg.Thresholds()
	assert.Equal(t, cfg.IncrementalMinNodes, th.MinNodes)
	assert.Equal(t, cfg.IncrementalChangeRatio, th.ChangeRatio)
}

func TestEngineConfig_Validate_RejectsZeroMinNodes(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.IncrementalMinNodes = 0
	assert.Error(t, cfg.Validate())
}

func TestEngineConfig_Validate_RejectsRatioOutOfRange(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.IncrementalChangeRatio = 1.5
	assert.Error(t, cfg.Validate())

	cfg.IncrementalChangeRatio = 0
	assert.Error(t, cfg.Validate())
}

func TestEngineConfig_Validate_RejectsUnknownLogLevel(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestLoad_ReadsYAMLAndFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("incrementalMinNodes: 50\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.IncrementalMinNodes)
	assert.InDelta(t, 0.2, cfg.IncrementalChangeRatio, 1e-9)
}

func TestLoad_RejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("incrementalMinNodes: -5\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
