package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"port": 9000,
		"state_file": "/tmp/state.json",
		"failure_rate": 0.25,
		"verbose": true
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/tmp/state.json", cfg.StateFile)
	assert.InDelta(t, 0.25, cfg.FailureRate, 0.001)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())

	cfg.FailureRate = 1.5
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Port = 99999
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.RetryAttempts = -1
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)                          // explicit wins
	assert.Equal(t, "autopilot-state.json", merged.StateFile)   // default fills
	assert.InDelta(t, 0.1, merged.FailureRate, 0.001)           // default fills
	assert.Equal(t, 1, merged.RetryAttempts)
}
