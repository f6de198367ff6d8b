package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Backend.LocalEndpoint)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Backend.CloudEndpoint)
	assert.Equal(t, "GROQ_API_KEY", cfg.Backend.SecretKey)
	assert.InDelta(t, 0.7, cfg.Backend.Temperature, 1e-9)
	assert.Equal(t, "reports", cfg.Report.Dir)
	assert.Equal(t, "reports/history.db", cfg.Report.HistoryPath)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("log:\n  level: debug\nbackend:\n  temperature: 0.2\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.InDelta(t, 0.2, cfg.Backend.Temperature, 1e-9)
	// Untouched keys keep their defaults.
	assert.Equal(t, "GROQ_API_KEY", cfg.Backend.SecretKey)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("backend:\n  secret_key: FILE_KEY\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("RESEARCHCREW_BACKEND_SECRET_KEY", "ENV_KEY")
	t.Setenv("RESEARCHCREW_LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ENV_KEY", cfg.Backend.SecretKey)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
