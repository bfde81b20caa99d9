package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, []string{"csv"}, cfg.Output.Formats)
	assert.True(t, cfg.Output.ExcelBOM)
}

func TestLoad(t *testing.T) {
	t.Run("defaults when no file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Nil(t, cfg)

		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		defer func() { _ = os.Chdir(wd) }()

		cfg, err = Load("")
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
logging:
  level: debug
output:
  dir: results
  formats: [csv, json]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "results", cfg.Output.Dir)
		assert.Equal(t, []string{"csv", "json"}, cfg.Output.Formats)
		// Untouched fields keep their defaults.
		assert.Equal(t, "stdout", cfg.Logging.Output)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))
		t.Setenv("COMPARE_LOGGING_LEVEL", "warn")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid format rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  formats: [parquet]\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})
}
