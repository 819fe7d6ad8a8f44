package unit_tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyforest/internal/config"
)

func TestConfig_LoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv(config.EnvDataDir, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvWatch, "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestConfig_SaveLoadAndEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvDataDir, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvWatch, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", config.ConfigFileName)

	cfg := config.DefaultConfig()
	cfg.DataDir = filepath.Join(dir, "data")
	cfg.LogLevel = "debug"
	cfg.Window.Maximised = false
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, filepath.Join(dir, "data", "apps.json"), loaded.ProfilesPath())
	assert.Equal(t, filepath.Join(dir, "data", "shortcuts.json"), loaded.ShortcutsPath())
	assert.Equal(t, filepath.Join(dir, "data", "cache.db"), loaded.CachePath())
	assert.Equal(t, filepath.Join(dir, "data", "backups"), loaded.BackupDir())

	t.Setenv(config.EnvDataDir, filepath.Join(dir, "elsewhere"))
	t.Setenv(config.EnvLogLevel, "WARN")
	t.Setenv(config.EnvWatch, "false")
	loaded, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "elsewhere"), loaded.DataDir)
	assert.Equal(t, "warn", loaded.LogLevel)
	assert.False(t, loaded.Watch)

	require.NoError(t, loaded.EnsureDataDir())
	info, err := os.Stat(loaded.DataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfig_LoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unterminated"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
