package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"keyforest/internal/utils"
)

// File names inside the data directory.
const (
	ConfigFileName    = "config.yaml"
	ProfilesFileName  = "apps.json"
	ShortcutsFileName = "shortcuts.json"
	CacheFileName     = "cache.db"
	BackupDirName     = "backups"
)

// Environment overrides.
const (
	EnvConfigPath = "KEYFOREST_CONFIG"
	EnvDataDir    = "KEYFOREST_DATA_DIR"
	EnvLogLevel   = "KEYFOREST_LOG_LEVEL"
	EnvWatch      = "KEYFOREST_WATCH"
)

// Config holds the runtime configuration of KeyForest.
type Config struct {
	DataDir  string       `yaml:"data_dir"`
	LogLevel string       `yaml:"log_level"` // debug, info, warn, error
	Watch    bool         `yaml:"watch"`
	Window   WindowConfig `yaml:"window"`
}

// WindowConfig sizes the main window.
type WindowConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	Maximised bool `yaml:"maximised"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir(),
		LogLevel: "info",
		Watch:    true,
		Window: WindowConfig{
			Width:     1600,
			Height:    1000,
			Maximised: true,
		},
	}
}

// Resolve loads .env (if any), then the YAML file named by KEYFOREST_CONFIG or
// config.yaml in the default data directory.
func Resolve() (*Config, error) {
	// .env is optional
	_ = utils.LoadEnv()

	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = filepath.Join(DefaultDataDir(), ConfigFileName)
	}
	return Load(path)
}

// Load reads configuration from a YAML file. A missing file yields defaults.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = DefaultDataDir()
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.DataDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = strings.ToLower(level)
	}
	if watch := os.Getenv(EnvWatch); watch != "" {
		if v, err := strconv.ParseBool(watch); err == nil {
			c.Watch = v
		}
	}
}

// EnsureDataDir creates the data directory if needed.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

func (c *Config) ProfilesPath() string {
	return filepath.Join(c.DataDir, ProfilesFileName)
}

func (c *Config) ShortcutsPath() string {
	return filepath.Join(c.DataDir, ShortcutsFileName)
}

func (c *Config) CachePath() string {
	return filepath.Join(c.DataDir, CacheFileName)
}

func (c *Config) BackupDir() string {
	return filepath.Join(c.DataDir, BackupDirName)
}
