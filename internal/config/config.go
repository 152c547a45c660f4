package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Database DatabaseConfig `toml:"database"`
	Calendar CalendarConfig `toml:"calendar"`
	Retry    RetryConfig    `toml:"retry"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type CalendarConfig struct {
	Enabled bool              `toml:"enabled"`
	Default string            `toml:"default"`
	Sources map[string]string `toml:"sources"` // calendar id -> ICS URL or file path
}

type RetryConfig struct {
	MaxAttempts int `toml:"max_attempts"`
	BaseDelayMs int `toml:"base_delay_ms"`
	MaxDelayMs  int `toml:"max_delay_ms"`
	JitterMaxMs int `toml:"jitter_max_ms"`
}

func DefaultConfig() Config {
	return Config{
		Calendar: CalendarConfig{
			Enabled: false,
			Default: "primary",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			BaseDelayMs: 1000,
			MaxDelayMs:  10000,
			JitterMaxMs: 500,
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".focusday"), nil
}

func ConfigPath() (string, error) {
	if v := os.Getenv("FOCUSDAY_CONFIG"); v != "" {
		return v, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DatabasePath resolves the SQLite database location, falling back to the
// config directory when neither the config file nor FOCUSDAY_DB set one.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "focusday.db"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FOCUSDAY_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("FOCUSDAY_CALENDAR_SOURCE"); v != "" {
		if cfg.Calendar.Sources == nil {
			cfg.Calendar.Sources = make(map[string]string)
		}
		cfg.Calendar.Sources[cfg.Calendar.Default] = v
		cfg.Calendar.Enabled = true
	}
}

func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
