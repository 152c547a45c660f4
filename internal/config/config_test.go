package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_RetryDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Second, time.Duration(cfg.Retry.BaseDelayMs)*time.Millisecond)
	assert.Equal(t, 10*time.Second, time.Duration(cfg.Retry.MaxDelayMs)*time.Millisecond)
	assert.Equal(t, 500*time.Millisecond, time.Duration(cfg.Retry.JitterMaxMs)*time.Millisecond)
	assert.False(t, cfg.Calendar.Enabled)
	assert.Equal(t, "primary", cfg.Calendar.Default)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("FOCUSDAY_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Retry, cfg.Retry)
}

func TestLoad_ParsesFileAndKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[database]
path = "/tmp/focusday-test.db"

[calendar]
enabled = true
default = "work"

[calendar.sources]
work = "https://example.com/work.ics"

[retry]
max_attempts = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("FOCUSDAY_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/focusday-test.db", cfg.Database.Path)
	assert.True(t, cfg.Calendar.Enabled)
	assert.Equal(t, "work", cfg.Calendar.Default)
	assert.Equal(t, "https://example.com/work.ics", cfg.Calendar.Sources["work"])
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 1000, cfg.Retry.BaseDelayMs, "unset retry fields keep defaults")
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("retry = {"), 0644))
	t.Setenv("FOCUSDAY_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOCUSDAY_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("FOCUSDAY_DB", "/tmp/override.db")
	t.Setenv("FOCUSDAY_CALENDAR_SOURCE", "/tmp/cal.ics")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
	assert.True(t, cfg.Calendar.Enabled)
	assert.Equal(t, "/tmp/cal.ics", cfg.Calendar.Sources["primary"])

	path, err := cfg.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", path)
}
