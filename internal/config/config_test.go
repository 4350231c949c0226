package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PSC_WORDLIST", "PSC_LOG_LEVEL", "PSC_LOG_FORMAT", "PSC_WORKERS",
	"PSC_WATCH_WORDLIST", "PSC_RESULTS_DIR", "PSC_METRICS_INTERVAL_MS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that exists, even when empty.
	for _, k := range envKeys {
		os.Unsetenv(k)
	}
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PSC_WORDLIST=/tmp/words.txt\nPSC_WATCH_WORDLIST=true\nPSC_WORKERS=8\nPSC_METRICS_INTERVAL_MS=250\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))
	t.Setenv("PSC_LOG_FORMAT", "json")

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.txt", cfg.Wordlist)
	assert.True(t, cfg.WatchWordlist)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 250*time.Millisecond, cfg.MetricsInterval)
}

func TestLoad_UnparsableValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non-numeric workers", "PSC_WORKERS", "many"},
		{"bad bool", "PSC_WATCH_WORDLIST", "sometimes"},
		{"non-numeric interval", "PSC_METRICS_INTERVAL_MS", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }},
		{"zero interval", func(c *Config) { c.MetricsInterval = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := NewDefaultConfig()
	cfg.LogFormat = "JSON"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DefersValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("PSC_WATCH_WORDLIST", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.Wordlist = "words.txt"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_WatchNeedsWordlist(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.WatchWordlist = true
	assert.Error(t, cfg.Validate())

	cfg.Wordlist = "words.txt"
	assert.NoError(t, cfg.Validate())
}
