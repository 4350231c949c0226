package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordStrengthChecker/internal/core/domain"
)

func TestLoadConfig_FlagSuppliesWatchedWordlist(t *testing.T) {
	t.Setenv("PSC_WATCH_WORDLIST", "true")
	t.Setenv("PSC_WORDLIST", "")

	missingEnv := filepath.Join(t.TempDir(), ".env")
	_, err := loadConfig(options{envFile: missingEnv})
	assert.Error(t, err)

	cfg, err := loadConfig(options{envFile: missingEnv, wordlist: "words.txt"})
	require.NoError(t, err)
	assert.Equal(t, "words.txt", cfg.Wordlist)
	assert.True(t, cfg.WatchWordlist)
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PSC_WORKERS", "2")
	t.Setenv("PSC_LOG_FORMAT", "text")
	t.Setenv("PSC_RESULTS_DIR", "/var/reports")
	t.Setenv("PSC_METRICS_INTERVAL_MS", "200")

	cfg, err := loadConfig(options{envFile: filepath.Join(t.TempDir(), ".env"), workers: 6, logFormat: "JSON"})
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, "JSON", cfg.LogFormat)

	dc := desktopConfig(cfg)
	assert.Equal(t, 6, dc.MaxThreads)
	assert.Equal(t, "/var/reports", dc.ResultsPath)
	assert.Equal(t, 200*time.Millisecond, dc.MetricsInterval)
}

func TestBatchLogAttrs(t *testing.T) {
	summary := domain.BatchSummary{
		RunID:      "run",
		Total:      3,
		ByCategory: map[domain.StrengthLevel]int{domain.StrengthWeak: 2, domain.StrengthStrong: 1},
	}

	attrs := batchLogAttrs(summary)
	require.Len(t, attrs, 10+2*len(domain.StrengthLevels))

	tail := attrs[10:]
	for i, level := range domain.StrengthLevels {
		assert.Equal(t, string(level), tail[2*i])
		assert.Equal(t, summary.ByCategory[level], tail[2*i+1])
	}
}
