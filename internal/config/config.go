package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Wordlist        string
	WatchWordlist   bool
	LogLevel        string
	LogFormat       string
	Workers         int
	ResultsDir      string
	MetricsInterval time.Duration
}

func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Workers:         4,
		ResultsDir:      "./results",
		MetricsInterval: time.Second,
	}
}

// Load reads envFile when it exists, then overlays PSC_* variables on the
// defaults. Variables already set in the environment win over the file.
// Load only rejects values it cannot parse; call Validate once any
// command-line overrides have been applied.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cfg := NewDefaultConfig()
	cfg.Wordlist = envString("PSC_WORDLIST", cfg.Wordlist)
	cfg.LogLevel = envString("PSC_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envString("PSC_LOG_FORMAT", cfg.LogFormat)
	cfg.ResultsDir = envString("PSC_RESULTS_DIR", cfg.ResultsDir)

	var err error
	if cfg.Workers, err = envInt("PSC_WORKERS", cfg.Workers); err != nil {
		return nil, err
	}
	if cfg.WatchWordlist, err = envBool("PSC_WATCH_WORDLIST", cfg.WatchWordlist); err != nil {
		return nil, err
	}
	ms, err := envInt("PSC_METRICS_INTERVAL_MS", int(cfg.MetricsInterval/time.Millisecond))
	if err != nil {
		return nil, err
	}
	cfg.MetricsInterval = time.Duration(ms) * time.Millisecond

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.MetricsInterval <= 0 {
		return fmt.Errorf("metrics interval must be positive, got %s", c.MetricsInterval)
	}
	if c.WatchWordlist && c.Wordlist == "" {
		return fmt.Errorf("watching requires a wordlist path")
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
