package desktop

import "time"

type Config struct {
	MaxThreads      int
	MetricsInterval time.Duration
	ResultsPath     string
	// FilePrefix names exported reports: <prefix>_<timestamp>.<format>.
	FilePrefix string
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxThreads:      4,
		MetricsInterval: time.Second,
		ResultsPath:     "./results",
		FilePrefix:      "password_report",
	}
}
