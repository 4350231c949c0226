package desktop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/core/service"
	"passwordStrengthChecker/internal/port"
)

// Progress bar colours per strength band.
const (
	ColorRed        = "#e74c3c"
	ColorOrange     = "#f39c12"
	ColorYellow     = "#f1c40f"
	ColorLightGreen = "#2ecc71"
	ColorGreen      = "#27ae60"
)

type DesktopLib struct {
	analyzer port.StrengthAnalyzer
	exporter port.ReportExporter
	config   *Config
	now      func() time.Time
}

// LiveScore is what a GUI needs to redraw on every keystroke.
type LiveScore struct {
	Score    float64              `json:"score"`
	Category domain.StrengthLevel `json:"category"`
	Color    string               `json:"color"`
}

func NewDesktopLib(analyzer port.StrengthAnalyzer, exporter port.ReportExporter, cfg *Config) *DesktopLib {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	return &DesktopLib{
		analyzer: analyzer,
		exporter: exporter,
		config:   cfg,
		now:      time.Now,
	}
}

func (d *DesktopLib) Analyze(password string) domain.Report {
	return d.analyzer.Analyze(password)
}

func (d *DesktopLib) LiveScore(password string) LiveScore {
	report := d.analyzer.Analyze(password)
	return LiveScore{
		Score:    report.Score,
		Category: report.Category,
		Color:    ScoreColor(report.Score),
	}
}

// AnalyzeMany runs a batch on the configured number of threads.
func (d *DesktopLib) AnalyzeMany(ctx context.Context, passwords []string) ([]domain.Report, domain.BatchSummary, error) {
	return service.AnalyzeBatch(ctx, d.analyzer, passwords, d.config.MaxThreads,
		service.WithMetricsInterval(d.config.MetricsInterval))
}

// Export writes the report into the results directory under a timestamped
// name and returns the path written.
func (d *DesktopLib) Export(report domain.Report, format string) (string, error) {
	f, err := domain.ParseExportFormat(format)
	if err != nil {
		return "", fmt.Errorf("unsupported format %q: %w", format, err)
	}
	if err := os.MkdirAll(d.config.ResultsPath, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrIOFailure, err)
	}

	name := fmt.Sprintf("%s_%s.%s", d.config.FilePrefix, d.now().Format("20060102_150405"), f)
	path := filepath.Join(d.config.ResultsPath, name)
	if err := d.exporter.Export(report, path, f); err != nil {
		return "", err
	}
	return path, nil
}

func ScoreColor(score float64) string {
	switch {
	case score < 30:
		return ColorRed
	case score < 50:
		return ColorOrange
	case score < 70:
		return ColorYellow
	case score < 90:
		return ColorLightGreen
	default:
		return ColorGreen
	}
}
