package mobile

import (
	"fmt"

	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/port"
)

// MobileBinding exposes string-in, string-out calls for iOS/Android
// bindings, which cannot pass Go structs.
type MobileBinding struct {
	analyzer port.StrengthAnalyzer
	exporter port.ReportExporter
}

func NewMobileBinding(analyzer port.StrengthAnalyzer, exporter port.ReportExporter) *MobileBinding {
	return &MobileBinding{analyzer: analyzer, exporter: exporter}
}

func (m *MobileBinding) Analyze(password string) string {
	return respond(m.analyzer.Analyze(password), nil)
}

// Export takes a report previously returned by Analyze, either bare or still
// wrapped in its envelope.
func (m *MobileBinding) Export(reportJSON, path, format string) string {
	report, err := decodeReport(reportJSON)
	if err != nil {
		return respond(nil, err)
	}
	f, err := domain.ParseExportFormat(format)
	if err != nil {
		return respond(nil, fmt.Errorf("unsupported format %q: %w", format, err))
	}
	if err := m.exporter.Export(report, path, f); err != nil {
		return respond(nil, err)
	}
	return respond(map[string]string{"path": path, "format": string(f)}, nil)
}
