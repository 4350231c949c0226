package port

import (
	"passwordStrengthChecker/internal/core/domain"
)

// StrengthAnalyzer is the engine entry point every presentation layer uses.
// Implementations must be safe for concurrent use.
type StrengthAnalyzer interface {
	Analyze(password string) domain.Report
}

type ReportExporter interface {
	Export(report domain.Report, path string, format domain.ExportFormat) error
}

// WordlistSource reads newline-delimited dictionary words.
type WordlistSource interface {
	Load(path string) ([]string, error)
}
