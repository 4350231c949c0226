package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"passwordStrengthChecker/internal/core/domain"
)

type Exporter struct {
	perm os.FileMode
}

func NewExporter() *Exporter {
	return &Exporter{perm: 0o644}
}

// Export renders the report fully in memory before writing, so an invalid
// format or encoding failure leaves no file behind.
func (e *Exporter) Export(report domain.Report, path string, format domain.ExportFormat) error {
	parsed, err := domain.ParseExportFormat(string(format))
	if err != nil {
		return fmt.Errorf("unsupported format %q: %w", format, err)
	}

	data, err := Render(report, parsed)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, e.perm); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIOFailure, err)
	}
	return nil
}

// Render produces the file contents for an already validated format.
func Render(report domain.Report, format domain.ExportFormat) ([]byte, error) {
	switch format {
	case domain.FormatJSON:
		return MarshalJSON(report)
	case domain.FormatText:
		return []byte(FormatText(report)), nil
	default:
		return nil, domain.ErrInvalidFormat
	}
}

// MarshalJSON indents by two spaces and keeps non-ASCII text unescaped.
func MarshalJSON(report domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return buf.Bytes(), nil
}
