package domain

import "strings"

type StrengthLevel string
type ExportFormat string

const (
	// Password Strength Levels
	StrengthVeryWeak   StrengthLevel = "Very Weak"
	StrengthWeak       StrengthLevel = "Weak"
	StrengthMedium     StrengthLevel = "Medium"
	StrengthStrong     StrengthLevel = "Strong"
	StrengthVeryStrong StrengthLevel = "Very Strong"

	// Export formats
	FormatJSON ExportFormat = "json"
	FormatText ExportFormat = "txt"
)

// StrengthLevels lists every category from weakest to strongest.
var StrengthLevels = []StrengthLevel{
	StrengthVeryWeak,
	StrengthWeak,
	StrengthMedium,
	StrengthStrong,
	StrengthVeryStrong,
}

// Common degenerate pattern labels.
const (
	PatternAllSame    = "All same character"
	PatternAllDigits  = "All digits"
	PatternAllLetters = "All letters"
)

// ReversedTag marks dictionary matches found on the reversed password.
const ReversedTag = " (reversed)"

// ParseExportFormat accepts "json" or "txt" in any case.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", ErrInvalidFormat
	}
}

type AnalysisError string

const (
	ErrInvalidFormat         AnalysisError = "INVALID_FORMAT"
	ErrDictionaryUnavailable AnalysisError = "DICTIONARY_UNAVAILABLE"
	ErrIOFailure             AnalysisError = "IO_FAILURE"
)

func (e AnalysisError) Error() string {
	return string(e)
}
