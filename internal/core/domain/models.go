package domain

import "time"

type CompositionFindings struct {
	HasLower       bool `json:"has_lower"`
	HasUpper       bool `json:"has_upper"`
	HasDigit       bool `json:"has_digit"`
	HasSymbol      bool `json:"has_symbol"`
	HasUnicode     bool `json:"has_unicode"`
	LowerCount     int  `json:"lower_count"`
	UpperCount     int  `json:"upper_count"`
	DigitCount     int  `json:"digit_count"`
	SymbolCount    int  `json:"symbol_count"`
	UnicodeCount   int  `json:"unicode_count"`
	AlphabetSize   int  `json:"alphabet_size"`
	DiversityScore int  `json:"diversity_score"`
}

// ClassCount returns how many of the five character classes are present.
func (c CompositionFindings) ClassCount() int {
	n := 0
	for _, present := range []bool{c.HasLower, c.HasUpper, c.HasDigit, c.HasSymbol, c.HasUnicode} {
		if present {
			n++
		}
	}
	return n
}

type PatternFindings struct {
	SequentialDigits  []string `json:"sequential_digits"`
	SequentialLetters []string `json:"sequential_letters"`
	RepetitiveChars   []string `json:"repetitive_chars"`
	KeyboardPatterns  []string `json:"keyboard_patterns"`
	CommonPatterns    []string `json:"common_patterns"`
	DatePatterns      []string `json:"date_patterns"`
}

// PatternGroup is one named, non-empty category of PatternFindings.
type PatternGroup struct {
	Title   string
	Matches []string
}

// Groups returns the non-empty categories in display order.
func (p PatternFindings) Groups() []PatternGroup {
	all := []PatternGroup{
		{"Sequential Digits", p.SequentialDigits},
		{"Sequential Letters", p.SequentialLetters},
		{"Repetitive Chars", p.RepetitiveChars},
		{"Keyboard Patterns", p.KeyboardPatterns},
		{"Common Patterns", p.CommonPatterns},
		{"Date Patterns", p.DatePatterns},
	}
	groups := make([]PatternGroup, 0, len(all))
	for _, g := range all {
		if len(g.Matches) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

type DictionaryFindings struct {
	IsCommonPassword        bool     `json:"is_common_password"`
	ContainsDictionaryWord  bool     `json:"contains_dictionary_word"`
	ContainsReversedWord    bool     `json:"contains_reversed_word"`
	ContainsSubstitutedWord bool     `json:"contains_substituted_word"`
	WordsFound              []string `json:"dictionary_words_found"`
	SubstitutionsDetected   []string `json:"substitutions_detected"`
}

// Flagged reports whether any dictionary condition holds.
func (d DictionaryFindings) Flagged() bool {
	return d.IsCommonPassword || d.ContainsDictionaryWord || d.ContainsReversedWord || d.ContainsSubstitutedWord
}

type CrackingTimeEstimate struct {
	OnlineBruteForce string `json:"online_brute_force"`
	OfflineCPU       string `json:"offline_cpu"`
	OfflineGPU       string `json:"offline_gpu"`
	Cloud            string `json:"cloud"`
	// Combinations is 2^entropy in scientific notation; it overflows float64 for long passwords.
	Combinations string `json:"combinations"`
}

type ScoreBreakdown struct {
	Length     float64 `json:"length"`
	Entropy    float64 `json:"entropy"`
	Diversity  float64 `json:"diversity"`
	Dictionary float64 `json:"dictionary"`
	Pattern    float64 `json:"pattern"`
}

// Total is the unclamped sum of the sub-scores.
func (s ScoreBreakdown) Total() float64 {
	return s.Length + s.Entropy + s.Diversity + s.Dictionary + s.Pattern
}

// Report is the result of one analysis. It carries a masked placeholder,
// never the password itself.
type Report struct {
	Password        string               `json:"password"`
	Length          int                  `json:"length"`
	EntropyBits     float64              `json:"entropy_bits"`
	Score           float64              `json:"score"`
	Category        StrengthLevel        `json:"category"`
	ScoreBreakdown  ScoreBreakdown       `json:"score_breakdown"`
	CrackingTime    CrackingTimeEstimate `json:"cracking_time"`
	Composition     CompositionFindings  `json:"character_analysis"`
	Patterns        PatternFindings      `json:"patterns_detected"`
	Dictionary      DictionaryFindings   `json:"dictionary_check"`
	Recommendations []string             `json:"recommendations"`
	Timestamp       time.Time            `json:"timestamp"`
}

type ResourceMetrics struct {
	CPUUsage       float64   `json:"cpuUsage"`
	MemoryUsageMB  int64     `json:"memoryUsageMb"`
	SystemMemoryMB int64     `json:"systemMemoryMb"`
	AnalysesPerSec int64     `json:"analysesPerSec"`
	TotalAnalyses  int64     `json:"totalAnalyses"`
	ActiveWorkers  int       `json:"activeWorkers"`
	LastUpdated    time.Time `json:"lastUpdated"`

	// SampleInterval is how often CPU and memory were sampled.
	SampleInterval time.Duration `json:"sampleInterval"`
}

type BatchSummary struct {
	RunID        string                `json:"runId"`
	Total        int                   `json:"total"`
	Failed       int                   `json:"failed"`
	Duration     time.Duration         `json:"duration"`
	ByCategory   map[StrengthLevel]int `json:"byCategory"`
	AverageScore float64               `json:"averageScore"`
	Resources    ResourceMetrics       `json:"resources"`
}
