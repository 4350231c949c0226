package export

import (
	"fmt"
	"strings"
	"time"

	"passwordStrengthChecker/internal/core/domain"
)

const ruleWidth = 60

func FormatText(report domain.Report) string {
	rule := strings.Repeat("=", ruleWidth)
	ct := report.CrackingTime
	ca := report.Composition

	lines := []string{
		rule,
		"PASSWORD STRENGTH ANALYSIS REPORT",
		rule,
		"",
		fmt.Sprintf("Analysis Date: %s", report.Timestamp.Format(time.RFC3339)),
		fmt.Sprintf("Password Length: %d characters", report.Length),
		fmt.Sprintf("Entropy: %.2f bits", report.EntropyBits),
		fmt.Sprintf("Strength Score: %.2f/100", report.Score),
		fmt.Sprintf("Category: %s", report.Category),
		"",
		"CRACKING TIME ESTIMATES:",
		fmt.Sprintf("  Online Brute-Force: %s", orNA(ct.OnlineBruteForce)),
		fmt.Sprintf("  Offline CPU: %s", orNA(ct.OfflineCPU)),
		fmt.Sprintf("  Offline GPU: %s", orNA(ct.OfflineGPU)),
		fmt.Sprintf("  Cloud Cracking: %s", orNA(ct.Cloud)),
		"",
		"CHARACTER ANALYSIS:",
		fmt.Sprintf("  Lowercase: %t (%d chars)", ca.HasLower, ca.LowerCount),
		fmt.Sprintf("  Uppercase: %t (%d chars)", ca.HasUpper, ca.UpperCount),
		fmt.Sprintf("  Digits: %t (%d chars)", ca.HasDigit, ca.DigitCount),
		fmt.Sprintf("  Symbols: %t (%d chars)", ca.HasSymbol, ca.SymbolCount),
		fmt.Sprintf("  Unicode: %t (%d chars)", ca.HasUnicode, ca.UnicodeCount),
		fmt.Sprintf("  Character Set Size: %d", ca.AlphabetSize),
		"",
		"PATTERNS DETECTED:",
	}

	groups := report.Patterns.Groups()
	if len(groups) == 0 {
		lines = append(lines, "  No weak patterns detected")
	}
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("  %s: %s", g.Title, strings.Join(g.Matches, ", ")))
	}

	lines = append(lines, "", "DICTIONARY CHECK:")
	lines = append(lines, dictionaryLines(report.Dictionary)...)

	lines = append(lines, "", "RECOMMENDATIONS:")
	for _, rec := range report.Recommendations {
		lines = append(lines, "  • "+rec)
	}

	lines = append(lines, "", rule)
	return strings.Join(lines, "\n")
}

func dictionaryLines(d domain.DictionaryFindings) []string {
	var lines []string
	if d.IsCommonPassword {
		lines = append(lines, "  ⚠️  Common password detected!")
	}
	if d.ContainsDictionaryWord {
		lines = append(lines, "  ⚠️  Dictionary words found: "+strings.Join(d.WordsFound, ", "))
	}
	if d.ContainsReversedWord {
		lines = append(lines, "  ⚠️  Reversed dictionary word detected")
	}
	if d.ContainsSubstitutedWord {
		lines = append(lines, "  ⚠️  Character substitution detected")
	}
	if !d.Flagged() {
		lines = append(lines, "  ✓ No dictionary words detected")
	}
	return lines
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
