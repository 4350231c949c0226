package terminal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"passwordStrengthChecker/internal/core/domain"
)

const width = 70

const banner = `
    ╔═══════════════════════════════════════════════════════════╗
    ║     PASSWORD STRENGTH CHECKER - CLI VERSION               ║
    ║     Comprehensive Security Analysis Tool                  ║
    ╚═══════════════════════════════════════════════════════════╝
`

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// RenderReport writes the human-readable report. It only ever sees the
// masked report, never the password.
func RenderReport(w io.Writer, r domain.Report) {
	heavy := strings.Repeat("=", width)
	light := strings.Repeat("-", width)
	section := func(title string) {
		fmt.Fprintf(w, "\n%s\n%s\n", title, light)
	}

	fmt.Fprintf(w, "\n%s\nPASSWORD STRENGTH ANALYSIS REPORT\n%s\n", heavy, heavy)

	section("BASIC INFORMATION")
	fmt.Fprintf(w, "Password Length:     %d characters\n", r.Length)
	fmt.Fprintf(w, "Entropy:             %.2f bits\n", r.EntropyBits)
	fmt.Fprintf(w, "Strength Score:      %.2f/100\n", r.Score)
	fmt.Fprintf(w, "Category:            %s\n", r.Category)

	ct := r.CrackingTime
	section("CRACKING TIME ESTIMATES")
	fmt.Fprintf(w, "Online Brute-Force:  %s\n", orNA(ct.OnlineBruteForce))
	fmt.Fprintf(w, "Offline CPU Attack:  %s\n", orNA(ct.OfflineCPU))
	fmt.Fprintf(w, "Offline GPU Attack:  %s\n", orNA(ct.OfflineGPU))
	fmt.Fprintf(w, "Cloud Cracking:      %s\n", orNA(ct.Cloud))
	fmt.Fprintf(w, "Possible Combinations: %s\n", orNA(ct.Combinations))

	ca := r.Composition
	section("CHARACTER ANALYSIS")
	fmt.Fprintf(w, "Lowercase letters:   %d (%s)\n", ca.LowerCount, mark(ca.HasLower))
	fmt.Fprintf(w, "Uppercase letters:   %d (%s)\n", ca.UpperCount, mark(ca.HasUpper))
	fmt.Fprintf(w, "Digits:              %d (%s)\n", ca.DigitCount, mark(ca.HasDigit))
	fmt.Fprintf(w, "Special symbols:     %d (%s)\n", ca.SymbolCount, mark(ca.HasSymbol))
	fmt.Fprintf(w, "Unicode characters:  %d (%s)\n", ca.UnicodeCount, mark(ca.HasUnicode))
	fmt.Fprintf(w, "Character Set Size:  %d\n", ca.AlphabetSize)
	fmt.Fprintf(w, "Diversity Score:     %d/100\n", ca.DiversityScore)

	section("PATTERNS DETECTED")
	groups := r.Patterns.Groups()
	for _, g := range groups {
		fmt.Fprintf(w, "⚠️  %s: %s\n", g.Title, strings.Join(g.Matches, ", "))
	}
	if len(groups) == 0 {
		fmt.Fprintln(w, "✓ No weak patterns detected")
	}

	d := r.Dictionary
	section("DICTIONARY CHECK")
	if d.IsCommonPassword {
		fmt.Fprintln(w, "⚠️  WARNING: This is a common password!")
	}
	if d.ContainsDictionaryWord {
		fmt.Fprintf(w, "⚠️  Dictionary words found: %s\n", strings.Join(d.WordsFound, ", "))
	}
	if d.ContainsReversedWord {
		fmt.Fprintln(w, "⚠️  Reversed dictionary word detected")
	}
	if d.ContainsSubstitutedWord {
		fmt.Fprintln(w, "⚠️  Character substitution detected (e.g., @ for a)")
	}
	if !d.Flagged() {
		fmt.Fprintln(w, "✓ No dictionary words detected")
	}

	section("RECOMMENDATIONS")
	for i, rec := range r.Recommendations {
		fmt.Fprintf(w, "%d. %s\n", i+1, rec)
	}
	if len(r.Recommendations) == 0 {
		fmt.Fprintln(w, "No specific recommendations. Password appears strong!")
	}

	fmt.Fprintf(w, "\n%s\nAnalysis completed at: %s\n%s\n\n", heavy, r.Timestamp.Format(time.RFC3339), heavy)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
