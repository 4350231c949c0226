package demo

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/pkg/metrics"
	"passwordStrengthChecker/internal/port"
	"passwordStrengthChecker/internal/utils/random"
)

type Case struct {
	Name        string
	Password    string
	Description string
}

// Cases is the fixed battery, ordered from weakest to strongest intent.
var Cases = []Case{
	{"Very Weak - Common Password", "password123", "Common password with simple numeric suffix"},
	{"Weak - Dictionary Word", "welcome2024", "Dictionary word with year"},
	{"Medium - Substituted Word", "P@ssw0rd!", "Common password with character substitutions"},
	{"Medium-Strong - Mixed Case", "MySecurePass2025", "Mixed case with numbers but no symbols"},
	{"Strong - Complex Password", "P@ssw0rd2025!Secure", "Complex password with all character types"},
	{"Very Strong - Random", "aB3$kL9mN2pQ7rT5vW8xY1", "Random characters with high entropy"},
	{"Very Weak - Sequential", "123456789", "Sequential numbers"},
	{"Weak - Keyboard Pattern", "qwerty123", "Keyboard pattern with numbers"},
}

type Options struct {
	// RandomSamples appends generated passwords after the fixed cases.
	RandomSamples int
	// MetricsOut, when set, receives the per-category results as JSON.
	MetricsOut io.Writer
	// MetricsInterval is the resource sampling period; zero means one second.
	MetricsInterval time.Duration
}

type CategoryCount struct {
	Category domain.StrengthLevel
	Count    int
}

type Summary struct {
	RunID          string
	Reports        []domain.Report
	Distribution   []CategoryCount
	AverageScore   float64
	AverageEntropy float64
	Cost           metrics.Cost
	Resources      domain.ResourceMetrics
}

func Run(ctx context.Context, w io.Writer, analyzer port.StrengthAnalyzer, opts Options) (*Summary, error) {
	cases := append([]Case(nil), Cases...)
	for i := 0; i < opts.RandomSamples; i++ {
		cases = append(cases, Case{
			Name:        fmt.Sprintf("Random Sample %d", i+1),
			Password:    random.GenerateRandomString(random.All, 12+random.Intn(13)),
			Description: "Generated from the full printable set",
		})
	}

	summary := &Summary{RunID: uuid.NewString()}
	collector := metrics.NewCollector(opts.MetricsInterval)
	collector.StartCollection(summary.RunID)

	sep := strings.Repeat("=", 80)
	fmt.Fprintf(w, "Testing %d different password scenarios...\n\n", len(cases))

	var runErr error
	summary.Cost = metrics.Measure(func() {
		for i, c := range cases {
			if err := ctx.Err(); err != nil {
				runErr = err
				return
			}
			report := analyzer.Analyze(c.Password)
			summary.Reports = append(summary.Reports, report)
			collector.UpdateAnalyses(summary.RunID, int64(i+1), 1)

			fmt.Fprintf(w, "\n%s\n\nTEST CASE %d/%d: %s\n", sep, i+1, len(cases), c.Name)
			fmt.Fprintf(w, "Password: %s\nDescription: %s\n%s\n", c.Password, c.Description, strings.Repeat("-", 80))
			writeCase(w, report)
		}
	})
	summary.Resources = collector.StopCollection(summary.RunID)
	if runErr != nil {
		return summary, runErr
	}

	summarize(summary)
	writeSummary(w, summary)

	if opts.MetricsOut != nil {
		reporter := metrics.NewReporter(opts.MetricsOut)
		for i, r := range summary.Reports {
			reporter.Record(string(r.Category), map[string]interface{}{
				"case":    cases[i].Name,
				"score":   r.Score,
				"entropy": r.EntropyBits,
			})
		}
		if err := reporter.Flush(); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func writeCase(w io.Writer, r domain.Report) {
	fmt.Fprintln(w, "\nRESULTS:")
	fmt.Fprintf(w, "  Length:        %d characters\n", r.Length)
	fmt.Fprintf(w, "  Entropy:       %.2f bits\n", r.EntropyBits)
	fmt.Fprintf(w, "  Score:         %.2f/100\n", r.Score)
	fmt.Fprintf(w, "  Category:      %s\n", r.Category)
	fmt.Fprintf(w, "  Cracking Time: %s\n", r.CrackingTime.OfflineGPU)

	ca := r.Composition
	fmt.Fprintln(w, "\nCHARACTER COMPOSITION:")
	fmt.Fprintf(w, "  Lowercase: %s (%d)\n", mark(ca.HasLower), ca.LowerCount)
	fmt.Fprintf(w, "  Uppercase: %s (%d)\n", mark(ca.HasUpper), ca.UpperCount)
	fmt.Fprintf(w, "  Digits:    %s (%d)\n", mark(ca.HasDigit), ca.DigitCount)
	fmt.Fprintf(w, "  Symbols:   %s (%d)\n", mark(ca.HasSymbol), ca.SymbolCount)

	if groups := r.Patterns.Groups(); len(groups) > 0 {
		fmt.Fprintln(w, "\nWEAK PATTERNS DETECTED:")
		for _, g := range groups {
			fmt.Fprintf(w, "  • %s: %s\n", g.Title, strings.Join(firstN(g.Matches, 3), ", "))
		}
	} else {
		fmt.Fprintln(w, "\n✓ No weak patterns detected")
	}

	d := r.Dictionary
	if d.IsCommonPassword || d.ContainsDictionaryWord {
		fmt.Fprintln(w, "\nDICTIONARY CHECK:")
		if d.IsCommonPassword {
			fmt.Fprintln(w, "  • Common password detected")
		}
		if d.ContainsDictionaryWord {
			fmt.Fprintf(w, "  • Dictionary words: %s\n", strings.Join(firstN(d.WordsFound, 3), ", "))
		}
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintf(w, "\nTOP RECOMMENDATION:\n  • %s\n", r.Recommendations[0])
	}
}

func summarize(s *Summary) {
	counts := make(map[domain.StrengthLevel]int)
	var scoreSum, entropySum float64
	for _, r := range s.Reports {
		counts[r.Category]++
		scoreSum += r.Score
		entropySum += r.EntropyBits
	}
	for cat, n := range counts {
		s.Distribution = append(s.Distribution, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(s.Distribution, func(i, j int) bool {
		return s.Distribution[i].Category < s.Distribution[j].Category
	})
	if n := float64(len(s.Reports)); n > 0 {
		s.AverageScore = scoreSum / n
		s.AverageEntropy = entropySum / n
	}
}

func writeSummary(w io.Writer, s *Summary) {
	sep := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n\nSUMMARY STATISTICS\n%s\n", sep, strings.Repeat("-", 80))
	fmt.Fprintln(w, "\nPassword Distribution by Category:")
	for _, c := range s.Distribution {
		fmt.Fprintf(w, "  %-15s : %d password(s)\n", c.Category, c.Count)
	}
	fmt.Fprintf(w, "\nAverage Score:   %.2f/100\n", s.AverageScore)
	fmt.Fprintf(w, "Average Entropy: %.2f bits\n", s.AverageEntropy)

	fmt.Fprintf(w, "\nRun %s: %d analyses in %s (%s each), %d bytes allocated, CPU %.1f%%, system memory %d MB\n",
		s.RunID, len(s.Reports), s.Cost.Elapsed, s.Cost.Each(len(s.Reports)),
		s.Cost.BytesAllocated, s.Resources.CPUUsage, s.Resources.SystemMemoryMB)

	fmt.Fprintf(w, "\n%s\n\n", sep)
	fmt.Fprintln(w, "Demonstration complete!")
	fmt.Fprintln(w, "\nKey Takeaways:")
	fmt.Fprintln(w, "  • Longer passwords with diverse character sets = stronger")
	fmt.Fprintln(w, "  • Avoid dictionary words and common patterns")
	fmt.Fprintln(w, "  • Random combinations are more secure than predictable patterns")
	fmt.Fprintln(w, "  • Aim for entropy > 60 bits for strong passwords")
	fmt.Fprintf(w, "\n%s\n\n", sep)
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
