package algorithm

import (
	"math"

	"passwordStrengthChecker/internal/core/domain"
)

// Sub-score caps. They add up to 100.
const (
	MaxLengthScore     = 15
	MaxEntropyScore    = 30
	MaxDiversityScore  = 20
	MaxDictionaryScore = 20
	MaxPatternScore    = 15

	// practicalMaxEntropy is the entropy that earns the full entropy score.
	practicalMaxEntropy = 128
)

// Dictionary penalties.
const (
	penaltyCommonPassword  = 15
	penaltyDictionaryWord  = 10
	penaltyReversedWord    = 5
	penaltySubstitutedWord = 8
)

// Pattern penalties. Date patterns are informational and cost nothing.
const (
	penaltySequentialDigits  = 5
	penaltySequentialLetters = 5
	penaltyRepetitiveChars   = 4
	penaltyKeyboardPattern   = 6
	penaltyCommonPattern     = 3
)

// ScoreInput gathers the findings the scorer depends on.
type ScoreInput struct {
	Length      int
	Entropy     float64
	Composition domain.CompositionFindings
	Patterns    domain.PatternFindings
	Dictionary  domain.DictionaryFindings
}

// CalculateScore returns the per-factor breakdown and the total clamped to
// [0, 100].
func CalculateScore(in ScoreInput) (domain.ScoreBreakdown, float64) {
	b := domain.ScoreBreakdown{
		Length:     LengthScore(in.Length),
		Entropy:    EntropyScore(in.Entropy),
		Diversity:  float64(in.Composition.DiversityScore) / 100 * MaxDiversityScore,
		Dictionary: DictionaryScore(in.Dictionary),
		Pattern:    PatternScore(in.Patterns),
	}
	return b, clamp(b.Total(), 0, 100)
}

func LengthScore(length int) float64 {
	switch {
	case length < 8:
		return 0
	case length < 12:
		return 5
	case length < 16:
		return 10
	case length < 20:
		return 13
	default:
		return MaxLengthScore
	}
}

func EntropyScore(entropy float64) float64 {
	return math.Min(MaxEntropyScore, entropy/practicalMaxEntropy*MaxEntropyScore)
}

// DictionaryScore starts at the cap and subtracts every applicable penalty.
func DictionaryScore(d domain.DictionaryFindings) float64 {
	score := MaxDictionaryScore
	if d.IsCommonPassword {
		score -= penaltyCommonPassword
	}
	if d.ContainsDictionaryWord {
		score -= penaltyDictionaryWord
	}
	if d.ContainsReversedWord {
		score -= penaltyReversedWord
	}
	if d.ContainsSubstitutedWord {
		score -= penaltySubstitutedWord
	}
	return math.Max(0, float64(score))
}

// PatternScore starts at the cap and subtracts one penalty per non-empty
// category.
func PatternScore(p domain.PatternFindings) float64 {
	score := MaxPatternScore
	if len(p.SequentialDigits) > 0 {
		score -= penaltySequentialDigits
	}
	if len(p.SequentialLetters) > 0 {
		score -= penaltySequentialLetters
	}
	if len(p.RepetitiveChars) > 0 {
		score -= penaltyRepetitiveChars
	}
	if len(p.KeyboardPatterns) > 0 {
		score -= penaltyKeyboardPattern
	}
	if len(p.CommonPatterns) > 0 {
		score -= penaltyCommonPattern
	}
	return math.Max(0, float64(score))
}

// Categorize maps a score to its strength band. Upper bounds are exclusive.
func Categorize(score float64) domain.StrengthLevel {
	switch {
	case score < 30:
		return domain.StrengthVeryWeak
	case score < 50:
		return domain.StrengthWeak
	case score < 70:
		return domain.StrengthMedium
	case score < 90:
		return domain.StrengthStrong
	default:
		return domain.StrengthVeryStrong
	}
}

// Round2 rounds to two decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
