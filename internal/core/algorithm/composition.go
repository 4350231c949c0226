package algorithm

import "passwordStrengthChecker/internal/core/domain"

// Alphabet contributions per character class. The sum approximates the
// keyspace an attacker would search; it is an estimate, not a measurement.
const (
	alphabetLower   = 26
	alphabetUpper   = 26
	alphabetDigit   = 10
	alphabetSymbol  = 33
	alphabetUnicode = 100
)

// AnalyzeComposition classifies every code point into exactly one class:
// ASCII lower, ASCII upper, ASCII digit, other ASCII (symbol) or non-ASCII.
func AnalyzeComposition(password string) domain.CompositionFindings {
	var c domain.CompositionFindings
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.LowerCount++
		case r >= 'A' && r <= 'Z':
			c.UpperCount++
		case r >= '0' && r <= '9':
			c.DigitCount++
		case r <= 0x7F:
			c.SymbolCount++
		default:
			c.UnicodeCount++
		}
	}

	c.HasLower = c.LowerCount > 0
	c.HasUpper = c.UpperCount > 0
	c.HasDigit = c.DigitCount > 0
	c.HasSymbol = c.SymbolCount > 0
	c.HasUnicode = c.UnicodeCount > 0

	if c.HasLower {
		c.AlphabetSize += alphabetLower
	}
	if c.HasUpper {
		c.AlphabetSize += alphabetUpper
	}
	if c.HasDigit {
		c.AlphabetSize += alphabetDigit
	}
	if c.HasSymbol {
		c.AlphabetSize += alphabetSymbol
	}
	if c.HasUnicode {
		c.AlphabetSize += alphabetUnicode
	}

	c.DiversityScore = DiversityScore(c.ClassCount())
	return c
}

// DiversityScore is a step function: 20 points per class present, 0–100.
func DiversityScore(classes int) int {
	switch {
	case classes <= 0:
		return 0
	case classes >= 5:
		return 100
	default:
		return classes * 20
	}
}
