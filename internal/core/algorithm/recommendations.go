package algorithm

import (
	"fmt"
)

const (
	recommendedMinLength  = 12
	lowEntropyThreshold   = 40
	RecommendationSecure  = "Password meets most security requirements. Keep it unique and don't reuse it!"
	RecommendationNoInput = "Please enter a password to analyze"
)

// GenerateRecommendations evaluates a fixed sequence of conditions and
// emits one message per condition that holds. Callers that need to localize
// should derive their own text from the findings instead of parsing these.
func GenerateRecommendations(in ScoreInput) []string {
	var recs []string
	add := func(cond bool, msg string) {
		if cond {
			recs = append(recs, msg)
		}
	}

	add(in.Length < recommendedMinLength,
		fmt.Sprintf("Increase password length to at least %d characters (currently %d)", recommendedMinLength, in.Length))

	c := in.Composition
	add(!c.HasLower, "Add lowercase letters")
	add(!c.HasUpper, "Add uppercase letters")
	add(!c.HasDigit, "Add numbers")
	add(!c.HasSymbol, "Add special characters (!@#$%^&*)")

	d := in.Dictionary
	add(d.IsCommonPassword, "Avoid using common passwords - use a unique password")
	add(d.ContainsDictionaryWord, "Avoid dictionary words - use random combinations")
	add(d.ContainsSubstitutedWord, "Simple character substitutions (like @ for a) are easily detected")

	p := in.Patterns
	add(len(p.SequentialDigits) > 0, "Avoid sequential numbers (123, 1234, etc.)")
	add(len(p.SequentialLetters) > 0, "Avoid sequential letters (abc, abcd, etc.)")
	add(len(p.RepetitiveChars) > 0, "Avoid repetitive characters (aaa, 111, etc.)")
	add(len(p.KeyboardPatterns) > 0, "Avoid keyboard patterns (qwerty, asdf, etc.)")

	add(in.Entropy < lowEntropyThreshold, "Password has low entropy - add more randomness")

	if len(recs) == 0 {
		recs = append(recs, RecommendationSecure)
	}
	return recs
}
