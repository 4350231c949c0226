package algorithm

import (
	"slices"
	"strings"

	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/core/reference"
)

// minContainedWordLength is the shortest dictionary word reported when it
// occurs inside a longer password.
const minContainedWordLength = 4

// leetReplacer maps look-alike symbols back to the letters they stand for.
var leetReplacer = strings.NewReplacer(
	"@", "a",
	"3", "e",
	"1", "i",
	"0", "o",
	"$", "s",
	"7", "t",
)

// Desubstitute undoes the common leet substitutions on an already
// lower-cased password.
func Desubstitute(lower string) string {
	return leetReplacer.Replace(lower)
}

// MatchDictionary checks the case-folded, NFC-normalized password against
// the common password set and, when one was loaded, the dictionary.
func MatchDictionary(password string, ref *reference.Data) domain.DictionaryFindings {
	lower := reference.Fold(password)
	findings := domain.DictionaryFindings{
		WordsFound:            []string{},
		SubstitutionsDetected: []string{},
	}

	if ref.IsCommonPassword(lower) {
		findings.IsCommonPassword = true
		findings.WordsFound = append(findings.WordsFound, lower)
	}

	dict := ref.Dictionary()
	if !dict.Empty() {
		if dict.Contains(lower) {
			findings.ContainsDictionaryWord = true
			findings.WordsFound = append(findings.WordsFound, lower)
		}

		for _, word := range dict.WordsIn(lower, minContainedWordLength) {
			findings.ContainsDictionaryWord = true
			if !slices.Contains(findings.WordsFound, word) {
				findings.WordsFound = append(findings.WordsFound, word)
			}
		}

		reversed := reverse(lower)
		if dict.Contains(reversed) {
			findings.ContainsReversedWord = true
			findings.WordsFound = append(findings.WordsFound, reversed+domain.ReversedTag)
		}
	}

	desub := Desubstitute(lower)
	if dict.Contains(desub) || ref.IsCommonPassword(desub) {
		findings.ContainsSubstitutedWord = true
		findings.SubstitutionsDetected = append(findings.SubstitutionsDetected, desub)
	}

	return findings
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
