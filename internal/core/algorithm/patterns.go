package algorithm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"passwordStrengthChecker/internal/core/domain"
)

const minRunLength = 3

var (
	digitRunPattern  = regexp.MustCompile(`[0-9]{3,}`)
	letterRunPattern = regexp.MustCompile(`[a-z]{3,}`)
	yearPattern      = regexp.MustCompile(`[0-9]{4}`)
	datePattern      = regexp.MustCompile(`[0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4}`)
)

// DetectPatterns runs every detector over the password. Detectors are
// independent; a password may land in several categories at once.
func DetectPatterns(password string, keyboardPatterns []string) domain.PatternFindings {
	return domain.PatternFindings{
		SequentialDigits:  SequentialDigits(password),
		SequentialLetters: SequentialLetters(password),
		RepetitiveChars:   RepetitiveChars(password),
		KeyboardPatterns:  KeyboardPatterns(password, keyboardPatterns),
		CommonPatterns:    CommonPatterns(password),
		DatePatterns:      DatePatterns(password),
	}
}

// SequentialDigits returns maximal digit runs of length 3+ that ascend by
// exactly one at every step, such as "123" or "4567".
func SequentialDigits(password string) []string {
	return ascendingRuns(digitRunPattern.FindAllString(password, -1))
}

// SequentialLetters applies the same rule to a–z runs of the lower-cased
// password.
func SequentialLetters(password string) []string {
	return ascendingRuns(letterRunPattern.FindAllString(strings.ToLower(password), -1))
}

func ascendingRuns(runs []string) []string {
	found := []string{}
	for _, run := range runs {
		if isAscending(run) {
			found = append(found, run)
		}
	}
	return found
}

func isAscending(run string) bool {
	runes := []rune(run)
	if len(runes) < minRunLength {
		return false
	}
	for i := 1; i < len(runes); i++ {
		if runes[i]-runes[i-1] != 1 {
			return false
		}
	}
	return true
}

// RepetitiveChars returns every maximal run of three or more identical code
// points, reported in full ("aaaa", not "aaa").
func RepetitiveChars(password string) []string {
	found := []string{}
	runes := []rune(password)
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= minRunLength {
			found = append(found, string(runes[i:j]))
		}
		i = j
	}
	return found
}

// KeyboardPatterns reports every listed pattern contained in the password,
// ignoring case, in list order.
func KeyboardPatterns(password string, patterns []string) []string {
	lower := strings.ToLower(password)
	found := []string{}
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			found = append(found, p)
		}
	}
	return found
}

// DatePatterns reports 4-digit runs (candidate years) followed by
// d/m/y-style substrings. The two kinds may overlap.
func DatePatterns(password string) []string {
	found := []string{}
	found = append(found, yearPattern.FindAllString(password, -1)...)
	found = append(found, datePattern.FindAllString(password, -1)...)
	return found
}

// CommonPatterns labels degenerate whole-password shapes.
func CommonPatterns(password string) []string {
	found := []string{}
	if password == "" {
		return found
	}
	if isAllSame(password) {
		found = append(found, domain.PatternAllSame)
	}
	if allRunes(password, unicode.IsDigit) {
		found = append(found, domain.PatternAllDigits)
	}
	if allRunes(password, unicode.IsLetter) {
		found = append(found, domain.PatternAllLetters)
	}
	return found
}

func isAllSame(password string) bool {
	if utf8.RuneCountInString(password) < 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(password)
	return allRunes(password, func(r rune) bool { return r == first })
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
