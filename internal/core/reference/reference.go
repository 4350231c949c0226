// Package reference holds the read-only data every analysis consults: the
// built-in common passwords, the keyboard pattern list and an optional
// dictionary loaded from a wordlist.
//
// A Data value is never mutated after New returns, so one instance can be
// shared by any number of concurrent analyses.
package reference

import (
	"strings"
	"unicode/utf8"

	"github.com/bits-and-blooms/bloom/v3"
	"golang.org/x/text/unicode/norm"
)

const bloomFalsePositiveRate = 0.01

var builtinCommonPasswords = []string{
	"password", "123456", "12345678", "123456789", "1234567890",
	"qwerty", "abc123", "password1", "welcome", "monkey",
	"1234567", "letmein", "trustno1", "dragon", "baseball",
	"iloveyou", "master", "sunshine", "ashley", "bailey",
	"passw0rd", "shadow", "123123", "654321", "superman",
	"qazwsx", "michael", "football", "welcome123", "jesus",
	"ninja", "mustang", "password123", "admin", "login",
}

var builtinKeyboardPatterns = []string{
	"qwerty", "qwertyuiop", "asdfgh", "asdfghjkl", "zxcvbn",
	"123456", "12345678", "123456789", "1234567890",
	"abcdef", "abcdefgh", "qwerty123", "asdf123", "zxcv123",
}

type Data struct {
	commonPasswords  map[string]struct{}
	keyboardPatterns []string
	dictionary       *Dictionary
}

// New builds reference data around the given dictionary words. Words are
// lower-cased and trimmed; blank entries are dropped. A nil or empty slice
// yields an empty dictionary.
func New(dictionaryWords []string) *Data {
	common := make(map[string]struct{}, len(builtinCommonPasswords))
	for _, p := range builtinCommonPasswords {
		common[p] = struct{}{}
	}
	return &Data{
		commonPasswords:  common,
		keyboardPatterns: append([]string(nil), builtinKeyboardPatterns...),
		dictionary:       NewDictionary(dictionaryWords),
	}
}

func (d *Data) IsCommonPassword(lower string) bool {
	_, ok := d.commonPasswords[lower]
	return ok
}

func (d *Data) CommonPasswordCount() int {
	return len(d.commonPasswords)
}

// KeyboardPatterns returns a copy of the pattern list in detection order.
func (d *Data) KeyboardPatterns() []string {
	return append([]string(nil), d.keyboardPatterns...)
}

func (d *Data) Dictionary() *Dictionary {
	return d.dictionary
}

// Dictionary is a lower-cased word set indexed for substring lookups.
// The bloom filter screens candidate substrings before the exact set probe,
// and maxLen bounds how long a candidate needs to be.
type Dictionary struct {
	words  map[string]struct{}
	filter *bloom.BloomFilter
	maxLen int
}

// Fold is the canonical form used on both sides of a dictionary lookup:
// lower case, then NFC, so composed and decomposed spellings match.
func Fold(s string) string {
	return norm.NFC.String(strings.ToLower(s))
}

func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = Fold(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		d.words[w] = struct{}{}
		if n := utf8.RuneCountInString(w); n > d.maxLen {
			d.maxLen = n
		}
	}
	if len(d.words) == 0 {
		return d
	}

	d.filter = bloom.NewWithEstimates(uint(len(d.words)), bloomFalsePositiveRate)
	for w := range d.words {
		d.filter.AddString(w)
	}
	return d
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

func (d *Dictionary) Empty() bool {
	return len(d.words) == 0
}

func (d *Dictionary) Contains(word string) bool {
	if d.filter == nil || !d.filter.TestString(word) {
		return false
	}
	_, ok := d.words[word]
	return ok
}

// WordsIn returns every dictionary word of at least minLen code points that
// occurs in s, ordered by start position and then length. A word is listed
// once even when it occurs several times.
func (d *Dictionary) WordsIn(s string, minLen int) []string {
	if d.Empty() {
		return nil
	}
	if minLen < 1 {
		minLen = 1
	}
	runes := []rune(s)
	seen := make(map[string]struct{})
	var found []string
	for start := range runes {
		for end := start + minLen; end <= len(runes) && end-start <= d.maxLen; end++ {
			candidate := string(runes[start:end])
			if _, dup := seen[candidate]; dup {
				continue
			}
			if d.Contains(candidate) {
				seen[candidate] = struct{}{}
				found = append(found, candidate)
			}
		}
	}
	return found
}
