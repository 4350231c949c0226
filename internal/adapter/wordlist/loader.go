package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"passwordStrengthChecker/internal/core/domain"
)

// maxLineBytes bounds a single wordlist line.
const maxLineBytes = 1 << 20

// Loader reads newline-delimited wordlists. Invalid UTF-8 is dropped rather
// than failing the load, and words are NFC-normalized.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %w", domain.ErrDictionaryUnavailable, err)
		}
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrIOFailure, path, err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrIOFailure, path, err)
	}
	return words, nil
}

// Read decodes one word per line, trimming whitespace and skipping blanks.
func Read(r io.Reader) ([]string, error) {
	t := transform.Chain(
		runes.ReplaceIllFormed(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
		norm.NFC,
	)

	scanner := bufio.NewScanner(transform.NewReader(r, t))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	words := []string{}
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
