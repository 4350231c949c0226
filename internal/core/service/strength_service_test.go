package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordStrengthChecker/internal/adapter/wordlist"
	"passwordStrengthChecker/internal/core/algorithm"
	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/core/reference"
	"passwordStrengthChecker/internal/utils/random"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(words ...string) *StrengthService {
	return NewStrengthService(reference.New(words), WithClock(func() time.Time { return fixedNow }))
}

type stubSource struct {
	words []string
	err   error
}

func (s stubSource) Load(string) ([]string, error) { return s.words, s.err }

func TestAnalyze_Empty(t *testing.T) {
	report := newTestService().Analyze("")

	assert.Zero(t, report.Length)
	assert.Zero(t, report.Score)
	assert.Zero(t, report.EntropyBits)
	assert.Equal(t, domain.StrengthVeryWeak, report.Category)
	assert.Equal(t, []string{"Please enter a password to analyze"}, report.Recommendations)
	assert.Equal(t, fixedNow, report.Timestamp)
}

func TestAnalyze_CommonPasswordWithDigits(t *testing.T) {
	report := newTestService().Analyze("password123")

	assert.Equal(t, "***********", report.Password)
	assert.Equal(t, 11, report.Length)
	assert.True(t, report.Dictionary.IsCommonPassword)
	assert.Equal(t, []string{"123"}, report.Patterns.SequentialDigits)
	assert.Empty(t, report.Patterns.KeyboardPatterns)
	assert.Equal(t, domain.StrengthWeak, report.Category)
	assert.Equal(t, 36, report.Composition.AlphabetSize)
	assert.InDelta(t, 56.87, report.EntropyBits, 0.01)
}

func TestAnalyze_RepeatedRuns(t *testing.T) {
	report := newTestService().Analyze("aaa111")

	assert.Equal(t, []string{"aaa", "111"}, report.Patterns.RepetitiveChars)
	assert.Empty(t, report.Patterns.SequentialDigits)
	assert.Equal(t, domain.StrengthWeak, report.Category)
}

func TestAnalyze_LongMixedPassword(t *testing.T) {
	report := newTestService().Analyze("aB3$kL9mN2pQ7rT5vW8xY1")

	assert.Equal(t, 22, report.Length)
	assert.Equal(t, 95, report.Composition.AlphabetSize)
	assert.Equal(t, domain.StrengthVeryStrong, report.Category)
	assert.InDelta(t, 96.0, report.Score, 0.001)
	assert.False(t, report.Dictionary.Flagged())
	assert.Empty(t, report.Patterns.Groups())
	assert.Equal(t, []string{algorithm.RecommendationSecure}, report.Recommendations)
}

func TestAnalyze_DictionaryWord(t *testing.T) {
	report := newTestService("dragonfly").Analyze("Dragonfly2024!")

	assert.True(t, report.Dictionary.ContainsDictionaryWord)
	assert.Contains(t, report.Dictionary.WordsFound, "dragonfly")
	assert.Contains(t, report.Patterns.DatePatterns, "2024")
	assert.Less(t, report.ScoreBreakdown.Dictionary, float64(algorithm.MaxDictionaryScore))
}

func TestAnalyze_Idempotent(t *testing.T) {
	s := newTestService("secure")
	for _, pw := range []string{"password123", "S3cur3!", "correct horse battery staple", "日本語パスワード"} {
		assert.Equal(t, s.Analyze(pw), s.Analyze(pw), pw)
	}
}

func TestAnalyze_NeverLeaksPlaintext(t *testing.T) {
	s := newTestService()
	for _, pw := range []string{"hunter2", "Tr0ub4dor&3", "ünïcödé"} {
		report := s.Analyze(pw)
		assert.NotContains(t, report.Password, pw)
		assert.Equal(t, strings.Repeat("*", report.Length), report.Password)
	}
}

func TestAnalyze_ScoreBoundsAndCategory(t *testing.T) {
	random.Seed(42)
	s := newTestService("alpha", "omega")

	for _, pw := range random.Passwords(random.All, 500, 1, 40) {
		report := s.Analyze(pw)
		require.GreaterOrEqual(t, report.Score, 0.0, pw)
		require.LessOrEqual(t, report.Score, 100.0, pw)
		require.GreaterOrEqual(t, report.EntropyBits, 0.0, pw)
		require.Equal(t, algorithm.Categorize(report.ScoreBreakdown.Total()), report.Category, pw)
		require.NotEmpty(t, report.Recommendations, pw)
	}
}

func TestNewFromWordlist_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	err := errors.Join(domain.ErrDictionaryUnavailable, errors.New("no such file"))

	s := NewFromWordlist(missing, stubSource{err: err})

	require.NotNil(t, s)
	assert.True(t, s.Reference().Dictionary().Empty())
	assert.Equal(t, 35, s.Reference().CommonPasswordCount())
}

func TestNewFromWordlist_Loaded(t *testing.T) {
	s := NewFromWordlist("words.txt", stubSource{words: []string{"Falcon", "", "  river "}})

	assert.Equal(t, 2, s.Reference().Dictionary().Len())
	assert.True(t, s.Analyze("falcon").Dictionary.ContainsDictionaryWord)
}

func TestNewFromWordlist_DecomposedWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cafe\u0301terie\n"), 0o644))

	s := NewFromWordlist(path, wordlist.NewLoader())

	for _, pw := range []string{"cafe\u0301terie", "caf\u00e9terie", "CAFE\u0301TERIE"} {
		report := s.Analyze(pw)
		assert.True(t, report.Dictionary.ContainsDictionaryWord, "%q", pw)
		assert.Contains(t, report.Dictionary.WordsFound, "caf\u00e9terie", "%q", pw)
	}
}

func TestHolder_Swap(t *testing.T) {
	h := NewHolder(newTestService())
	assert.False(t, h.Analyze("falcon").Dictionary.ContainsDictionaryWord)

	prev := h.Swap(newTestService("falcon"))
	require.NotNil(t, prev)
	assert.True(t, h.Analyze("falcon").Dictionary.ContainsDictionaryWord)

	assert.Same(t, h.Current(), h.Swap(nil))
}

func TestAnalyzeBatch(t *testing.T) {
	s := newTestService()
	passwords := []string{"", "password123", "aaa111", "aB3$kL9mN2pQ7rT5vW8xY1", "qwerty"}

	reports, summary, err := AnalyzeBatch(context.Background(), s, passwords, 3, WithMetricsInterval(50*time.Millisecond))
	require.NoError(t, err)
	require.Len(t, reports, len(passwords))

	for i, pw := range passwords {
		assert.Equal(t, s.Analyze(pw), reports[i], "index %d", i)
	}
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, len(passwords), summary.Total)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, 1, summary.ByCategory[domain.StrengthVeryStrong])
	assert.Equal(t, int64(len(passwords)), summary.Resources.TotalAnalyses)
	assert.Equal(t, 50*time.Millisecond, summary.Resources.SampleInterval)
}

func TestAnalyzeBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, summary, err := AnalyzeBatch(ctx, newTestService(), random.Passwords(random.All, 50, 8, 16), 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 50, summary.Total)
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	reports, summary, err := AnalyzeBatch(context.Background(), newTestService(), nil, 4, WithMetricsInterval(-1))
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.Zero(t, summary.Total)
}
