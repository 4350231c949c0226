package service

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"passwordStrengthChecker/internal/core/algorithm"
	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/core/reference"
	"passwordStrengthChecker/internal/pkg/logging"
	"passwordStrengthChecker/internal/port"
)

// StrengthService assembles reports. It holds only immutable reference data,
// so a single instance may serve any number of goroutines.
type StrengthService struct {
	ref *reference.Data
	log *logging.Logger
	now func() time.Time
}

type Option func(*StrengthService)

func WithLogger(l *logging.Logger) Option {
	return func(s *StrengthService) {
		s.log = logging.OrNop(l).WithComponent("strength")
	}
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *StrengthService) {
		s.now = now
	}
}

func NewStrengthService(ref *reference.Data, opts ...Option) *StrengthService {
	if ref == nil {
		ref = reference.New(nil)
	}
	s := &StrengthService{
		ref: ref,
		log: logging.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromWordlist loads an optional dictionary before building the service.
// An unreadable wordlist is logged and the service falls back to the
// built-in reference data.
func NewFromWordlist(path string, source port.WordlistSource, opts ...Option) *StrengthService {
	s := NewStrengthService(nil, opts...)
	if path == "" {
		return s
	}

	words, err := source.Load(path)
	if err != nil {
		if errors.Is(err, domain.ErrDictionaryUnavailable) {
			s.log.Warn("dictionary file unavailable, continuing without it", "path", path, "error", err)
		} else {
			s.log.Warn("failed to read dictionary, continuing without it", "path", path, "error", err)
		}
		return s
	}

	s.ref = reference.New(words)
	s.log.Info("dictionary loaded", "path", path, "words", s.ref.Dictionary().Len())
	return s
}

// Reference exposes the read-only reference data.
func (s *StrengthService) Reference() *reference.Data {
	return s.ref
}

// Analyze never fails: empty input yields the empty-report sentinel.
func (s *StrengthService) Analyze(password string) domain.Report {
	if password == "" {
		return s.emptyReport()
	}

	length := utf8.RuneCountInString(password)
	composition := algorithm.AnalyzeComposition(password)
	patterns := algorithm.DetectPatterns(password, s.ref.KeyboardPatterns())
	dictionary := algorithm.MatchDictionary(password, s.ref)
	entropy := algorithm.CalculateEntropy(length, composition.AlphabetSize)
	crackingTime := algorithm.EstimateCrackingTime(entropy)

	input := algorithm.ScoreInput{
		Length:      length,
		Entropy:     entropy,
		Composition: composition,
		Patterns:    patterns,
		Dictionary:  dictionary,
	}
	breakdown, score := algorithm.CalculateScore(input)
	category := algorithm.Categorize(score)

	report := domain.Report{
		Password:        strings.Repeat("*", length),
		Length:          length,
		EntropyBits:     algorithm.Round2(entropy),
		Score:           algorithm.Round2(score),
		Category:        category,
		ScoreBreakdown:  breakdown,
		CrackingTime:    crackingTime,
		Composition:     composition,
		Patterns:        patterns,
		Dictionary:      dictionary,
		Recommendations: algorithm.GenerateRecommendations(input),
		Timestamp:       s.timestamp(),
	}

	s.log.Debug("password analyzed", "length", length, "score", report.Score, "category", string(category))
	return report
}

func (s *StrengthService) emptyReport() domain.Report {
	return domain.Report{
		Category:        domain.StrengthVeryWeak,
		Recommendations: []string{algorithm.RecommendationNoInput},
		Timestamp:       s.timestamp(),
	}
}

// timestamp drops the monotonic reading so reports compare cleanly after a
// JSON round trip.
func (s *StrengthService) timestamp() time.Time {
	return s.now().UTC().Round(0)
}
