package service

import (
	"sync/atomic"

	"passwordStrengthChecker/internal/core/domain"
)

// Holder lets a long-lived process replace its engine, for example after
// the wordlist changes, without locking the analysis path. Each call uses
// whichever engine was current when it started.
type Holder struct {
	current atomic.Pointer[StrengthService]
}

func NewHolder(s *StrengthService) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

func (h *Holder) Analyze(password string) domain.Report {
	return h.current.Load().Analyze(password)
}

func (h *Holder) Current() *StrengthService {
	return h.current.Load()
}

// Swap installs next and returns the engine it replaced. A nil next is
// ignored.
func (h *Holder) Swap(next *StrengthService) *StrengthService {
	if next == nil {
		return h.current.Load()
	}
	return h.current.Swap(next)
}
