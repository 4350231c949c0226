package algorithm

import (
	"fmt"
	"math"
	"math/big"

	"passwordStrengthChecker/internal/core/domain"
)

// Attacker throughput models, guesses per second.
const (
	RateOnlineBruteForce = 10
	RateOfflineCPU       = 1e6
	RateOfflineGPU       = 1e9
	RateCloud            = 1e12
)

const (
	secondsPerMinute  = 60
	secondsPerHour    = 3600
	secondsPerDay     = 86400
	secondsPerYear    = 31536000
	secondsPerCentury = 3153600000
)

// CalculateEntropy returns length × log2(alphabetSize) bits, or 0 when
// either factor is zero. It is the ceiling for a uniformly random password
// and ignores any detected pattern.
func CalculateEntropy(length, alphabetSize int) float64 {
	if length <= 0 || alphabetSize <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabetSize))
}

// Combinations returns 2^entropy. Values beyond float64 range are built
// from mantissa and exponent so very long passwords do not overflow.
func Combinations(entropy float64) *big.Float {
	if entropy <= 0 {
		return big.NewFloat(1)
	}
	if v := math.Exp2(entropy); !math.IsInf(v, 1) {
		return big.NewFloat(v)
	}
	whole := math.Floor(entropy)
	mant := big.NewFloat(math.Exp2(entropy - whole))
	return new(big.Float).SetMantExp(mant, int(whole))
}

// EstimateCrackingTime projects the exhaustive search time under each
// attacker model.
func EstimateCrackingTime(entropy float64) domain.CrackingTimeEstimate {
	combinations := Combinations(entropy)
	return domain.CrackingTimeEstimate{
		OnlineBruteForce: FormatDuration(secondsAt(combinations, RateOnlineBruteForce)),
		OfflineCPU:       FormatDuration(secondsAt(combinations, RateOfflineCPU)),
		OfflineGPU:       FormatDuration(secondsAt(combinations, RateOfflineGPU)),
		Cloud:            FormatDuration(secondsAt(combinations, RateCloud)),
		Combinations:     combinations.Text('e', 2),
	}
}

func secondsAt(combinations *big.Float, rate float64) *big.Float {
	return new(big.Float).Quo(combinations, big.NewFloat(rate))
}

// FormatDuration buckets a number of seconds into a human readable string.
// Whole units are truncated, never rounded.
func FormatDuration(seconds *big.Float) string {
	switch {
	case seconds.Cmp(big.NewFloat(1)) < 0:
		return "Instant"
	case seconds.Cmp(big.NewFloat(secondsPerMinute)) < 0:
		return fmt.Sprintf("%s seconds", wholeUnits(seconds, 1))
	case seconds.Cmp(big.NewFloat(secondsPerHour)) < 0:
		return fmt.Sprintf("%s minutes", wholeUnits(seconds, secondsPerMinute))
	case seconds.Cmp(big.NewFloat(secondsPerDay)) < 0:
		return fmt.Sprintf("%s hours", wholeUnits(seconds, secondsPerHour))
	case seconds.Cmp(big.NewFloat(secondsPerYear)) < 0:
		return fmt.Sprintf("%s days", wholeUnits(seconds, secondsPerDay))
	case seconds.Cmp(big.NewFloat(secondsPerCentury)) < 0:
		return fmt.Sprintf("%s years", wholeUnits(seconds, secondsPerYear))
	default:
		return fmt.Sprintf("%s years (centuries)", wholeUnits(seconds, secondsPerYear))
	}
}

func wholeUnits(seconds *big.Float, unit float64) string {
	q := new(big.Float).Quo(seconds, big.NewFloat(unit))
	n, _ := q.Int(nil)
	return n.String()
}
