package random

import (
	"math/rand"
	"sync"
	"time"
)

const (
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()-_=+[]{};:,.<>?/"
	All     = Lower + Upper + Digits + Symbols
)

var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Seed makes subsequent output reproducible.
func Seed(seed int64) {
	mu.Lock()
	rng = rand.New(rand.NewSource(seed))
	mu.Unlock()
}

func GenerateRandomString(charset string, length int) string {
	if length <= 0 || len(charset) == 0 {
		return ""
	}

	mu.Lock()
	defer mu.Unlock()
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rng.Intn(len(charset))]
	}
	return string(result)
}

// Intn returns a value in [0, n).
func Intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rng.Intn(n)
}

// Passwords returns count strings drawn from charset with lengths in
// [minLen, maxLen].
func Passwords(charset string, count, minLen, maxLen int) []string {
	if maxLen < minLen {
		maxLen = minLen
	}
	out := make([]string, count)
	for i := range out {
		out[i] = GenerateRandomString(charset, minLen+Intn(maxLen-minLen+1))
	}
	return out
}
