package metrics

import (
	"runtime"
	"time"
)

// Cost is the wall time and heap activity of one measured call.
type Cost struct {
	Started        time.Time
	Elapsed        time.Duration
	BytesAllocated uint64
	Allocations    uint64
	GCRuns         uint32
}

func readMem() runtime.MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m
}

// Measure runs fn once and reports what it cost.
func Measure(fn func()) Cost {
	before := readMem()
	started := time.Now()

	fn()

	elapsed := time.Since(started)
	after := readMem()
	return Cost{
		Started:        started,
		Elapsed:        elapsed,
		BytesAllocated: after.TotalAlloc - before.TotalAlloc,
		Allocations:    after.Mallocs - before.Mallocs,
		GCRuns:         after.NumGC - before.NumGC,
	}
}

// Each spreads the elapsed time evenly over n operations.
func (c Cost) Each(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return c.Elapsed / time.Duration(n)
}
