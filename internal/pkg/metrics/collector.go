package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"passwordStrengthChecker/internal/core/domain"
)

// Collector samples process and host resources for each running batch,
// keyed by run ID.
type Collector struct {
	mu             sync.RWMutex
	metrics        map[string]*domain.ResourceMetrics
	started        map[string]time.Time
	updateInterval time.Duration
}

func NewCollector(interval time.Duration) *Collector {
	if interval <= 0 {
		interval = time.Second
	}
	return &Collector{
		metrics:        make(map[string]*domain.ResourceMetrics),
		started:        make(map[string]time.Time),
		updateInterval: interval,
	}
}

func (c *Collector) StartCollection(runID string) {
	now := time.Now()
	c.mu.Lock()
	c.metrics[runID] = &domain.ResourceMetrics{LastUpdated: now, SampleInterval: c.updateInterval}
	c.started[runID] = now
	c.mu.Unlock()

	c.sample(runID)
	go c.collect(runID)
}

// StopCollection ends sampling and returns the final snapshot.
func (c *Collector) StopCollection(runID string) domain.ResourceMetrics {
	c.sample(runID)

	c.mu.Lock()
	defer c.mu.Unlock()
	var final domain.ResourceMetrics
	if m, ok := c.metrics[runID]; ok {
		final = *m
	}
	delete(c.metrics, runID)
	delete(c.started, runID)
	return final
}

// GetMetrics returns a copy of the current snapshot, or nil for an unknown run.
func (c *Collector) GetMetrics(runID string) *domain.ResourceMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if m, exists := c.metrics[runID]; exists {
		snapshot := *m
		return &snapshot
	}
	return nil
}

// UpdateAnalyses records batch progress.
func (c *Collector) UpdateAnalyses(runID string, total int64, activeWorkers int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, exists := c.metrics[runID]
	if !exists {
		return
	}
	m.TotalAnalyses = total
	m.ActiveWorkers = activeWorkers
	if elapsed := time.Since(c.started[runID]).Seconds(); elapsed > 0 {
		m.AnalysesPerSec = int64(float64(total) / elapsed)
	}
}

func (c *Collector) collect(runID string) {
	ticker := time.NewTicker(c.updateInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !c.sample(runID) {
			return
		}
	}
}

func (c *Collector) sample(runID string) bool {
	c.mu.RLock()
	_, exists := c.metrics[runID]
	c.mu.RUnlock()
	if !exists {
		return false
	}

	var cpuUsage float64
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0]
	}
	var systemMB int64
	if vm, err := mem.VirtualMemory(); err == nil {
		systemMB = int64(vm.Total / 1024 / 1024)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.mu.Lock()
	defer c.mu.Unlock()
	current, exists := c.metrics[runID]
	if !exists {
		return false
	}
	current.CPUUsage = cpuUsage
	current.MemoryUsageMB = int64(m.Alloc / 1024 / 1024)
	current.SystemMemoryMB = systemMB
	current.LastUpdated = time.Now()
	return true
}
