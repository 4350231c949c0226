package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"passwordStrengthChecker/internal/core/algorithm"
	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/pkg/concurrency"
	"passwordStrengthChecker/internal/pkg/metrics"
	"passwordStrengthChecker/internal/port"
)

// DefaultMetricsInterval is the resource sampling period when none is given.
const DefaultMetricsInterval = time.Second

type batchConfig struct {
	metricsInterval time.Duration
}

type BatchOption func(*batchConfig)

// WithMetricsInterval sets how often CPU and memory are sampled during the
// run. Non-positive values keep the default.
func WithMetricsInterval(d time.Duration) BatchOption {
	return func(c *batchConfig) {
		if d > 0 {
			c.metricsInterval = d
		}
	}
}

// AnalyzeBatch fans the passwords out over a worker pool and returns the
// reports in input order. On cancellation it returns the reports finished so
// far, leaving the rest zero-valued, along with ctx.Err().
func AnalyzeBatch(ctx context.Context, analyzer port.StrengthAnalyzer, passwords []string, workers int, opts ...BatchOption) ([]domain.Report, domain.BatchSummary, error) {
	cfg := batchConfig{metricsInterval: DefaultMetricsInterval}
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := uuid.NewString()
	summary := domain.BatchSummary{
		RunID:      runID,
		Total:      len(passwords),
		ByCategory: make(map[domain.StrengthLevel]int),
	}
	reports := make([]domain.Report, len(passwords))
	if len(passwords) == 0 {
		return reports, summary, nil
	}

	collector := metrics.NewCollector(cfg.metricsInterval)
	collector.StartCollection(runID)

	start := time.Now()
	pool := concurrency.NewWorkerPool(analyzer, workers, workers*2)
	pool.Start(ctx)

	go func() {
		defer pool.Stop()
		for i, password := range passwords {
			if err := pool.Submit(ctx, concurrency.Task{ID: i, Password: password}); err != nil {
				return
			}
		}
	}()

	var done int64
	var scoreSum float64
	for res := range pool.Results() {
		reports[res.TaskID] = res.Report
		summary.ByCategory[res.Report.Category]++
		scoreSum += res.Report.Score
		done++
		collector.UpdateAnalyses(runID, done, pool.GetMetrics().ActiveWorkers)
	}

	summary.Duration = time.Since(start)
	summary.Failed = summary.Total - int(done)
	if done > 0 {
		summary.AverageScore = algorithm.Round2(scoreSum / float64(done))
	}

	resources := collector.StopCollection(runID)
	poolMetrics := pool.GetMetrics()
	resources.TotalAnalyses = poolMetrics.TotalAnalyses
	resources.AnalysesPerSec = poolMetrics.AnalysesPerSec
	resources.ActiveWorkers = pool.NumWorkers()
	summary.Resources = resources

	if err := ctx.Err(); err != nil {
		return reports, summary, fmt.Errorf("batch %s interrupted after %d of %d: %w", runID, done, summary.Total, err)
	}
	return reports, summary, nil
}
