package concurrency

import (
	"context"
	"sync"
	"time"

	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/port"
)

type WorkerPool struct {
	analyzer   port.StrengthAnalyzer
	workers    []*Worker
	tasks      chan Task
	results    chan Result
	numWorkers int
	metrics    *PoolMetrics
	wg         sync.WaitGroup
	stop       chan struct{}
	stopOnce   sync.Once
}

type Worker struct {
	id        int
	analyzer  port.StrengthAnalyzer
	tasks     chan Task
	results   chan Result
	metrics   *WorkerMetrics
	isWorking bool
	mu        sync.RWMutex
}

// Task carries one password to analyze. The password lives only as long as
// the task; results carry the report alone.
type Task struct {
	ID       int
	Password string
}

type Result struct {
	TaskID   int
	Report   domain.Report
	Duration time.Duration
	WorkerID int
}

type PoolMetrics struct {
	ActiveWorkers  int
	CompletedTasks int64
	TotalDuration  time.Duration
	AverageLatency time.Duration
	mu             sync.RWMutex
}

type WorkerMetrics struct {
	TasksCompleted int64
	TotalDuration  time.Duration
	LastActive     time.Time
	mu             sync.RWMutex
}

func NewWorkerPool(analyzer port.StrengthAnalyzer, numWorkers int, queueSize int) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	pool := &WorkerPool{
		analyzer:   analyzer,
		workers:    make([]*Worker, numWorkers),
		tasks:      make(chan Task, queueSize),
		results:    make(chan Result, queueSize),
		numWorkers: numWorkers,
		metrics:    &PoolMetrics{},
		stop:       make(chan struct{}),
	}

	for i := 0; i < numWorkers; i++ {
		pool.workers[i] = &Worker{
			id:       i,
			analyzer: analyzer,
			tasks:    pool.tasks,
			results:  pool.results,
			metrics: &WorkerMetrics{
				LastActive: time.Now(),
			},
		}
	}

	return pool
}

func (p *WorkerPool) Start(ctx context.Context) {
	for _, worker := range p.workers {
		p.wg.Add(1)
		go worker.start(ctx, &p.wg)
	}

	go p.collectMetrics(ctx)
}

// Submit queues a task, giving up when ctx is done.
func (p *WorkerPool) Submit(ctx context.Context, task Task) error {
	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *WorkerPool) Results() <-chan Result {
	return p.results
}

// Stop closes the task queue, waits for the workers and closes Results.
// No Submit may be in flight or follow.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
		close(p.tasks)
		p.wg.Wait()
		p.updatePoolMetrics()
		close(p.results)
	})
}

func (p *WorkerPool) NumWorkers() int {
	return p.numWorkers
}

func (p *WorkerPool) GetMetrics() domain.ResourceMetrics {
	p.metrics.mu.RLock()
	defer p.metrics.mu.RUnlock()

	return domain.ResourceMetrics{
		ActiveWorkers:  p.metrics.ActiveWorkers,
		AnalysesPerSec: p.analysesPerSecondLocked(),
		TotalAnalyses:  p.metrics.CompletedTasks,
		LastUpdated:    time.Now(),
	}
}

func (w *Worker) start(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-w.tasks:
			if !ok {
				return
			}

			w.setWorking(true)
			startTime := time.Now()
			report := w.analyzer.Analyze(task.Password)
			duration := time.Since(startTime)
			w.updateMetrics(duration)
			w.setWorking(false)

			select {
			case w.results <- Result{
				TaskID:   task.ID,
				Report:   report,
				Duration: duration,
				WorkerID: w.id,
			}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *Worker) setWorking(working bool) {
	w.mu.Lock()
	w.isWorking = working
	w.mu.Unlock()
}

func (w *Worker) updateMetrics(duration time.Duration) {
	w.metrics.mu.Lock()
	defer w.metrics.mu.Unlock()

	w.metrics.TasksCompleted++
	w.metrics.TotalDuration += duration
	w.metrics.LastActive = time.Now()
}

func (p *WorkerPool) collectMetrics(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stop:
			return
		case <-ticker.C:
			p.updatePoolMetrics()
		}
	}
}

func (p *WorkerPool) updatePoolMetrics() {
	activeWorkers := 0
	var totalCompleted int64
	var totalDuration time.Duration

	for _, worker := range p.workers {
		worker.metrics.mu.RLock()
		totalCompleted += worker.metrics.TasksCompleted
		totalDuration += worker.metrics.TotalDuration
		worker.metrics.mu.RUnlock()

		worker.mu.RLock()
		if worker.isWorking {
			activeWorkers++
		}
		worker.mu.RUnlock()
	}

	p.metrics.mu.Lock()
	p.metrics.ActiveWorkers = activeWorkers
	p.metrics.CompletedTasks = totalCompleted
	p.metrics.TotalDuration = totalDuration
	if totalCompleted > 0 {
		p.metrics.AverageLatency = totalDuration / time.Duration(totalCompleted)
	}
	p.metrics.mu.Unlock()
}

func (p *WorkerPool) analysesPerSecondLocked() int64 {
	if p.metrics.TotalDuration <= 0 {
		return 0
	}
	return int64(float64(p.metrics.CompletedTasks) / p.metrics.TotalDuration.Seconds())
}
