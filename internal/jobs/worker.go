package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
)

// Job represents a background task
type Job func(ctx context.Context) error

// Worker runs fire-and-forget jobs and periodic tasks
type Worker struct {
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	asyncSem      chan struct{}
	maxConcurrent int
	stats         WorkerStats
	statsMu       sync.RWMutex
}

// WorkerStats holds statistics about the worker.
// CompletedJobs counts every finished job; FailedJobs is the subset that failed.
type WorkerStats struct {
	ActiveJobs    int   `json:"active_jobs"`
	CompletedJobs int64 `json:"completed_jobs"`
	FailedJobs    int64 `json:"failed_jobs"`
	MaxConcurrent int   `json:"max_concurrent"`
}

// NewWorker creates a worker running at most 2*concurrency async jobs at once
func NewWorker(concurrency int) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	asyncLimit := concurrency * 2
	if asyncLimit < 10 {
		asyncLimit = 10
	}

	return &Worker{
		ctx:           ctx,
		cancel:        cancel,
		asyncSem:      make(chan struct{}, asyncLimit),
		maxConcurrent: asyncLimit,
	}
}

// EnqueueAsync runs a job in a new goroutine, bounded by a semaphore.
// Errors and panics are logged and counted, never returned.
func (w *Worker) EnqueueAsync(job Job) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		select {
		case w.asyncSem <- struct{}{}:
		case <-w.ctx.Done():
			return
		}
		defer func() { <-w.asyncSem }()

		w.run("async", job)
	}()
}

// ScheduleEvery runs a job at fixed intervals. The first run happens after the interval.
func (w *Worker) ScheduleEvery(interval time.Duration, job Job) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				w.run("scheduled", job)
			}
		}
	}()
}

func (w *Worker) run(kind string, job Job) {
	w.trackJobStart()
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panic", "kind", kind, "panic", fmt.Sprint(r))
			w.trackJobFailure()
		}
		w.trackJobEnd()
	}()

	if err := job(w.ctx); err != nil {
		logger.Error("Job error", "kind", kind, "error", err.Error())
		w.trackJobFailure()
		return
	}
	logger.Debug("Job completed", "kind", kind, "elapsed", time.Since(start).String())
}

// Shutdown cancels pending jobs and waits for running ones
func (w *Worker) Shutdown() {
	w.cancel()
	w.wg.Wait()
}

// Context returns the worker's context for checking cancellation
func (w *Worker) Context() context.Context {
	return w.ctx
}

// GetStats returns the current worker statistics
func (w *Worker) GetStats() WorkerStats {
	w.statsMu.RLock()
	defer w.statsMu.RUnlock()
	stats := w.stats
	stats.MaxConcurrent = w.maxConcurrent
	return stats
}

func (w *Worker) trackJobStart() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs++
}

func (w *Worker) trackJobEnd() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs--
	w.stats.CompletedJobs++
}

func (w *Worker) trackJobFailure() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.FailedJobs++
}
