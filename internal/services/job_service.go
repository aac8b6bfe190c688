package services

import (
	"github.com/sjperalta/gestor-negocios-api/internal/jobs"
)

// WorkerStatsProvider reports background worker activity
type WorkerStatsProvider interface {
	GetStats() jobs.WorkerStats
}

type JobService struct {
	worker WorkerStatsProvider
}

func NewJobService(worker WorkerStatsProvider) *JobService {
	return &JobService{
		worker: worker,
	}
}

// GetStatus returns the worker counters; notification deliveries run as async jobs
func (s *JobService) GetStatus() jobs.WorkerStats {
	return s.worker.GetStats()
}
