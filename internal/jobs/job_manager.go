package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions of the jobs. Empty values select the
// job defaults.
type Schedules struct {
	Resync   string
	LowStock string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	resyncJob   *ResyncJob
	lowStockJob *LowStockJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	resync resyncHandler,
	lowStock lowStockHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		resyncJob:   NewResyncJob(resync, schedules.Resync, logger),
		lowStockJob: NewLowStockJob(lowStock, schedules.LowStock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.resyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start resync job: %w", err)
	}

	if err := jm.lowStockJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.resyncJob.Stop()
		return fmt.Errorf("failed to start low stock job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockJob.Stop()
	jm.resyncJob.Stop()
}
