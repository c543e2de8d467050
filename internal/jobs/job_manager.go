package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderSchedulingJob *OrderSchedulingJob
}

// NewJobManager creates a job manager. schedulingSpec is the cron expression of the
// order scheduling job.
func NewJobManager(
	scheduleHandler scheduleOrderDeliveriesHandler,
	schedulingSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderSchedulingJob: NewOrderSchedulingJob(scheduleHandler, schedulingSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderSchedulingJob.Start(); err != nil {
		return fmt.Errorf("failed to start order scheduling job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running passes.
func (jm *JobManager) StopAll() {
	jm.orderSchedulingJob.Stop()
}
