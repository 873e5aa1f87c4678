package jobs

import (
	"fmt"
	"log/slog"

	"inspection/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	scheduleDigestJob *ScheduleDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	scheduleDigestHandler queries.GetScheduleDigestQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		scheduleDigestJob: NewScheduleDigestJob(scheduleDigestHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.scheduleDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start schedule digest job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.scheduleDigestJob.Stop()
}
