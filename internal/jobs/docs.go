// Package jobs provides scheduled background tasks for the inspection service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. ScheduleDigestJob - Runs every minute to log a digest of open, assigned and completed jobs
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(scheduleDigestHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The digest job uses the cron expression "0 * * * * *", firing at the top
// of every minute. The counts come straight from the read model, so a run
// is a single grouped query.
//
// # Error Handling
//
// Digest failures are logged and the next run retries from scratch.
package jobs
