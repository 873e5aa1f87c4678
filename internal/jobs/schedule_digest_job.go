package jobs

import (
	"context"
	"log/slog"

	"inspection/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ScheduleDigestJob periodically logs a digest of the job backlog.
// Runs every minute so operators can follow open, assigned and
// completed counts without querying the API.
type ScheduleDigestJob struct {
	handler queries.GetScheduleDigestQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewScheduleDigestJob creates a new digest job backed by the
// schedule digest query handler.
func NewScheduleDigestJob(handler queries.GetScheduleDigestQueryHandler, logger *slog.Logger) *ScheduleDigestJob {
	return &ScheduleDigestJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "schedule_digest_job"),
	}
}

// Start begins the digest job, running at the top of every minute.
func (j *ScheduleDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetScheduleDigestQuery()

		digest, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Schedule digest job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Schedule digest",
			"open", digest.Open,
			"assigned", digest.Assigned,
			"completed", digest.Completed,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Schedule digest job started (running every minute)")
	return nil
}

// Stop stops the digest job.
func (j *ScheduleDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Schedule digest job stopped")
}
