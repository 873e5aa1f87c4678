package commands

import (
	"context"

	"inspection/internal/core/domain/model/job"
	"inspection/internal/core/domain/model/kernel"
)

// JobView is the write-model result of job creation. createdAt is UTC,
// rendered with an explicit zero offset.
type JobView struct {
	ID          int64
	Title       string
	Description *string
	Status      string
	CreatedAt   string
}

// CreateJobCommandHandler registers new inspection jobs.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
// Requires a JobUoWFactory for transactional persistence.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates an open job and persists it.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (JobView, error) {
	if err := cmd.Validate(); err != nil {
		return JobView{}, err
	}

	newJob, err := job.NewJob(cmd.Title(), cmd.Description())
	if err != nil {
		return JobView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return JobView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.JobRepository().Add(ctx, newJob); err != nil {
		return JobView{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return JobView{}, err
	}

	return JobView{
		ID:          newJob.ID().Value(),
		Title:       newJob.Title(),
		Description: newJob.Description(),
		Status:      newJob.Status().String(),
		CreatedAt:   kernel.FormatUTC(newJob.CreatedAt()),
	}, nil
}
