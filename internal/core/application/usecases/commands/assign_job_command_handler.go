package commands

import (
	"context"
	"errors"

	"inspection/internal/core/domain/model/assignment"
	"inspection/internal/pkg/errs"
)

// AssignJobCommandHandler assigns jobs to inspectors.
type AssignJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignJobCommandHandler creates a handler for job assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignJobCommandHandler(uowFactory UoWFactory) AssignJobCommandHandler {
	return AssignJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the job to the inspector inside one unit of work.
//
// The scheduled moment arrives as local wall-clock text and is converted
// to UTC through the inspector's timezone before the assignment is stored.
// A job that already carries an assignment is rejected with a conflict;
// the storage layer's unique index on the job reference backs this up
// under concurrent assigns.
func (h AssignJobCommandHandler) Handle(ctx context.Context, cmd AssignJobCommand) (AssignmentView, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobAggregate, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return AssignmentView{}, err
	}

	inspector, err := uow.InspectorRepository().Get(ctx, cmd.InspectorID())
	if err != nil {
		return AssignmentView{}, err
	}

	if _, err := uow.AssignmentRepository().GetByJobID(ctx, cmd.JobID()); err == nil {
		return AssignmentView{}, errs.NewConflictError("job is already assigned")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return AssignmentView{}, err
	}

	timezone := inspector.Timezone()
	scheduledAt, err := timezone.ToUTC(cmd.ScheduleAt())
	if err != nil {
		return AssignmentView{}, err
	}

	newAssignment, err := assignment.NewAssignment(jobAggregate.ID(), inspector.ID(), scheduledAt)
	if err != nil {
		return AssignmentView{}, err
	}

	if err := uow.AssignmentRepository().Add(ctx, newAssignment); err != nil {
		return AssignmentView{}, err
	}

	if err := jobAggregate.Assign(newAssignment.ID()); err != nil {
		return AssignmentView{}, err
	}

	if err := uow.JobRepository().Update(ctx, jobAggregate); err != nil {
		return AssignmentView{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return AssignmentView{}, err
	}

	return newAssignmentView(newAssignment, jobAggregate, timezone), nil
}
