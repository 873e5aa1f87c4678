package commands

import (
	"context"
	"strings"
	"time"

	"inspection/internal/core/domain/model/assignment"
	"inspection/internal/pkg/errs"
)

// CompleteAssignmentCommandHandler completes assignments on behalf of
// their inspectors.
type CompleteAssignmentCommandHandler struct {
	uowFactory        UoWFactory
	requireAssessment bool
}

// NewCompleteAssignmentCommandHandler creates a handler for completion
// operations. requireAssessment makes a non-blank assessment mandatory
// on completion.
func NewCompleteAssignmentCommandHandler(uowFactory UoWFactory, requireAssessment bool) CompleteAssignmentCommandHandler {
	return CompleteAssignmentCommandHandler{
		uowFactory:        uowFactory,
		requireAssessment: requireAssessment,
	}
}

// Handle completes the assignment and its job inside one unit of work.
//
// Only the assigned inspector may complete; anyone else gets a conflict,
// not a not-found, so the existence of the assignment is not hidden.
// A caller-supplied completion time is local wall-clock text converted
// to UTC through the inspector's timezone; absent that, the server clock
// provides the instant.
func (h CompleteAssignmentCommandHandler) Handle(ctx context.Context, cmd CompleteAssignmentCommand) (AssignmentView, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentView{}, err
	}

	if h.requireAssessment && (cmd.Assessment() == nil || strings.TrimSpace(*cmd.Assessment()) == "") {
		return AssignmentView{}, errs.NewValueIsRequiredError("assessment")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentAggregate, err := h.resolveAssignment(ctx, uow, cmd)
	if err != nil {
		return AssignmentView{}, err
	}

	jobAggregate, err := uow.JobRepository().Get(ctx, assignmentAggregate.JobID())
	if err != nil {
		return AssignmentView{}, err
	}

	if assignmentAggregate.IsCompleted() {
		return AssignmentView{}, errs.NewConflictError("assignment is already completed")
	}

	if !assignmentAggregate.BelongsTo(cmd.InspectorID()) {
		return AssignmentView{}, errs.NewConflictError("only the assigned inspector can complete this job")
	}

	inspector, err := uow.InspectorRepository().Get(ctx, assignmentAggregate.InspectorID())
	if err != nil {
		return AssignmentView{}, err
	}
	timezone := inspector.Timezone()

	completedAt := time.Now().UTC()
	if cmd.CompletedAt() != nil {
		completedAt, err = timezone.ToUTC(*cmd.CompletedAt())
		if err != nil {
			return AssignmentView{}, err
		}
	}

	if err := assignmentAggregate.Complete(completedAt, cmd.Assessment()); err != nil {
		return AssignmentView{}, err
	}

	if err := jobAggregate.Complete(); err != nil {
		return AssignmentView{}, err
	}

	if err := uow.AssignmentRepository().Update(ctx, assignmentAggregate); err != nil {
		return AssignmentView{}, err
	}

	if err := uow.JobRepository().Update(ctx, jobAggregate); err != nil {
		return AssignmentView{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return AssignmentView{}, err
	}

	return newAssignmentView(assignmentAggregate, jobAggregate, timezone), nil
}

func (h CompleteAssignmentCommandHandler) resolveAssignment(ctx context.Context, uow UoW, cmd CompleteAssignmentCommand) (*assignment.Assignment, error) {
	if assignmentID := cmd.AssignmentID(); assignmentID != nil {
		return uow.AssignmentRepository().Get(ctx, *assignmentID)
	}
	return uow.AssignmentRepository().GetByJobID(ctx, *cmd.JobID())
}
