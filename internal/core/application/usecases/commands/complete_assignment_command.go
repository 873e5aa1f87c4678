package commands

import (
	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"
	"inspection/internal/pkg/guard"
)

// CompleteAssignmentCommand requests completion of an assignment by the
// inspector it belongs to. The assignment is addressed either directly by
// its own identifier or through the job it covers; exactly one of the two
// is set.
type CompleteAssignmentCommand struct {
	assignmentID *kernel.ID
	jobID        *kernel.ID
	inspectorID  kernel.ID
	completedAt  *string
	assessment   *string

	guard guard.ConstructorGuard
}

// NewCompleteAssignmentCommand creates a command addressing the assignment
// by its own identifier. completedAt, when present, is local wall-clock
// text in the inspector's timezone; nil means "now".
func NewCompleteAssignmentCommand(assignmentID kernel.ID, inspectorID kernel.ID, completedAt *string, assessment *string) (CompleteAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return CompleteAssignmentCommand{}, err
	}
	if err := inspectorID.Validate(); err != nil {
		return CompleteAssignmentCommand{}, err
	}

	return CompleteAssignmentCommand{
		assignmentID: &assignmentID,
		inspectorID:  inspectorID,
		completedAt:  completedAt,
		assessment:   assessment,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// NewCompleteAssignmentCommandByJob creates a command addressing the
// assignment through the job it covers.
func NewCompleteAssignmentCommandByJob(jobID kernel.ID, inspectorID kernel.ID, completedAt *string, assessment *string) (CompleteAssignmentCommand, error) {
	if err := jobID.Validate(); err != nil {
		return CompleteAssignmentCommand{}, err
	}
	if err := inspectorID.Validate(); err != nil {
		return CompleteAssignmentCommand{}, err
	}

	return CompleteAssignmentCommand{
		jobID:       &jobID,
		inspectorID: inspectorID,
		completedAt: completedAt,
		assessment:  assessment,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteAssignmentCommand) AssignmentID() *kernel.ID {
	return c.assignmentID
}

func (c CompleteAssignmentCommand) JobID() *kernel.ID {
	return c.jobID
}

func (c CompleteAssignmentCommand) InspectorID() kernel.ID {
	return c.inspectorID
}

func (c CompleteAssignmentCommand) CompletedAt() *string {
	return c.completedAt
}

func (c CompleteAssignmentCommand) Assessment() *string {
	return c.assessment
}

func (c CompleteAssignmentCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("complete assignment command must be created via its constructors"))
}
