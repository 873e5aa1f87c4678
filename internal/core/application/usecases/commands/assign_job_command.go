package commands

import (
	"errors"
	"strings"

	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"
	"inspection/internal/pkg/guard"
)

// AssignJobCommand requests that an open job be assigned to an inspector,
// scheduled at a moment expressed in the inspector's local timezone.
type AssignJobCommand struct {
	jobID       kernel.ID
	inspectorID kernel.ID
	scheduleAt  string

	guard guard.ConstructorGuard
}

// NewAssignJobCommand creates a valid command or returns an error.
// scheduleAt is the local wall-clock text as supplied by the caller;
// it is interpreted against the inspector's timezone by the handler.
func NewAssignJobCommand(jobID kernel.ID, inspectorID kernel.ID, scheduleAt string) (AssignJobCommand, error) {
	err := errors.Join(
		jobID.Validate(),
		inspectorID.Validate(),
	)
	if err != nil {
		return AssignJobCommand{}, err
	}
	if strings.TrimSpace(scheduleAt) == "" {
		return AssignJobCommand{}, errs.NewValueIsRequiredError("scheduleAt")
	}

	return AssignJobCommand{
		jobID:       jobID,
		inspectorID: inspectorID,
		scheduleAt:  scheduleAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AssignJobCommand) JobID() kernel.ID {
	return c.jobID
}

func (c AssignJobCommand) InspectorID() kernel.ID {
	return c.inspectorID
}

func (c AssignJobCommand) ScheduleAt() string {
	return c.scheduleAt
}

func (c AssignJobCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("assign job command must be created via NewAssignJobCommand"))
}
