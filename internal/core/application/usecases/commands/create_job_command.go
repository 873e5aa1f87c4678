package commands

import (
	"inspection/internal/pkg/errs"
	"inspection/internal/pkg/guard"
)

// CreateJobCommand requests registration of a new inspection job.
type CreateJobCommand struct {
	title       string
	description *string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a valid command or returns an error.
// Title rules are enforced by the job aggregate on creation; the command
// only carries the raw input.
func NewCreateJobCommand(title string, description *string) (CreateJobCommand, error) {
	return CreateJobCommand{
		title:       title,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateJobCommand) Title() string {
	return c.title
}

func (c CreateJobCommand) Description() *string {
	return c.description
}

func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("create job command must be created via NewCreateJobCommand"))
}
