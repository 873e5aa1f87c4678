package commands

import (
	"inspection/internal/pkg/errs"
	"inspection/internal/pkg/guard"
)

// CreateInspectorCommand requests registration of a new inspector.
type CreateInspectorCommand struct {
	name     string
	timezone string
	email    *string

	guard guard.ConstructorGuard
}

// NewCreateInspectorCommand creates a valid command or returns an error.
// Name, timezone and email rules are enforced by the inspector aggregate;
// the command only carries the raw input.
func NewCreateInspectorCommand(name string, timezone string, email *string) (CreateInspectorCommand, error) {
	return CreateInspectorCommand{
		name:     name,
		timezone: timezone,
		email:    email,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateInspectorCommand) Name() string {
	return c.name
}

func (c CreateInspectorCommand) Timezone() string {
	return c.timezone
}

func (c CreateInspectorCommand) Email() *string {
	return c.email
}

func (c CreateInspectorCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("create inspector command must be created via NewCreateInspectorCommand"))
}
