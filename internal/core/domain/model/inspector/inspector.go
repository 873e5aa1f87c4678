// Package inspector provides the Inspector aggregate: the actor who can be
// assigned to and must complete inspection jobs. Inspectors are created
// independently of jobs and persist indefinitely; each carries one of the
// allowed timezones, which drives all local-time parsing and rendering for
// their assignments.
package inspector

import (
	"errors"
	"fmt"
	"strings"

	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"
	"inspection/internal/pkg/guard"
)

var (
	// ErrInspectorIsNotConstructed is returned when an Inspector instance was
	// not created through NewInspector or RestoreInspector.
	ErrInspectorIsNotConstructed = errors.New("Inspector must be created via NewInspector or RestoreInspector")

	// ErrNameIsRequired is returned when attempting to create an inspector without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrIDAlreadyAssigned is returned when attaching an identifier to an
	// inspector that already has one.
	ErrIDAlreadyAssigned = errs.NewConflictError("inspector already has an identifier")
)

// Inspector represents an inspector (a.k.a. auditor) in the system.
// It is an aggregate root holding the inspector's identity, display name,
// timezone, and an optional email address that, when present, is unique
// across inspectors.
//
// The constraint "at most one active assignment" lives on the job side,
// not here: an inspector may hold many assignments over time.
type Inspector struct {
	// id is the storage-assigned identifier, zero until first persisted
	id kernel.ID

	// name is the human-readable name of the inspector
	name string

	// timezone is the inspector's home timezone from the allow-list
	timezone kernel.Timezone

	// email is optional; when present it must look like an address and be unique
	email *string

	// guard ensures the inspector was created via a factory function
	guard guard.ConstructorGuard
}

// NewInspector creates a new Inspector with validation. The identifier is
// left unassigned until the storage adapter attaches it on first save.
func NewInspector(name string, timezone kernel.Timezone, email *string) (*Inspector, error) {
	i := &Inspector{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setName(name),
		i.setTimezone(timezone),
		i.setEmail(email),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// RestoreInspector reconstructs an Inspector from persistence.
func RestoreInspector(id kernel.ID, name string, timezone kernel.Timezone, email *string) (*Inspector, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	i, err := NewInspector(name, timezone, email)
	if err != nil {
		return nil, err
	}
	i.id = id

	return i, nil
}

// Validate ensures the Inspector instance was properly constructed through
// a factory function.
func (i *Inspector) Validate() error {
	if i == nil {
		return ErrInspectorIsNotConstructed
	}
	return i.guard.Validate(ErrInspectorIsNotConstructed)
}

// IsEqual compares two inspectors by their identifiers.
func (i *Inspector) IsEqual(other *Inspector) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the inspector's identifier. Zero until first persisted.
func (i *Inspector) ID() kernel.ID {
	return i.id
}

// Name returns the inspector's display name.
func (i *Inspector) Name() string {
	return i.name
}

// Timezone returns the inspector's timezone.
func (i *Inspector) Timezone() kernel.Timezone {
	return i.timezone
}

// Email returns the optional email address. Returns nil when absent.
func (i *Inspector) Email() *string {
	return i.email
}

// AttachID attaches the storage-assigned identifier. Single-shot.
func (i *Inspector) AttachID(id kernel.ID) error {
	if i.id.IsAssigned() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setName validates and sets the inspector's name.
func (i *Inspector) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

// setTimezone validates and sets the inspector's timezone.
func (i *Inspector) setTimezone(timezone kernel.Timezone) error {
	if err := timezone.Validate(); err != nil {
		return err
	}
	i.timezone = timezone
	return nil
}

// setEmail validates and sets the optional email address.
func (i *Inspector) setEmail(email *string) error {
	if email == nil {
		return nil
	}
	if !strings.Contains(*email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", *email))
	}
	i.email = email
	return nil
}
