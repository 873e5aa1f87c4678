// Package assignment provides the Assignment aggregate: the binding of
// exactly one job to exactly one inspector with a scheduled time and an
// optional completion record.
//
// An assignment is created atomically with the owning job's transition to
// Assigned and is mutated exactly once, at completion. Both timestamps are
// stored canonically in UTC; rendering in the inspector's local timezone
// happens at the read boundary. Assignments are never deleted in normal
// operation.
package assignment

import (
	"errors"
	"time"

	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"
	"inspection/internal/pkg/guard"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance
	// was not created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment")

	// ErrScheduledAtIsRequired is returned when attempting to create an
	// assignment without a scheduled time.
	ErrScheduledAtIsRequired = errs.NewValueIsRequiredError("scheduledAt")

	// ErrAlreadyCompleted is returned on a second completion attempt.
	// Completion is single-shot and marks the terminal state.
	ErrAlreadyCompleted = errs.NewConflictError("assignment is already completed")

	// ErrIDAlreadyAssigned is returned when attaching an identifier to an
	// assignment that already has one.
	ErrIDAlreadyAssigned = errs.NewConflictError("assignment already has an identifier")
)

// Assignment binds one job to one inspector with a scheduled time.
// It holds non-owning references (plain identifiers) to its job and
// inspector; cross-entity consistency is enforced by the command handlers
// inside a single transaction.
//
// Invariants:
//   - Job and inspector identifiers are set at construction and immutable
//   - The scheduled time is required, stored in UTC, immutable once set
//   - The completion time and assessment are nil until completion, which
//     happens at most once
//
// Whether the completion time must be chronologically after the scheduled
// time is deliberately not validated, matching the system this replaces.
type Assignment struct {
	// id is the storage-assigned identifier, zero until first persisted
	id kernel.ID

	// jobID references the owning job (unique per job)
	jobID kernel.ID

	// inspectorID references the inspector who must complete the work
	inspectorID kernel.ID

	// scheduledAt is the UTC instant the inspection is scheduled for
	scheduledAt time.Time

	// completedAt is the UTC completion instant, nil until completed
	completedAt *time.Time

	// assessment is free-text recorded at completion, may stay nil
	assessment *string

	// createdAt is the UTC creation instant
	createdAt time.Time

	// guard ensures the assignment was created via a factory function
	guard guard.ConstructorGuard
}

// NewAssignment creates a new Assignment linking the given job and
// inspector at the given UTC instant. The identifier is left unassigned
// until the storage adapter attaches it on first save.
func NewAssignment(jobID, inspectorID kernel.ID, scheduledAt time.Time) (*Assignment, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}
	if err := inspectorID.Validate(); err != nil {
		return nil, err
	}
	if scheduledAt.IsZero() {
		return nil, ErrScheduledAtIsRequired
	}

	return &Assignment{
		jobID:       jobID,
		inspectorID: inspectorID,
		scheduledAt: scheduledAt.UTC(),
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreAssignment reconstructs an Assignment from persistence.
func RestoreAssignment(
	id, jobID, inspectorID kernel.ID,
	scheduledAt time.Time,
	completedAt *time.Time,
	assessment *string,
	createdAt time.Time,
) (*Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	a, err := NewAssignment(jobID, inspectorID, scheduledAt)
	if err != nil {
		return nil, err
	}

	a.id = id
	a.createdAt = createdAt.UTC()
	if completedAt != nil {
		utc := completedAt.UTC()
		a.completedAt = &utc
	}
	a.assessment = assessment

	return a, nil
}

// Validate ensures the Assignment instance was properly constructed
// through a factory function.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by their identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's identifier. Zero until first persisted.
func (a *Assignment) ID() kernel.ID {
	return a.id
}

// JobID returns the identifier of the owning job.
func (a *Assignment) JobID() kernel.ID {
	return a.jobID
}

// InspectorID returns the identifier of the assigned inspector.
func (a *Assignment) InspectorID() kernel.ID {
	return a.inspectorID
}

// ScheduledAt returns the UTC instant the inspection is scheduled for.
func (a *Assignment) ScheduledAt() time.Time {
	return a.scheduledAt
}

// CompletedAt returns the UTC completion instant, or nil while scheduled.
func (a *Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// Assessment returns the free-text assessment recorded at completion.
// Returns nil while scheduled, and may stay nil after completion.
func (a *Assignment) Assessment() *string {
	return a.assessment
}

// CreatedAt returns the UTC creation instant.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

// IsCompleted reports whether the assignment has been completed.
func (a *Assignment) IsCompleted() bool {
	return a.completedAt != nil
}

// BelongsTo reports whether the assignment is held by the given inspector.
// Only that inspector may complete it.
func (a *Assignment) BelongsTo(inspectorID kernel.ID) bool {
	return a.inspectorID.IsEqual(inspectorID)
}

// AttachID attaches the storage-assigned identifier. Single-shot.
func (a *Assignment) AttachID(id kernel.ID) error {
	if a.id.IsAssigned() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// Complete records the completion instant and assessment and marks the
// terminal state. Completion is single-shot: a second attempt fails with
// a conflict and leaves the assignment unchanged.
func (a *Assignment) Complete(completedAt time.Time, assessment *string) error {
	if a.IsCompleted() {
		return ErrAlreadyCompleted
	}
	if completedAt.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}

	utc := completedAt.UTC()
	a.completedAt = &utc
	a.assessment = assessment
	return nil
}
