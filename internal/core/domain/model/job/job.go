package job

import (
	"errors"
	"strings"
	"time"

	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"
	"inspection/internal/pkg/guard"
)

// maxTitleLength is the upper bound on job titles, matching the storage column.
const maxTitleLength = 255

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through the NewJob or RestoreJob factory functions.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob")

	// ErrTitleIsRequired is returned when attempting to create a job without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

	// ErrIDAlreadyAssigned is returned when attaching an identifier to a job
	// that already has one. Identifiers are attached exactly once, by storage.
	ErrIDAlreadyAssigned = errs.NewConflictError("job already has an identifier")
)

// Job represents a unit of inspection work. It is the aggregate root that
// manages the job lifecycle from creation through assignment to completion.
//
// Job follows these invariants:
//   - Title is non-empty and at most 255 characters
//   - Creation timestamp is UTC, set once, immutable
//   - Status is Open if and only if no assignment references the job
//   - Status is Assigned or Completed if and only if exactly one
//     assignment exists; the job owns that assignment's identifier
//   - Status transitions follow Open -> Assigned -> Completed
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Job struct {
	// id is the storage-assigned identifier, zero until first persisted
	id kernel.ID

	// title is the short human-readable name of the inspection work
	title string

	// description optionally elaborates on the work to perform
	description *string

	// status is the current state in the job lifecycle
	status Status

	// assignmentID references the owned assignment (nil while Open)
	assignmentID *kernel.ID

	// createdAt is the UTC creation instant, immutable after construction
	createdAt time.Time

	// guard ensures the job was created via a factory function
	guard guard.ConstructorGuard
}

// NewJob creates a new Job in Open status with validation. The creation
// timestamp is captured once, in UTC. The identifier is left unassigned
// until the storage adapter attaches it on first save.
func NewJob(title string, description *string) (*Job, error) {
	j := &Job{
		status:    Open,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := j.setTitle(title); err != nil {
		return nil, err
	}
	j.description = description

	return j, nil
}

// RestoreJob reconstructs a Job from persistence. All fields are validated,
// including the consistency between status and assignment presence.
func RestoreJob(
	id kernel.ID,
	title string,
	description *string,
	status Status,
	assignmentID *kernel.ID,
	createdAt time.Time,
) (*Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveAssignment(assignmentID != nil); err != nil {
		return nil, err
	}

	j := &Job{
		id:           id,
		status:       status,
		assignmentID: assignmentID,
		createdAt:    createdAt.UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := j.setTitle(title); err != nil {
		return nil, err
	}
	j.description = description

	return j, nil
}

// Validate ensures the Job instance was properly constructed through a
// factory function. Called when reconstructing jobs from persistence and
// before any write.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// IsEqual compares two jobs by their identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's identifier. Zero until the job is first persisted.
func (j *Job) ID() kernel.ID {
	return j.id
}

// Title returns the job title.
func (j *Job) Title() string {
	return j.title
}

// Description returns the optional job description.
// Returns nil when no description was provided.
func (j *Job) Description() *string {
	return j.description
}

// Status returns the current status of the job.
func (j *Job) Status() Status {
	return j.status
}

// CreatedAt returns the UTC creation instant.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// AssignmentID returns the identifier of the owned assignment.
// Returns nil while the job is Open.
func (j *Job) AssignmentID() *kernel.ID {
	return j.assignmentID
}

// AttachID attaches the storage-assigned identifier. Attaching is
// single-shot; a second attempt fails.
func (j *Job) AttachID(id kernel.ID) error {
	if j.id.IsAssigned() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

// Assign binds the job to the given assignment and transitions the status
// to Assigned.
//
// Business rules:
//   - The job must be Open; any other status is a conflict
//   - The job must not already own an assignment, even if the status
//     bookkeeping were inconsistent
//   - The assignment identifier must be valid
func (j *Job) Assign(assignmentID kernel.ID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	if j.assignmentID != nil {
		return errs.NewConflictError("job already has an assignment")
	}

	newStatus, err := j.status.Assign()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.assignmentID = &assignmentID
	return nil
}

// Complete marks the job as completed.
//
// Business rules:
//   - The job must be Assigned; any other status is a conflict
//   - Completed is a final state with no further transitions
func (j *Job) Complete() error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// setTitle validates and sets the job title.
// The title must be non-blank and at most 255 characters.
func (j *Job) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleIsRequired
	}
	if len(title) > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("titleLength", len(title), 1, maxTitleLength)
	}
	j.title = title
	return nil
}
