package ports

import (
	"context"

	"inspection/internal/core/domain/model/assignment"
	"inspection/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment aggregates.
//
// Storage enforces "at most one assignment per job" with a uniqueness
// constraint on the job reference; the loser of a concurrent assign race
// surfaces from Add as a conflict, closing the window that application-level
// status checks alone cannot.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage and attaches the
	// storage-generated identifier to the aggregate. A duplicate job
	// reference surfaces as a conflict.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate,
	// which in this domain happens exactly once, at completion.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its identifier.
	Get(ctx context.Context, id kernel.ID) (*assignment.Assignment, error)

	// GetByJobID retrieves the assignment owned by the given job.
	// Returns an object-not-found error when the job has no assignment.
	GetByJobID(ctx context.Context, jobID kernel.ID) (*assignment.Assignment, error)
}
