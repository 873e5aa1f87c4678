// Package ports defines repository interfaces for the inspection domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"inspection/internal/core/domain/model/job"
	"inspection/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate to storage and attaches the
	// storage-generated identifier to the aggregate.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	// The job must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its identifier.
	// Returns the complete job with its current status and assignment reference.
	Get(ctx context.Context, id kernel.ID) (*job.Job, error)
}
