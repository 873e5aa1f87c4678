package ports

import (
	"context"

	"inspection/internal/core/domain/model/inspector"
	"inspection/internal/core/domain/model/kernel"
)

// InspectorRepository defines the persistence contract for inspector aggregates.
// Inspectors are created independently of jobs and are never mutated after
// creation, so the contract has no Update.
type InspectorRepository interface {
	// Add persists a new inspector aggregate to storage and attaches the
	// storage-generated identifier to the aggregate. Email uniqueness is
	// enforced by storage; a duplicate surfaces as a conflict.
	Add(ctx context.Context, aggregate *inspector.Inspector) error

	// Get retrieves an inspector aggregate by its identifier.
	Get(ctx context.Context, id kernel.ID) (*inspector.Inspector, error)
}
