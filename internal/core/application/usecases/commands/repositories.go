// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"inspection/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// InspectorRepoFactory provides access to the inspector repository within a transaction.
	InspectorRepoFactory interface {
		InspectorRepository() ports.InspectorRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// JobUoW manages transactions for job-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// InspectorUoW manages transactions for inspector-only operations.
	InspectorUoW interface {
		TxManager
		InspectorRepoFactory
	}

	// InspectorUoWFactory creates new inspector unit of work instances.
	InspectorUoWFactory interface {
		Create() InspectorUoW
	}

	// UoW manages transactions across job, inspector, and assignment
	// aggregates. Used by the assign and complete operations, which must
	// update the job and its assignment atomically: both writes succeed or
	// both fail, with no partial state visible to later reads.
	UoW interface {
		TxManager
		JobRepoFactory
		InspectorRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
