package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Every assign/complete operation reads, validates, and writes inside one
// unit of work, so a concurrent second operation on the same job either
// sees the pre-transition state or the post-transition state, never a
// half-applied one.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// JobRepository returns a JobRepository instance bound to the current transaction.
	JobRepository() JobRepository

	// InspectorRepository returns an InspectorRepository instance bound to the current transaction.
	InspectorRepository() InspectorRepository

	// AssignmentRepository returns an AssignmentRepository instance bound to the current transaction.
	AssignmentRepository() AssignmentRepository
}
