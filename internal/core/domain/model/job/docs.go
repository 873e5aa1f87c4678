// Package job provides domain entities and business logic for inspection
// job management. It implements the Job aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Job: The aggregate root that manages job identity, properties, and lifecycle
//   - Status: A state machine that enforces valid job status transitions
//
// Key business rules:
//   - Jobs must have a non-empty title of at most 255 characters
//   - Job status follows a strict workflow: Open -> Assigned -> Completed
//   - A job owns at most one assignment for its entire lifetime; there is
//     no reassignment and no path back to Open
//   - Status and assignment presence must always agree: Open means no
//     assignment, Assigned and Completed mean exactly one
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package job
