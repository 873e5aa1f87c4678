// Package queries contains read-only operations over the storage read
// model. Query handlers bypass the domain aggregates and repositories
// and read with raw SQL, per the CQRS split: writes go through commands
// and the unit of work, reads go straight to the database.
package queries

import (
	"errors"

	"inspection/internal/core/domain/model/job"
	"inspection/internal/pkg/errs"
	"inspection/internal/pkg/guard"
)

var ErrGetJobsQueryIsNotConstructed = errors.New(
	"GetJobsQuery must be created via NewGetJobsQuery constructor",
)

// GetJobsQuery lists inspection jobs, optionally filtered by status.
type GetJobsQuery struct {
	status *job.Status

	guard guard.ConstructorGuard
}

// NewGetJobsQuery creates a query listing all jobs, or only those in the
// given status when statusText is non-nil. An unknown status text yields
// a value-is-invalid error.
func NewGetJobsQuery(statusText *string) (GetJobsQuery, error) {
	q := GetJobsQuery{guard: guard.NewConstructorGuard()}

	if statusText != nil {
		status, err := job.StatusFromString(*statusText)
		if err != nil {
			return GetJobsQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		q.status = &status
	}

	return q, nil
}

// Status returns the optional status filter.
func (q GetJobsQuery) Status() *job.Status {
	return q.status
}

// Validate ensures the query was created through the constructor.
func (q GetJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobsQueryIsNotConstructed)
}

// JobResponse is one row of the job list read model. CreatedAt is
// ISO-8601 UTC text with an explicit "+00:00" offset.
type JobResponse struct {
	ID          int64
	Title       string
	Description *string
	Status      string
	CreatedAt   string
}
