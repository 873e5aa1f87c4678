package queries

import (
	"errors"

	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/guard"
)

var ErrGetJobDetailQueryIsNotConstructed = errors.New(
	"GetJobDetailQuery must be created via NewGetJobDetailQuery constructor",
)

// GetJobDetailQuery retrieves a single job with its assignment, if any.
type GetJobDetailQuery struct {
	jobID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetJobDetailQuery creates a query for the given job identifier.
func NewGetJobDetailQuery(jobID kernel.ID) (GetJobDetailQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobDetailQuery{}, err
	}

	return GetJobDetailQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// JobID returns the identifier of the job being queried.
func (q GetJobDetailQuery) JobID() kernel.ID {
	return q.jobID
}

// Validate ensures the query was created through the constructor.
func (q GetJobDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetJobDetailQueryIsNotConstructed)
}

// JobDetailResponse is the job detail read model. Assignment is nil for
// open jobs; when present its timestamps are rendered in the assigned
// inspector's timezone.
type JobDetailResponse struct {
	ID          int64
	Title       string
	Description *string
	Status      string
	CreatedAt   string
	Assignment  *AssignmentResponse
}

// AssignmentResponse is the embedded assignment of a job detail.
type AssignmentResponse struct {
	ID            int64
	InspectorID   int64
	InspectorName string
	Timezone      string
	ScheduledAt   string
	CompletedAt   *string
	Assessment    *string
}
