package queries

import (
	"errors"

	"inspection/internal/pkg/guard"
)

var ErrGetScheduleDigestQueryIsNotConstructed = errors.New(
	"GetScheduleDigestQuery must be created via NewGetScheduleDigestQuery constructor",
)

// GetScheduleDigestQuery summarizes the job backlog by status.
// Consumed by the periodic digest job for operational logging.
type GetScheduleDigestQuery struct {
	guard guard.ConstructorGuard
}

// NewGetScheduleDigestQuery creates a digest query.
// This is a parameterless query counting jobs per status.
func NewGetScheduleDigestQuery() GetScheduleDigestQuery {
	return GetScheduleDigestQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetScheduleDigestQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduleDigestQueryIsNotConstructed)
}

// ScheduleDigestResponse holds job counts per lifecycle status.
type ScheduleDigestResponse struct {
	Open      int64
	Assigned  int64
	Completed int64
}
