package queries

import (
	"errors"

	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/guard"
)

var ErrGetInspectorScheduleQueryIsNotConstructed = errors.New(
	"GetInspectorScheduleQuery must be created via NewGetInspectorScheduleQuery constructor",
)

// GetInspectorScheduleQuery retrieves all assignments of one inspector.
type GetInspectorScheduleQuery struct {
	inspectorID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetInspectorScheduleQuery creates a query for the given inspector
// identifier.
func NewGetInspectorScheduleQuery(inspectorID kernel.ID) (GetInspectorScheduleQuery, error) {
	if err := inspectorID.Validate(); err != nil {
		return GetInspectorScheduleQuery{}, err
	}

	return GetInspectorScheduleQuery{
		inspectorID: inspectorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// InspectorID returns the identifier of the inspector being queried.
func (q GetInspectorScheduleQuery) InspectorID() kernel.ID {
	return q.inspectorID
}

// Validate ensures the query was created through the constructor.
func (q GetInspectorScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetInspectorScheduleQueryIsNotConstructed)
}

// InspectorScheduleResponse is the schedule read model: the inspector's
// assignments ordered by scheduled time, each rendered in the
// inspector's own timezone.
type InspectorScheduleResponse struct {
	InspectorID int64
	Timezone    string
	Assignments []ScheduleItemResponse
}

// ScheduleItemResponse is one assignment of an inspector's schedule.
type ScheduleItemResponse struct {
	ID          int64
	JobID       int64
	JobTitle    string
	ScheduledAt string
	CompletedAt *string
	Assessment  *string
}
