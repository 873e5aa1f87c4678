package commands

import (
	"inspection/internal/core/domain/model/assignment"
	"inspection/internal/core/domain/model/job"
	"inspection/internal/core/domain/model/kernel"
)

// AssignmentView is the write-model result of the assign and complete
// operations: the assignment with both timestamps rendered in the assigned
// inspector's local timezone, plus the owning job's resulting status.
type AssignmentView struct {
	ID          int64
	JobID       int64
	InspectorID int64
	JobStatus   string
	ScheduledAt string
	CompletedAt *string
	Assessment  *string
}

// newAssignmentView renders an assignment for the given inspector timezone.
// Persisted instants are UTC; rendering localizes them for the response.
func newAssignmentView(a *assignment.Assignment, j *job.Job, tz kernel.Timezone) AssignmentView {
	view := AssignmentView{
		ID:          a.ID().Value(),
		JobID:       a.JobID().Value(),
		InspectorID: a.InspectorID().Value(),
		JobStatus:   j.Status().String(),
		ScheduledAt: tz.Format(a.ScheduledAt()),
		Assessment:  a.Assessment(),
	}

	if completedAt := a.CompletedAt(); completedAt != nil {
		text := tz.Format(*completedAt)
		view.CompletedAt = &text
	}

	return view
}
