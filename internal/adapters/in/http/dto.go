package http

import (
	"inspection/internal/core/application/usecases/commands"
	"inspection/internal/core/application/usecases/queries"
)

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateJobRequest is the body of POST /jobs.
type CreateJobRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// CreateInspectorRequest is the body of POST /inspectors.
type CreateInspectorRequest struct {
	Name     string  `json:"name"`
	Timezone string  `json:"timezone"`
	Email    *string `json:"email,omitempty"`
}

// AssignJobRequest is the body of POST /jobs/{id}/assign. ScheduleAt is
// ISO-8601 datetime text interpreted in the inspector's timezone when it
// carries no offset.
type AssignJobRequest struct {
	InspectorID int64  `json:"inspectorId"`
	ScheduleAt  string `json:"scheduleAt"`
}

// CompleteRequest is the body of POST /jobs/{id}/complete and
// POST /assignments/{id}/complete.
type CompleteRequest struct {
	InspectorID int64   `json:"inspectorId"`
	Assessment  *string `json:"assessment,omitempty"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

// Job is a job list item or creation response.
type Job struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// JobList is the body of GET /jobs. The list is wrapped in an items
// object rather than returned as a bare array.
type JobList struct {
	Items []Job `json:"items"`
}

// JobDetail is the body of GET /jobs/{id}.
type JobDetail struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"createdAt"`
	Assignment  *Assignment `json:"assignment,omitempty"`
}

// Assignment is the embedded assignment of a job detail.
type Assignment struct {
	ID            int64   `json:"id"`
	InspectorID   int64   `json:"inspectorId"`
	InspectorName string  `json:"inspectorName"`
	Timezone      string  `json:"timezone"`
	ScheduledAt   string  `json:"scheduledAt"`
	CompletedAt   *string `json:"completedAt,omitempty"`
	Assessment    *string `json:"assessment,omitempty"`
}

// AssignmentResult is the response of the assign and complete operations.
type AssignmentResult struct {
	ID          int64   `json:"id"`
	JobID       int64   `json:"jobId"`
	InspectorID int64   `json:"inspectorId"`
	JobStatus   string  `json:"jobStatus"`
	ScheduledAt string  `json:"scheduledAt"`
	CompletedAt *string `json:"completedAt,omitempty"`
	Assessment  *string `json:"assessment,omitempty"`
}

// Inspector is the response of POST /inspectors.
type Inspector struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Timezone string  `json:"timezone"`
	Email    *string `json:"email,omitempty"`
}

// InspectorSchedule is the body of GET /inspectors/{id}/schedule.
type InspectorSchedule struct {
	InspectorID int64          `json:"inspectorId"`
	Timezone    string         `json:"timezone"`
	Assignments []ScheduleItem `json:"assignments"`
}

// ScheduleItem is one assignment of an inspector schedule.
type ScheduleItem struct {
	ID          int64   `json:"id"`
	JobID       int64   `json:"jobId"`
	JobTitle    string  `json:"jobTitle"`
	ScheduledAt string  `json:"scheduledAt"`
	CompletedAt *string `json:"completedAt,omitempty"`
	Assessment  *string `json:"assessment,omitempty"`
}

func jobFromView(view commands.JobView) Job {
	return Job{
		ID:          view.ID,
		Title:       view.Title,
		Description: view.Description,
		Status:      view.Status,
		CreatedAt:   view.CreatedAt,
	}
}

func jobFromQuery(resp queries.JobResponse) Job {
	return Job{
		ID:          resp.ID,
		Title:       resp.Title,
		Description: resp.Description,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
	}
}

func assignmentResultFromView(view commands.AssignmentView) AssignmentResult {
	return AssignmentResult{
		ID:          view.ID,
		JobID:       view.JobID,
		InspectorID: view.InspectorID,
		JobStatus:   view.JobStatus,
		ScheduledAt: view.ScheduledAt,
		CompletedAt: view.CompletedAt,
		Assessment:  view.Assessment,
	}
}

func jobDetailFromQuery(resp queries.JobDetailResponse) JobDetail {
	detail := JobDetail{
		ID:          resp.ID,
		Title:       resp.Title,
		Description: resp.Description,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
	}
	if resp.Assignment != nil {
		detail.Assignment = &Assignment{
			ID:            resp.Assignment.ID,
			InspectorID:   resp.Assignment.InspectorID,
			InspectorName: resp.Assignment.InspectorName,
			Timezone:      resp.Assignment.Timezone,
			ScheduledAt:   resp.Assignment.ScheduledAt,
			CompletedAt:   resp.Assignment.CompletedAt,
			Assessment:    resp.Assignment.Assessment,
		}
	}
	return detail
}

func scheduleFromQuery(resp queries.InspectorScheduleResponse) InspectorSchedule {
	schedule := InspectorSchedule{
		InspectorID: resp.InspectorID,
		Timezone:    resp.Timezone,
		Assignments: make([]ScheduleItem, 0, len(resp.Assignments)),
	}
	for _, item := range resp.Assignments {
		schedule.Assignments = append(schedule.Assignments, ScheduleItem{
			ID:          item.ID,
			JobID:       item.JobID,
			JobTitle:    item.JobTitle,
			ScheduledAt: item.ScheduledAt,
			CompletedAt: item.CompletedAt,
			Assessment:  item.Assessment,
		})
	}
	return schedule
}
