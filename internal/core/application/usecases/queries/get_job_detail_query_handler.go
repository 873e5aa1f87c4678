package queries

import (
	"context"
	"time"

	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetJobDetailQueryHandler retrieves one job with its assignment from
// the database.
type GetJobDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetJobDetailQueryHandler creates a handler for job detail queries.
func NewGetJobDetailQueryHandler(db *gorm.DB) GetJobDetailQueryHandler {
	return GetJobDetailQueryHandler{db: db}
}

// Handle executes the job detail query. Returns an object-not-found
// error when no job exists under the identifier. Assignment timestamps
// are rendered in the assigned inspector's timezone.
func (h GetJobDetailQueryHandler) Handle(ctx context.Context, query GetJobDetailQuery) (JobDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return JobDetailResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.title,
			j.description,
			j.status,
			j.created_at,
			a.id,
			a.inspector_id,
			a.scheduled_at,
			a.completed_at,
			a.assessment,
			i.name,
			i.timezone
		FROM jobs j
		LEFT JOIN assignments a ON a.job_id = j.id
		LEFT JOIN inspectors i ON i.id = a.inspector_id
		WHERE j.id = ?
	`, query.JobID().Value()).Rows()
	if err != nil {
		return JobDetailResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return JobDetailResponse{}, err
		}
		return JobDetailResponse{}, errs.NewObjectNotFoundError("jobId", query.JobID().Value())
	}

	var detail JobDetailResponse
	var createdAt time.Time
	var assignmentID, inspectorID *int64
	var scheduledAt, completedAt *time.Time
	var assessment, inspectorName, timezoneName *string

	err = rows.Scan(
		&detail.ID,
		&detail.Title,
		&detail.Description,
		&detail.Status,
		&createdAt,
		&assignmentID,
		&inspectorID,
		&scheduledAt,
		&completedAt,
		&assessment,
		&inspectorName,
		&timezoneName,
	)
	if err != nil {
		return JobDetailResponse{}, err
	}

	detail.CreatedAt = kernel.FormatUTC(createdAt)

	if assignmentID != nil {
		timezone, tzErr := kernel.NewTimezone(*timezoneName)
		if tzErr != nil {
			return JobDetailResponse{}, tzErr
		}

		assignmentResp := AssignmentResponse{
			ID:            *assignmentID,
			InspectorID:   *inspectorID,
			InspectorName: *inspectorName,
			Timezone:      timezone.Name(),
			ScheduledAt:   timezone.Format(*scheduledAt),
			Assessment:    assessment,
		}
		if completedAt != nil {
			text := timezone.Format(*completedAt)
			assignmentResp.CompletedAt = &text
		}
		detail.Assignment = &assignmentResp
	}

	return detail, nil
}
