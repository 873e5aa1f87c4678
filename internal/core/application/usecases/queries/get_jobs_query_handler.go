package queries

import (
	"context"
	"time"

	"inspection/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetJobsQueryHandler lists inspection jobs from the database.
type GetJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetJobsQueryHandler creates a handler for job list queries.
// Requires a GORM database connection for query execution.
func NewGetJobsQueryHandler(db *gorm.DB) GetJobsQueryHandler {
	return GetJobsQueryHandler{db: db}
}

// Handle executes the job list query. The unfiltered list is ordered by
// id; a status-filtered list is ordered by creation time, newest first.
func (h GetJobsQueryHandler) Handle(ctx context.Context, query GetJobsQuery) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)

	var rowsQuery string
	var args []any
	if status := query.Status(); status != nil {
		rowsQuery = `
			SELECT
				id,
				title,
				description,
				status,
				created_at
			FROM jobs
			WHERE status = ?
			ORDER BY created_at DESC
		`
		args = append(args, status.String())
	} else {
		rowsQuery = `
			SELECT
				id,
				title,
				description,
				status,
				created_at
			FROM jobs
			ORDER BY id
		`
	}

	rows, err := tx.Raw(rowsQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]JobResponse, 0)
	for rows.Next() {
		var jobResp JobResponse
		var createdAt time.Time

		err = rows.Scan(
			&jobResp.ID,
			&jobResp.Title,
			&jobResp.Description,
			&jobResp.Status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		jobResp.CreatedAt = kernel.FormatUTC(createdAt)
		jobs = append(jobs, jobResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
