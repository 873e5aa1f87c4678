package queries

import (
	"context"

	"inspection/internal/core/domain/model/job"

	"gorm.io/gorm"
)

// GetScheduleDigestQueryHandler counts jobs per status from the database.
type GetScheduleDigestQueryHandler struct {
	db *gorm.DB
}

// NewGetScheduleDigestQueryHandler creates a handler for digest queries.
func NewGetScheduleDigestQueryHandler(db *gorm.DB) GetScheduleDigestQueryHandler {
	return GetScheduleDigestQueryHandler{db: db}
}

// Handle executes the digest query. Statuses with no jobs report zero.
func (h GetScheduleDigestQueryHandler) Handle(
	ctx context.Context,
	query GetScheduleDigestQuery,
) (ScheduleDigestResponse, error) {
	if err := query.Validate(); err != nil {
		return ScheduleDigestResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM jobs
		GROUP BY status
	`).Rows()
	if err != nil {
		return ScheduleDigestResponse{}, err
	}
	defer rows.Close()

	var digest ScheduleDigestResponse
	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return ScheduleDigestResponse{}, err
		}

		switch status {
		case job.Open.String():
			digest.Open = count
		case job.Assigned.String():
			digest.Assigned = count
		case job.Completed.String():
			digest.Completed = count
		}
	}

	if err = rows.Err(); err != nil {
		return ScheduleDigestResponse{}, err
	}

	return digest, nil
}
