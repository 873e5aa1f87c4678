package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetInspectorScheduleQueryHandler retrieves an inspector's schedule
// from the database.
type GetInspectorScheduleQueryHandler struct {
	db *gorm.DB
}

// NewGetInspectorScheduleQueryHandler creates a handler for schedule queries.
func NewGetInspectorScheduleQueryHandler(db *gorm.DB) GetInspectorScheduleQueryHandler {
	return GetInspectorScheduleQueryHandler{db: db}
}

// Handle executes the schedule query. Returns an object-not-found error
// for an unknown inspector; an inspector with no assignments yields an
// empty schedule. Timestamps are rendered in the inspector's timezone,
// ordered by scheduled time ascending.
func (h GetInspectorScheduleQueryHandler) Handle(
	ctx context.Context,
	query GetInspectorScheduleQuery,
) (InspectorScheduleResponse, error) {
	if err := query.Validate(); err != nil {
		return InspectorScheduleResponse{}, err
	}

	tx := h.db.WithContext(ctx)

	var timezoneName string
	err := tx.Raw(`
		SELECT timezone FROM inspectors WHERE id = ?
	`, query.InspectorID().Value()).Row().Scan(&timezoneName)
	if errors.Is(err, sql.ErrNoRows) {
		return InspectorScheduleResponse{}, errs.NewObjectNotFoundError("inspectorId", query.InspectorID().Value())
	}
	if err != nil {
		return InspectorScheduleResponse{}, err
	}

	timezone, err := kernel.NewTimezone(timezoneName)
	if err != nil {
		return InspectorScheduleResponse{}, err
	}

	rows, err := tx.Raw(`
		SELECT
			a.id,
			a.job_id,
			j.title,
			a.scheduled_at,
			a.completed_at,
			a.assessment
		FROM assignments a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.inspector_id = ?
		ORDER BY a.scheduled_at ASC
	`, query.InspectorID().Value()).Rows()
	if err != nil {
		return InspectorScheduleResponse{}, err
	}
	defer rows.Close()

	schedule := InspectorScheduleResponse{
		InspectorID: query.InspectorID().Value(),
		Timezone:    timezone.Name(),
		Assignments: make([]ScheduleItemResponse, 0),
	}

	for rows.Next() {
		var item ScheduleItemResponse
		var scheduledAt time.Time
		var completedAt *time.Time

		err = rows.Scan(
			&item.ID,
			&item.JobID,
			&item.JobTitle,
			&scheduledAt,
			&completedAt,
			&item.Assessment,
		)
		if err != nil {
			return InspectorScheduleResponse{}, err
		}

		item.ScheduledAt = timezone.Format(scheduledAt)
		if completedAt != nil {
			text := timezone.Format(*completedAt)
			item.CompletedAt = &text
		}
		schedule.Assignments = append(schedule.Assignments, item)
	}

	if err = rows.Err(); err != nil {
		return InspectorScheduleResponse{}, err
	}

	return schedule, nil
}
