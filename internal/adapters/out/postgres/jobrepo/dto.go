// Package jobrepo provides data transfer objects and mapping functions for
// job persistence. It implements the repository pattern for the job
// aggregate, converting between domain entities and database rows.
package jobrepo

import (
	"time"

	"inspection/internal/core/domain/model/job"
	"inspection/internal/core/domain/model/kernel"
)

// JobDTO represents the database structure for persisting job aggregates.
// Identifiers are generated by the database; status is stored as its
// canonical uppercase text so the read-model queries can filter on it
// directly.
type JobDTO struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Title        string  `gorm:"size:255;not null"`
	Description  *string `gorm:"type:text"`
	Status       string  `gorm:"size:16;not null;index"`
	AssignmentID *int64
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
// An unpersisted aggregate maps to a zero ID, letting the database
// generate one.
func fromDomain(aggregate *job.Job) JobDTO {
	var assignmentID *int64
	if id := aggregate.AssignmentID(); id != nil {
		raw := id.Value()
		assignmentID = &raw
	}

	return JobDTO{
		ID:           aggregate.ID().Value(),
		Title:        aggregate.Title(),
		Description:  aggregate.Description(),
		Status:       aggregate.Status().String(),
		AssignmentID: assignmentID,
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to a job domain aggregate using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := job.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var assignmentID *kernel.ID
	if dto.AssignmentID != nil {
		aID, aErr := kernel.NewID(*dto.AssignmentID)
		if aErr != nil {
			return nil, aErr
		}
		assignmentID = &aID
	}

	return job.RestoreJob(id, dto.Title, dto.Description, status, assignmentID, dto.CreatedAt)
}
