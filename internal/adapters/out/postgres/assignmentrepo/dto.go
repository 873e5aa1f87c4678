// Package assignmentrepo provides data transfer objects and mapping
// functions for assignment persistence.
package assignmentrepo

import (
	"time"

	"inspection/internal/core/domain/model/assignment"
	"inspection/internal/core/domain/model/kernel"
)

// AssignmentDTO represents the database structure for persisting
// assignment aggregates. The unique index on JobID enforces "at most one
// assignment per job" at the storage level: of two concurrent assigns
// for the same job, exactly one insert succeeds.
type AssignmentDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	JobID       int64     `gorm:"not null;uniqueIndex"`
	InspectorID int64     `gorm:"not null;index"`
	ScheduledAt time.Time `gorm:"not null"`
	CompletedAt *time.Time
	Assessment  *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database
// representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:          aggregate.ID().Value(),
		JobID:       aggregate.JobID().Value(),
		InspectorID: aggregate.InspectorID().Value(),
		ScheduledAt: aggregate.ScheduledAt(),
		CompletedAt: aggregate.CompletedAt(),
		Assessment:  aggregate.Assessment(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to an assignment domain aggregate
// using RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.NewID(dto.JobID)
	if err != nil {
		return nil, err
	}

	inspectorID, err := kernel.NewID(dto.InspectorID)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id, jobID, inspectorID,
		dto.ScheduledAt, dto.CompletedAt, dto.Assessment, dto.CreatedAt,
	)
}
