// Package inspectorrepo provides data transfer objects and mapping
// functions for inspector persistence.
package inspectorrepo

import (
	"inspection/internal/core/domain/model/inspector"
	"inspection/internal/core/domain/model/kernel"
)

// InspectorDTO represents the database structure for persisting inspector
// aggregates. Email is optional; the unique index still permits any
// number of NULLs, so uniqueness only binds inspectors that have one.
type InspectorDTO struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	Name     string  `gorm:"size:255;not null"`
	Timezone string  `gorm:"size:64;not null"`
	Email    *string `gorm:"size:255;uniqueIndex"`
}

// TableName specifies the database table name for inspector entities.
func (InspectorDTO) TableName() string {
	return "inspectors"
}

// fromDomain converts an inspector domain aggregate to its database
// representation.
func fromDomain(aggregate *inspector.Inspector) InspectorDTO {
	return InspectorDTO{
		ID:       aggregate.ID().Value(),
		Name:     aggregate.Name(),
		Timezone: aggregate.Timezone().Name(),
		Email:    aggregate.Email(),
	}
}

// toDomain converts a database row to an inspector domain aggregate
// using RestoreInspector. A row holding a timezone outside the allow-list
// fails restoration rather than leaking an unconvertible inspector.
func toDomain(dto InspectorDTO) (*inspector.Inspector, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	timezone, err := kernel.NewTimezone(dto.Timezone)
	if err != nil {
		return nil, err
	}

	return inspector.RestoreInspector(id, dto.Name, timezone, dto.Email)
}
