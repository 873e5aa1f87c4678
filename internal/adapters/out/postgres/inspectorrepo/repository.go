package inspectorrepo

import (
	"context"
	"errors"

	"inspection/internal/core/domain/model/inspector"
	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// GormInspectorRepository implements InspectorRepository using GORM.
type GormInspectorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormInspectorRepository creates a new GORM inspector repository.
func NewGormInspectorRepository(db *gorm.DB, tracker aggregateTracker) *GormInspectorRepository {
	return &GormInspectorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inspector to the database and attaches the generated
// identifier to the aggregate. A duplicate email is reported as a conflict.
func (r *GormInspectorRepository) Add(ctx context.Context, aggregate *inspector.Inspector) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause("inspector email already registered", err)
		}
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err := aggregate.AttachID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an inspector by ID.
func (r *GormInspectorRepository) Get(ctx context.Context, id kernel.ID) (*inspector.Inspector, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InspectorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inspectorId", id.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}
