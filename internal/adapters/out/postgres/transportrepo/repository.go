package transportrepo

import (
	"context"
	"errors"
	"fmt"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"
	"recycling/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTransportRepository implements TransportRepository using GORM.
type GormTransportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransportRepository creates a new GORM transportation order repository.
func NewGormTransportRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportRepository {
	return &GormTransportRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transportation order and its category manifest atomically.
func (r *GormTransportRepository) Add(ctx context.Context, aggregate *transport.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing transportation order to the database.
// The manifest is immutable and therefore omitted from the save.
//
// The write is a compare-and-set on the loaded status and stage: the stage
// guards are checked in memory against the loaded snapshot, so the UPDATE
// re-asserts that snapshot against the row. Orders are never deleted, which
// makes zero affected rows a concurrent transition.
func (r *GormTransportRepository) Update(ctx context.Context, aggregate *transport.Order, fromStatus transport.Status, fromStage *transport.Stage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := fromStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	query := r.db.WithContext(ctx).
		Model(&TransportOrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(fromStatus))
	if fromStage != nil {
		query = query.Where("stage = ?", int(*fromStage))
	} else {
		query = query.Where("stage IS NULL")
	}

	result := query.
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("transport order %s is no longer %s", aggregate.ID(), fromStatus))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transportation order by ID, manifest included.
func (r *GormTransportRepository) Get(ctx context.Context, id kernel.UUID) (*transport.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportOrderDTO
	if err := r.db.WithContext(ctx).Preload("Categories").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
