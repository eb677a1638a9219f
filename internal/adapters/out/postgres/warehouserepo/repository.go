package warehouserepo

import (
	"context"
	"errors"
	"fmt"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/warehouse"
	"recycling/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWarehouseRepository creates a new GORM warehouse receipt repository.
func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new receipt and its category summary to the database.
// A racing duplicate for the same transportation order violates the unique
// index and surfaces as a constraint error.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Receipt) error {
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

// Update saves an existing receipt to the database.
// The category summary is immutable and therefore omitted from the save.
//
// The write is a compare-and-set on fromStatus: two racing Process calls
// both pass the in-memory Pending guard, but only the first one's UPDATE
// matches the row. The loser gets a wrong-state error and its transaction
// rolls back, inventory posting batch included. Receipts are never deleted,
// which makes zero affected rows a concurrent status change.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Receipt, fromStatus warehouse.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := fromStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&WarehouseReceiptDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(fromStatus)).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("receipt %s is no longer %s", aggregate.ID(), fromStatus))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a receipt by ID, category summary included.
func (r *GormWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Receipt, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseReceiptDTO
	if err := r.db.WithContext(ctx).Preload("Categories").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse receipt", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTransportOrder retrieves the receipt created for a transportation order.
func (r *GormWarehouseRepository) GetByTransportOrder(ctx context.Context, transportOrderID kernel.UUID) (*warehouse.Receipt, error) {
	if err := transportOrderID.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseReceiptDTO
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		First(&dto, "transport_order_id = ?", transportOrderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse receipt", transportOrderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
