package inventoryrepo

import (
	"context"
	"time"

	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory ledger repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// AddBatch appends postings to the ledger. All rows land in the current
// transaction, so a batch is all-or-nothing.
func (r *GormInventoryRepository) AddBatch(ctx context.Context, postings []*inventory.Posting) error {
	if len(postings) == 0 {
		return nil
	}

	dtos := make([]InventoryPostingDTO, 0, len(postings))
	for _, posting := range postings {
		if err := posting.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(posting))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ClearStaging logically clears all uncleared staging postings of a recycler
// by stamping them with the given time. Rows are never deleted.
func (r *GormInventoryRepository) ClearStaging(ctx context.Context, recyclerID kernel.UUID, clearedAt time.Time) error {
	if err := recyclerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&InventoryPostingDTO{}).
		Where("scope = ? AND owner_id = ? AND cleared_at IS NULL",
			int(inventory.ScopeStaging), recyclerID.Bytes()).
		Update("cleared_at", clearedAt).Error
}
