// Package inventoryrepo provides the persistence mapping for the append-only
// inventory ledger. Rows are inserted, never updated, except for the logical
// clear timestamp on staging rows.
package inventoryrepo

import (
	"time"

	"recycling/internal/core/domain/model/inventory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryPostingDTO represents the database structure for ledger lines.
type InventoryPostingDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Scope      int             `gorm:"type:int;not null;index"`
	OwnerID    *uuid.UUID      `gorm:"type:uuid;index"`
	Category   string          `gorm:"type:varchar(255);not null;index"`
	WeightKg   float64         `gorm:"type:double precision;not null"`
	Price      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	SourceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	RecordedAt time.Time       `gorm:"not null"`
	ClearedAt  *time.Time
}

// TableName specifies the database table name for inventory postings.
func (InventoryPostingDTO) TableName() string {
	return "inventory_postings"
}

func fromDomain(posting *inventory.Posting) InventoryPostingDTO {
	var ownerID *uuid.UUID
	if posting.Owner() != nil {
		raw := posting.Owner().Bytes()
		ownerID = &raw
	}

	return InventoryPostingDTO{
		ID:         posting.ID().Bytes(),
		Scope:      int(posting.Scope()),
		OwnerID:    ownerID,
		Category:   posting.Category(),
		WeightKg:   posting.Weight().Kg(),
		Price:      posting.Price(),
		SourceID:   posting.SourceID().Bytes(),
		RecordedAt: posting.RecordedAt(),
		ClearedAt:  posting.ClearedAt(),
	}
}
