// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse receipt persistence. The unique index on the source
// transportation order enforces the one-receipt-per-order rule at the
// storage level, closing the race the application-level pre-check leaves.
package warehouserepo

import (
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"
	"recycling/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WarehouseReceiptDTO represents the database structure for persisting
// warehouse receipts.
type WarehouseReceiptDTO struct {
	ID               uuid.UUID            `gorm:"type:uuid;primaryKey"`
	ReceiptNumber    string               `gorm:"type:varchar(64);not null;uniqueIndex"`
	TransportOrderID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex"`
	RecyclerID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	WorkerID         uuid.UUID            `gorm:"type:uuid;not null"`
	TotalWeightKg    float64              `gorm:"type:double precision;not null"`
	Notes            string               `gorm:"type:text"`
	Status           int                  `gorm:"type:int;not null;index"`
	Categories       []ReceiptCategoryDTO `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time            `gorm:"not null"`
	ProcessedAt      *time.Time
}

// TableName specifies the database table name for warehouse receipts.
func (WarehouseReceiptDTO) TableName() string {
	return "warehouse_receipts"
}

// ReceiptCategoryDTO represents one line of a receipt's category summary.
type ReceiptCategoryDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ReceiptID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category  string          `gorm:"type:varchar(255);not null"`
	WeightKg  float64         `gorm:"type:double precision;not null"`
	Value     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName specifies the database table name for receipt category lines.
func (ReceiptCategoryDTO) TableName() string {
	return "warehouse_receipt_categories"
}

// fromDomain converts a receipt aggregate to its database representation.
// Category rows get fresh ids; they are only ever inserted once, on Add.
func fromDomain(aggregate *warehouse.Receipt) WarehouseReceiptDTO {
	receiptID := aggregate.ID().Bytes()

	categories := make([]ReceiptCategoryDTO, 0, len(aggregate.Categories()))
	for _, category := range aggregate.Categories() {
		categories = append(categories, ReceiptCategoryDTO{
			ID:        uuid.New(),
			ReceiptID: receiptID,
			Category:  category.Category(),
			WeightKg:  category.Weight().Kg(),
			Value:     category.Value(),
		})
	}

	return WarehouseReceiptDTO{
		ID:               receiptID,
		ReceiptNumber:    aggregate.ReceiptNumber(),
		TransportOrderID: aggregate.TransportOrderID().Bytes(),
		RecyclerID:       aggregate.RecyclerID().Bytes(),
		WorkerID:         aggregate.WorkerID().Bytes(),
		TotalWeightKg:    aggregate.TotalWeight().Kg(),
		Notes:            aggregate.Notes(),
		Status:           int(aggregate.Status()),
		Categories:       categories,
		CreatedAt:        aggregate.CreatedAt(),
		ProcessedAt:      aggregate.ProcessedAt(),
	}
}

// toDomain converts a database DTO to a receipt aggregate using
// RestoreReceipt.
func toDomain(dto WarehouseReceiptDTO) (*warehouse.Receipt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	transportOrderID, err := kernel.UUIDFromBytes(dto.TransportOrderID[:])
	if err != nil {
		return nil, err
	}

	recyclerID, err := kernel.UUIDFromBytes(dto.RecyclerID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	totalWeight, err := kernel.NewWeight(dto.TotalWeightKg)
	if err != nil {
		return nil, err
	}

	categories := make([]transport.Category, 0, len(dto.Categories))
	for _, categoryDto := range dto.Categories {
		weight, wErr := kernel.NewWeight(categoryDto.WeightKg)
		if wErr != nil {
			return nil, wErr
		}
		category, cErr := transport.NewCategory(categoryDto.Category, weight, categoryDto.Value)
		if cErr != nil {
			return nil, cErr
		}
		categories = append(categories, category)
	}

	return warehouse.RestoreReceipt(
		id,
		dto.ReceiptNumber,
		transportOrderID,
		recyclerID,
		workerID,
		totalWeight,
		categories,
		dto.Notes,
		warehouse.Status(dto.Status),
		dto.CreatedAt,
		dto.ProcessedAt,
	)
}
