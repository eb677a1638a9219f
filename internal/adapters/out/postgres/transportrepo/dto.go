// Package transportrepo provides data transfer objects and mapping functions
// for transportation order persistence. The order row and its category
// manifest rows are inserted atomically.
package transportrepo

import (
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransportOrderDTO represents the database structure for persisting
// transportation orders. The stage column is null outside InTransit and on
// legacy rows that predate stage tracking.
type TransportOrderDTO struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderNumber       string        `gorm:"type:varchar(64);not null;uniqueIndex"`
	RecyclerID        uuid.UUID     `gorm:"type:uuid;not null;index"`
	TransporterID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	PickupAddress     string        `gorm:"type:varchar(512);not null"`
	Destination       string        `gorm:"type:varchar(512)"`
	ContactName       string        `gorm:"type:varchar(255);not null"`
	ContactPhone      string        `gorm:"type:varchar(64);not null"`
	EstimatedWeightKg float64       `gorm:"type:double precision;not null"`
	ActualWeightKg    *float64      `gorm:"type:double precision"`
	Status            int           `gorm:"type:int;not null;index"`
	Stage             *int          `gorm:"type:int"`
	Categories        []CategoryDTO `gorm:"foreignKey:TransportOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time     `gorm:"not null"`
	AcceptedAt        *time.Time
	PickedUpAt        *time.Time
	CompletedAt       *time.Time
}

// TableName specifies the database table name for transportation orders.
func (TransportOrderDTO) TableName() string {
	return "transport_orders"
}

// CategoryDTO represents one line of an order's category manifest.
type CategoryDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransportOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category         string          `gorm:"type:varchar(255);not null"`
	WeightKg         float64         `gorm:"type:double precision;not null"`
	Value            decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName specifies the database table name for manifest lines.
func (CategoryDTO) TableName() string {
	return "transport_order_categories"
}

// fromDomain converts a transportation order aggregate to its database
// representation. Manifest rows get fresh ids; they are only ever inserted
// once, on Add.
func fromDomain(aggregate *transport.Order) TransportOrderDTO {
	orderID := aggregate.ID().Bytes()

	categories := make([]CategoryDTO, 0, len(aggregate.Categories()))
	for _, category := range aggregate.Categories() {
		categories = append(categories, CategoryDTO{
			ID:               uuid.New(),
			TransportOrderID: orderID,
			Category:         category.Category(),
			WeightKg:         category.Weight().Kg(),
			Value:            category.Value(),
		})
	}

	var actualWeightKg *float64
	if aggregate.ActualWeight() != nil {
		kg := aggregate.ActualWeight().Kg()
		actualWeightKg = &kg
	}

	var stage *int
	if aggregate.Stage() != nil {
		raw := int(*aggregate.Stage())
		stage = &raw
	}

	return TransportOrderDTO{
		ID:                orderID,
		OrderNumber:       aggregate.OrderNumber(),
		RecyclerID:        aggregate.RecyclerID().Bytes(),
		TransporterID:     aggregate.TransporterID().Bytes(),
		PickupAddress:     aggregate.PickupAddress(),
		Destination:       aggregate.Destination(),
		ContactName:       aggregate.ContactName(),
		ContactPhone:      aggregate.ContactPhone(),
		EstimatedWeightKg: aggregate.EstimatedWeight().Kg(),
		ActualWeightKg:    actualWeightKg,
		Status:            int(aggregate.Status()),
		Stage:             stage,
		Categories:        categories,
		CreatedAt:         aggregate.CreatedAt(),
		AcceptedAt:        aggregate.AcceptedAt(),
		PickedUpAt:        aggregate.PickedUpAt(),
		CompletedAt:       aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a transportation order aggregate using
// RestoreOrder, which accepts the legacy null stage on InTransit rows.
func toDomain(dto TransportOrderDTO) (*transport.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recyclerID, err := kernel.UUIDFromBytes(dto.RecyclerID[:])
	if err != nil {
		return nil, err
	}

	transporterID, err := kernel.UUIDFromBytes(dto.TransporterID[:])
	if err != nil {
		return nil, err
	}

	estimatedWeight, err := kernel.NewWeight(dto.EstimatedWeightKg)
	if err != nil {
		return nil, err
	}

	var actualWeight *kernel.Weight
	if dto.ActualWeightKg != nil {
		weight, wErr := kernel.NewWeight(*dto.ActualWeightKg)
		if wErr != nil {
			return nil, wErr
		}
		actualWeight = &weight
	}

	var stage *transport.Stage
	if dto.Stage != nil {
		s := transport.Stage(*dto.Stage)
		stage = &s
	}

	categories := make([]transport.Category, 0, len(dto.Categories))
	for _, categoryDto := range dto.Categories {
		category, cErr := categoryToDomain(categoryDto)
		if cErr != nil {
			return nil, cErr
		}
		categories = append(categories, category)
	}

	return transport.RestoreOrder(
		id,
		dto.OrderNumber,
		recyclerID,
		transporterID,
		dto.PickupAddress,
		dto.Destination,
		dto.ContactName,
		dto.ContactPhone,
		estimatedWeight,
		actualWeight,
		categories,
		transport.Status(dto.Status),
		stage,
		dto.CreatedAt,
		dto.AcceptedAt,
		dto.PickedUpAt,
		dto.CompletedAt,
	)
}

func categoryToDomain(dto CategoryDTO) (transport.Category, error) {
	weight, err := kernel.NewWeight(dto.WeightKg)
	if err != nil {
		return transport.Category{}, err
	}

	return transport.NewCategory(dto.Category, weight, dto.Value)
}
