// Package appointmentrepo provides data transfer objects and mapping functions
// for appointment persistence. This package implements the repository pattern
// for the appointment domain aggregate, handling the conversion between domain
// entities and database representations.
package appointmentrepo

import (
	"time"

	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentDTO represents the database structure for persisting appointment
// aggregates. Category line items live in their own table and are inserted
// together with the appointment.
type AppointmentDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecyclerID        *uuid.UUID `gorm:"type:uuid;index"`
	Status            int        `gorm:"type:int;not null;index"`
	EstimatedWeightKg float64    `gorm:"type:double precision;not null"`
	ActualWeightKg    *float64   `gorm:"type:double precision"`
	Items             []ItemDTO  `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time  `gorm:"not null"`
	UpdatedAt         time.Time  `gorm:"not null"`
	RemindedAt        *time.Time
}

// TableName specifies the database table name for appointment entities.
func (AppointmentDTO) TableName() string {
	return "appointments"
}

// ItemDTO represents one category line item of an appointment.
// Line items are immutable once the appointment is created.
type ItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category      string          `gorm:"type:varchar(255);not null"`
	Answers       string          `gorm:"type:text"`
	WeightKg      float64         `gorm:"type:double precision;not null"`
	Value         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName specifies the database table name for appointment line items.
func (ItemDTO) TableName() string {
	return "appointment_items"
}

// fromDomain converts an appointment domain aggregate to its database
// representation. Line item rows get fresh ids; they are only ever inserted
// once, on Add.
func fromDomain(aggregate *appointment.Appointment) AppointmentDTO {
	appointmentID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:            uuid.New(),
			AppointmentID: appointmentID,
			Category:      item.Category(),
			Answers:       item.Answers(),
			WeightKg:      item.Weight().Kg(),
			Value:         item.Value(),
		})
	}

	var recyclerID *uuid.UUID
	if aggregate.Recycler() != nil {
		raw := aggregate.Recycler().Bytes()
		recyclerID = &raw
	}

	var actualWeightKg *float64
	if aggregate.ActualWeight() != nil {
		kg := aggregate.ActualWeight().Kg()
		actualWeightKg = &kg
	}

	return AppointmentDTO{
		ID:                appointmentID,
		UserID:            aggregate.UserID().Bytes(),
		RecyclerID:        recyclerID,
		Status:            int(aggregate.Status()),
		EstimatedWeightKg: aggregate.EstimatedWeight().Kg(),
		ActualWeightKg:    actualWeightKg,
		Items:             items,
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		RemindedAt:        aggregate.ReviewRemindedAt(),
	}
}

// toDomain converts a database DTO to an appointment domain aggregate.
// Reconstructs the complete aggregate including line items using
// RestoreAppointment, which revalidates all invariants.
func toDomain(dto AppointmentDTO) (*appointment.Appointment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var recyclerID *kernel.UUID
	if dto.RecyclerID != nil {
		rID, rErr := kernel.UUIDFromBytes((*dto.RecyclerID)[:])
		if rErr != nil {
			return nil, rErr
		}
		recyclerID = &rID
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

	items := make([]appointment.CategoryItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return appointment.RestoreAppointment(
		id,
		userID,
		recyclerID,
		appointment.Status(dto.Status),
		estimatedWeight,
		actualWeight,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.RemindedAt,
	)
}

func itemToDomain(dto ItemDTO) (appointment.CategoryItem, error) {
	weight, err := kernel.NewWeight(dto.WeightKg)
	if err != nil {
		return appointment.CategoryItem{}, err
	}

	return appointment.NewCategoryItem(dto.Category, dto.Answers, weight, dto.Value)
}
