package appointmentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAppointmentRepository implements AppointmentRepository using GORM.
type GormAppointmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAppointmentRepository creates a new GORM appointment repository.
func NewGormAppointmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAppointmentRepository {
	return &GormAppointmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new appointment and its line items to the database.
func (r *GormAppointmentRepository) Add(ctx context.Context, aggregate *appointment.Appointment) error {
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

// Update saves an existing appointment to the database.
// Line items are immutable and therefore omitted from the save.
//
// The write is a compare-and-set on fromStatus: the in-memory guard checks
// only prove the transition was valid against the loaded snapshot, so the
// UPDATE re-asserts that snapshot against the row. Appointments are never
// deleted, which makes zero affected rows a concurrent status change.
func (r *GormAppointmentRepository) Update(ctx context.Context, aggregate *appointment.Appointment, fromStatus appointment.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := fromStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&AppointmentDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(fromStatus)).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("appointment %s is no longer %s", aggregate.ID(), fromStatus))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an appointment by ID, line items included.
func (r *GormAppointmentRepository) Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AppointmentDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("appointment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDueReviewReminder retrieves appointments completed before the cutoff
// whose review reminder has not been sent yet. Completion is the last
// mutation before the reminder, so the update timestamp is the completion time.
func (r *GormAppointmentRepository) GetAllDueReviewReminder(ctx context.Context, completedBefore time.Time) ([]*appointment.Appointment, error) {
	var dtos []AppointmentDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ? AND reminded_at IS NULL AND updated_at < ?",
			int(appointment.Completed), completedBefore).
		Order("updated_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	appointments := make([]*appointment.Appointment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}

	return appointments, nil
}
