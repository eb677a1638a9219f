// Package notify provides the gorm-backed notification sink: deliveries are
// persisted as in-app notification rows that clients poll or push from.
// The sink is best-effort by contract; callers log and swallow its errors.
package notify

import (
	"context"
	"log/slog"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents one in-app notification row.
// TargetID is null for broadcasts addressed to a whole pool.
type NotificationDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TargetKind string     `gorm:"type:varchar(32);not null;index"`
	TargetID   *uuid.UUID `gorm:"type:uuid;index"`
	Title      string     `gorm:"type:varchar(255);not null"`
	Body       string     `gorm:"type:text;not null"`
	RelatedID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"not null"`
	Read       bool       `gorm:"not null;default:false"`
}

// TableName specifies the database table name for notification rows.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotifier implements ports.Notifier over in-app notification rows.
// Deliveries run outside business transactions; a failed insert loses one
// notification and nothing else.
type GormNotifier struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormNotifier creates a gorm-backed notification sink.
func NewGormNotifier(db *gorm.DB, logger *slog.Logger) *GormNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormNotifier{
		db:     db,
		logger: logger,
	}
}

// Notify delivers a message to one actor. The first related id, when given,
// links the notification to the workflow entity it is about.
func (n *GormNotifier) Notify(ctx context.Context, kind ports.TargetKind, targetID kernel.UUID, title, body string, related ...kernel.UUID) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if err := targetID.Validate(); err != nil {
		return err
	}

	target := targetID.Bytes()

	var relatedID *uuid.UUID
	if len(related) > 0 {
		raw := related[0].Bytes()
		relatedID = &raw
	}

	dto := NotificationDTO{
		ID:         uuid.New(),
		TargetKind: kind.String(),
		TargetID:   &target,
		Title:      title,
		Body:       body,
		RelatedID:  relatedID,
		CreatedAt:  time.Now(),
	}

	if err := n.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	n.logger.Debug("notification stored",
		"target_kind", kind.String(),
		"target_id", targetID.String(),
		"title", title)
	return nil
}

// NotifyAll broadcasts a message to every actor of a kind. The row carries a
// null target; clients filter by kind.
func (n *GormNotifier) NotifyAll(ctx context.Context, kind ports.TargetKind, title, body string) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	dto := NotificationDTO{
		ID:         uuid.New(),
		TargetKind: kind.String(),
		Title:      title,
		Body:       body,
		CreatedAt:  time.Now(),
	}

	if err := n.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	n.logger.Debug("notification broadcast stored",
		"target_kind", kind.String(),
		"title", title)
	return nil
}
