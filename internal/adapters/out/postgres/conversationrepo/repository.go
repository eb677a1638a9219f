package conversationrepo

import (
	"context"
	"errors"
	"time"

	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConversationRepository implements ConversationRepository using GORM.
type GormConversationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConversationRepository creates a new GORM conversation repository.
func NewGormConversationRepository(db *gorm.DB, tracker aggregateTracker) *GormConversationRepository {
	return &GormConversationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new conversation to the database.
func (r *GormConversationRepository) Add(ctx context.Context, aggregate *conversation.Conversation) error {
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

// UpdateEndMarker saves one side's end marker to the database. Writing only
// the calling role's column keeps the bilateral handshake commutative: a
// simultaneous end by the other side lands in its own column instead of
// being overwritten with the stale nil this aggregate was loaded with.
func (r *GormConversationRepository) UpdateEndMarker(ctx context.Context, aggregate *conversation.Conversation, role conversation.Role) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var column string
	var marker *time.Time
	switch role {
	case conversation.RoleUser:
		column, marker = "ended_by_user", aggregate.EndedByUser()
	case conversation.RoleRecycler:
		column, marker = "ended_by_recycler", aggregate.EndedByRecycler()
	default:
		return conversation.ErrRoleCannotEndConversation
	}
	if marker == nil {
		return errs.NewValueIsRequiredError("endedAt")
	}

	result := r.db.WithContext(ctx).
		Model(&ConversationDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update(column, *marker)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("conversation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActiveByOrder retrieves the newest conversation for an appointment.
func (r *GormConversationRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*conversation.Conversation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ConversationDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at DESC").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("conversation", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddMessage appends a chat message. Messages are immutable once added.
func (r *GormConversationRepository) AddMessage(ctx context.Context, message *conversation.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := messageFromDomain(message)
	return r.db.WithContext(ctx).Create(&dto).Error
}
