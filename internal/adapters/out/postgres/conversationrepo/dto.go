// Package conversationrepo provides data transfer objects and mapping
// functions for conversation and message persistence. Conversations carry
// the two bilateral end markers; messages are append-only rows keyed by the
// appointment they belong to.
package conversationrepo

import (
	"time"

	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ConversationDTO represents the database structure for chat sessions.
// A fresh row is created when a chat resumes after both sides ended, so an
// order can accumulate several rows; the newest one is the active session.
type ConversationDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time `gorm:"not null"`
	EndedByUser     *time.Time
	EndedByRecycler *time.Time
}

// TableName specifies the database table name for conversation entities.
func (ConversationDTO) TableName() string {
	return "conversations"
}

// MessageDTO represents the database structure for chat messages.
type MessageDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role     int        `gorm:"type:int;not null"`
	SenderID *uuid.UUID `gorm:"type:uuid"`
	Content  string     `gorm:"type:text;not null"`
	SentAt   time.Time  `gorm:"not null;index"`
	Read     bool       `gorm:"not null;default:false"`
}

// TableName specifies the database table name for message entities.
func (MessageDTO) TableName() string {
	return "messages"
}

func fromDomain(aggregate *conversation.Conversation) ConversationDTO {
	return ConversationDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		CreatedAt:       aggregate.CreatedAt(),
		EndedByUser:     aggregate.EndedByUser(),
		EndedByRecycler: aggregate.EndedByRecycler(),
	}
}

func toDomain(dto ConversationDTO) (*conversation.Conversation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return conversation.RestoreConversation(id, orderID, dto.CreatedAt, dto.EndedByUser, dto.EndedByRecycler)
}

func messageFromDomain(message *conversation.Message) MessageDTO {
	var senderID *uuid.UUID
	if message.Sender() != nil {
		raw := message.Sender().Bytes()
		senderID = &raw
	}

	return MessageDTO{
		ID:       message.ID().Bytes(),
		OrderID:  message.OrderID().Bytes(),
		Role:     int(message.Role()),
		SenderID: senderID,
		Content:  message.Content(),
		SentAt:   message.SentAt(),
		Read:     message.IsRead(),
	}
}
