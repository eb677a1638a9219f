package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConversationHistoryQueryHandler reads the visible chat history of an
// appointment from the database, applying the both-ended visibility cutoff.
type GetConversationHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetConversationHistoryQueryHandler creates a handler for chat history
// queries. Requires a GORM database connection.
func NewGetConversationHistoryQueryHandler(db *gorm.DB) GetConversationHistoryQueryHandler {
	return GetConversationHistoryQueryHandler{db: db}
}

// Handle executes the history query.
// Loads the newest conversation of the order and returns its messages in
// send order, truncated at the effective end time once both sides ended.
func (h GetConversationHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetConversationHistoryQuery,
) ([]GetConversationHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var createdAt time.Time
	var endedByUser, endedByRecycler sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			created_at,
			ended_by_user,
			ended_by_recycler
		FROM conversations
		WHERE order_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.OrderID().String()).Row()

	if err := row.Scan(&createdAt, &endedByUser, &endedByRecycler); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("conversation", query.OrderID())
		}
		return nil, err
	}

	cutoff := effectiveEnd(endedByUser, endedByRecycler)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			role,
			sender_id,
			content,
			sent_at,
			read
		FROM messages
		WHERE order_id = ?
			AND sent_at >= ?
		ORDER BY sent_at, id
	`, query.OrderID().String(), createdAt).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]GetConversationHistoryQueryResponse, 0)

	for rows.Next() {
		var id uuid.UUID
		var role int
		var senderID uuid.NullUUID
		var content string
		var sentAt time.Time
		var read bool

		if err = rows.Scan(&id, &role, &senderID, &content, &sentAt, &read); err != nil {
			return nil, err
		}

		if cutoff != nil && sentAt.After(*cutoff) {
			continue
		}

		messageID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		message := GetConversationHistoryQueryResponse{
			ID:      messageID,
			Role:    conversation.Role(role),
			Content: content,
			SentAt:  sentAt,
			Read:    read,
		}

		if senderID.Valid {
			sender, senderErr := kernel.UUIDFromBytes(senderID.UUID[:])
			if senderErr != nil {
				return nil, senderErr
			}
			message.Sender = &sender
		}

		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// effectiveEnd returns the later end marker once both are set, nil otherwise.
func effectiveEnd(endedByUser, endedByRecycler sql.NullTime) *time.Time {
	if !endedByUser.Valid || !endedByRecycler.Valid {
		return nil
	}
	end := endedByUser.Time
	if endedByRecycler.Time.After(end) {
		end = endedByRecycler.Time
	}
	return &end
}
