package queries

import (
	"context"
	"database/sql"
	"errors"

	"recycling/internal/pkg/errs"

	"gorm.io/gorm"
)

// HasConversationEndedQueryHandler reads the active conversation's end
// markers from the database.
type HasConversationEndedQueryHandler struct {
	db *gorm.DB
}

// NewHasConversationEndedQueryHandler creates a handler for conversation end
// state queries. Requires a GORM database connection.
func NewHasConversationEndedQueryHandler(db *gorm.DB) HasConversationEndedQueryHandler {
	return HasConversationEndedQueryHandler{db: db}
}

// Handle executes the query against the newest conversation of the order.
// Returns errs.ErrObjectNotFound when the order has never had a chat.
func (h HasConversationEndedQueryHandler) Handle(
	ctx context.Context,
	query HasConversationEndedQuery,
) (HasConversationEndedQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return HasConversationEndedQueryResponse{}, err
	}

	var endedByUser, endedByRecycler sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			ended_by_user,
			ended_by_recycler
		FROM conversations
		WHERE order_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.OrderID().String()).Row()

	if err := row.Scan(&endedByUser, &endedByRecycler); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return HasConversationEndedQueryResponse{},
				errs.NewObjectNotFoundError("conversation", query.OrderID())
		}
		return HasConversationEndedQueryResponse{}, err
	}

	response := HasConversationEndedQueryResponse{}
	if endedByUser.Valid && endedByRecycler.Valid {
		response.BothEnded = true
		effective := endedByUser.Time
		if endedByRecycler.Time.After(effective) {
			effective = endedByRecycler.Time
		}
		response.EffectiveEnd = &effective
	}

	return response, nil
}
