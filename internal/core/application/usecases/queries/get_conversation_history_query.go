package queries

import (
	"errors"
	"time"

	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrGetConversationHistoryQueryIsNotConstructed = errors.New(
	"GetConversationHistoryQuery must be created via NewGetConversationHistoryQuery constructor",
)

// GetConversationHistoryQuery retrieves the chat history of an appointment's
// active conversation. Once both sides have ended, only messages sent up to
// the effective end time remain visible; later messages belong to a fresh
// conversation.
type GetConversationHistoryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConversationHistoryQuery creates a query for an appointment's chat
// history.
func NewGetConversationHistoryQuery(orderID kernel.UUID) (GetConversationHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetConversationHistoryQuery{}, err
	}

	return GetConversationHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConversationHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetConversationHistoryQueryIsNotConstructed)
}

// OrderID returns the appointment whose history is requested.
func (q GetConversationHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetConversationHistoryQueryResponse is one visible chat message.
type GetConversationHistoryQueryResponse struct {
	ID      kernel.UUID
	Role    conversation.Role
	Sender  *kernel.UUID
	Content string
	SentAt  time.Time
	Read    bool
}
