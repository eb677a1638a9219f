// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly with raw SQL, bypassing the
// aggregates and the unit of work: reads take no locks and mutate nothing.
package queries

import (
	"errors"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrHasConversationEndedQueryIsNotConstructed = errors.New(
	"HasConversationEndedQuery must be created via NewHasConversationEndedQuery constructor",
)

// HasConversationEndedQuery asks whether the bilateral end handshake of an
// appointment's active conversation is complete. This is the read behind the
// completion gate: an appointment cannot complete until both sides ended.
//
// Example:
//
//	query, err := NewHasConversationEndedQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewHasConversationEndedQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if resp.BothEnded {
//	    fmt.Printf("conversation ended at %s\n", resp.EffectiveEnd)
//	}
type HasConversationEndedQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHasConversationEndedQuery creates a query for an appointment's
// conversation end state.
func NewHasConversationEndedQuery(orderID kernel.UUID) (HasConversationEndedQuery, error) {
	if err := orderID.Validate(); err != nil {
		return HasConversationEndedQuery{}, err
	}

	return HasConversationEndedQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q HasConversationEndedQuery) Validate() error {
	return q.guard.Validate(ErrHasConversationEndedQueryIsNotConstructed)
}

// OrderID returns the appointment whose conversation is inspected.
func (q HasConversationEndedQuery) OrderID() kernel.UUID {
	return q.orderID
}

// HasConversationEndedQueryResponse reports the end handshake state.
// EffectiveEnd is the later of the two end markers, set only once both
// sides have ended.
type HasConversationEndedQueryResponse struct {
	BothEnded    bool
	EffectiveEnd *time.Time
}
