package conversation

import (
	"errors"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
)

var (
	// ErrConversationIsNotConstructed is returned when a Conversation was not
	// created through NewConversation or RestoreConversation.
	ErrConversationIsNotConstructed = errors.New(
		"Conversation must be created via NewConversation or RestoreConversation constructor")

	// ErrRoleCannotEndConversation indicates a non-participant role tried
	// to end the conversation.
	ErrRoleCannotEndConversation = errors.New("only the user or the recycler can end a conversation")
)

// Conversation is the chat session attached to one appointment while it is
// in progress. Termination is a bilateral handshake: each side owns an
// independent end marker, and the conversation counts as ended only when
// both markers are set. Neither side can foreclose the other's ability to
// keep the history open.
//
// The later of the two markers is the conversation's effective end time,
// which is also the message-visibility cutoff for history queries. A chat
// that resumes after both sides ended starts a fresh Conversation row; the
// old one is superseded, never reopened.
type Conversation struct {
	id              kernel.UUID
	orderID         kernel.UUID
	createdAt       time.Time
	endedByUser     *time.Time
	endedByRecycler *time.Time

	isConstructed bool
}

// NewConversation opens a chat session for an appointment.
func NewConversation(id, orderID kernel.UUID, now time.Time) (*Conversation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &Conversation{
		id:            id,
		orderID:       orderID,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreConversation reconstructs a conversation from persistence.
func RestoreConversation(
	id, orderID kernel.UUID,
	createdAt time.Time,
	endedByUser, endedByRecycler *time.Time,
) (*Conversation, error) {
	c, err := NewConversation(id, orderID, createdAt)
	if err != nil {
		return nil, err
	}

	c.endedByUser = endedByUser
	c.endedByRecycler = endedByRecycler
	return c, nil
}

// Validate ensures the Conversation instance was properly constructed.
func (c *Conversation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConversationIsNotConstructed
	}
	return nil
}

// ID returns the conversation's unique identifier.
func (c *Conversation) ID() kernel.UUID {
	return c.id
}

// OrderID returns the identifier of the appointment this chat belongs to.
func (c *Conversation) OrderID() kernel.UUID {
	return c.orderID
}

// CreatedAt returns when the chat session was opened.
func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

// EndedByUser returns the user's end marker, or nil if the user has not ended.
func (c *Conversation) EndedByUser() *time.Time {
	return c.endedByUser
}

// EndedByRecycler returns the recycler's end marker, or nil if the recycler
// has not ended.
func (c *Conversation) EndedByRecycler() *time.Time {
	return c.endedByRecycler
}

// EndBy sets the caller's own end marker to now. The counterpart's marker is
// untouched, so ending is independent per side. The operation is idempotent:
// re-ending simply refreshes the caller's timestamp.
func (c *Conversation) EndBy(role Role, now time.Time) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !role.IsParticipant() {
		return ErrRoleCannotEndConversation
	}

	switch role {
	case RoleUser:
		c.endedByUser = &now
	case RoleRecycler:
		c.endedByRecycler = &now
	default:
		// unreachable, IsParticipant filtered the rest
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// BothEnded reports whether both sides have set their end markers.
func (c *Conversation) BothEnded() bool {
	return c.endedByUser != nil && c.endedByRecycler != nil
}

// EffectiveEnd returns the later of the two end markers and true once both
// sides have ended; the zero time and false otherwise.
func (c *Conversation) EffectiveEnd() (time.Time, bool) {
	if !c.BothEnded() {
		return time.Time{}, false
	}
	if c.endedByUser.After(*c.endedByRecycler) {
		return *c.endedByUser, true
	}
	return *c.endedByRecycler, true
}

// Covers reports whether a message sent at the given time is visible in
// this conversation's history. Once both sides have ended, only messages
// up to the effective end time remain visible.
func (c *Conversation) Covers(sentAt time.Time) bool {
	if sentAt.Before(c.createdAt) {
		return false
	}
	end, ended := c.EffectiveEnd()
	if !ended {
		return true
	}
	return !sentAt.After(end)
}
