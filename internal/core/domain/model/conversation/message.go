package conversation

import (
	"errors"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
)

var (
	// ErrMessageIsNotConstructed is returned when a Message was not created
	// through one of its constructors.
	ErrMessageIsNotConstructed = errors.New(
		"Message must be created via NewMessage, NewSystemMessage or RestoreMessage constructor")

	// ErrSenderIsRequired indicates a user or recycler message is missing
	// its sender identifier.
	ErrSenderIsRequired = errors.New("sender is required for user and recycler messages")
)

// Message is a single chat message on an appointment's conversation.
// Messages are immutable once created; the read flag is the only mutable field.
type Message struct {
	id       kernel.UUID
	orderID  kernel.UUID
	role     Role
	senderID *kernel.UUID
	content  string
	sentAt   time.Time
	read     bool

	isConstructed bool
}

// NewMessage creates a chat message authored by the user or the recycler.
func NewMessage(id, orderID kernel.UUID, role Role, senderID kernel.UUID, content string, now time.Time) (*Message, error) {
	if !role.IsParticipant() {
		return nil, errs.NewValueIsInvalidError("role")
	}
	if err := senderID.Validate(); err != nil {
		return nil, ErrSenderIsRequired
	}

	m, err := newMessage(id, orderID, role, content, now)
	if err != nil {
		return nil, err
	}
	m.senderID = &senderID
	return m, nil
}

// NewSystemMessage creates a workflow-generated message, e.g. an acceptance
// notice or a rollback rationale posted into the chat history.
func NewSystemMessage(id, orderID kernel.UUID, content string, now time.Time) (*Message, error) {
	return newMessage(id, orderID, RoleSystem, content, now)
}

// RestoreMessage reconstructs a message from persistence.
func RestoreMessage(
	id, orderID kernel.UUID,
	role Role,
	senderID *kernel.UUID,
	content string,
	sentAt time.Time,
	read bool,
) (*Message, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if role.IsParticipant() && senderID == nil {
		return nil, ErrSenderIsRequired
	}

	m, err := newMessage(id, orderID, role, content, sentAt)
	if err != nil {
		return nil, err
	}
	m.senderID = senderID
	m.read = read
	return m, nil
}

func newMessage(id, orderID kernel.UUID, role Role, content string, sentAt time.Time) (*Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errs.NewValueIsRequiredError("content")
	}

	return &Message{
		id:            id,
		orderID:       orderID,
		role:          role,
		content:       content,
		sentAt:        sentAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Message instance was properly constructed.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// OrderID returns the identifier of the appointment the message belongs to.
func (m *Message) OrderID() kernel.UUID {
	return m.orderID
}

// Role returns who authored the message.
func (m *Message) Role() Role {
	return m.role
}

// Sender returns the author's identifier, or nil for system messages.
func (m *Message) Sender() *kernel.UUID {
	return m.senderID
}

// Content returns the message body.
func (m *Message) Content() string {
	return m.content
}

// SentAt returns when the message was sent.
func (m *Message) SentAt() time.Time {
	return m.sentAt
}

// IsRead reports whether the recipient has read the message.
func (m *Message) IsRead() bool {
	return m.read
}

// MarkRead flips the read flag. Idempotent.
func (m *Message) MarkRead() {
	m.read = true
}
