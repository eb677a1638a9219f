package commands

import (
	"errors"

	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrEndConversationCommandIsNotConstructed = errors.New(
	"EndConversationCommand must be created via NewEndConversationCommand constructor",
)

// EndConversationCommand represents one side of the chat setting its own end
// marker. Ending is independent per side and idempotent: re-ending refreshes
// the caller's timestamp and never touches the counterpart's marker.
type EndConversationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	role    conversation.Role
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEndConversationCommand creates a command for a participant to end their
// side of the conversation. Only the user and recycler roles qualify.
func NewEndConversationCommand(orderID kernel.UUID, role conversation.Role, actorID kernel.UUID) (EndConversationCommand, error) {
	cmd := EndConversationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
		cmd.setActorID(actorID),
	); err != nil {
		return EndConversationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EndConversationCommand) Validate() error {
	return c.guard.Validate(ErrEndConversationCommandIsNotConstructed)
}

// OrderID returns the appointment whose conversation is being ended.
func (c EndConversationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Role returns which side is ending.
func (c EndConversationCommand) Role() conversation.Role {
	return c.role
}

// ActorID returns the participant setting their end marker.
func (c EndConversationCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *EndConversationCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *EndConversationCommand) setRole(role conversation.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !role.IsParticipant() {
		return conversation.ErrRoleCannotEndConversation
	}

	c.role = role
	return nil
}

func (c *EndConversationCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actorID = id
	return nil
}
