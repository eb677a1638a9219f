package commands

import (
	"errors"

	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
	"recycling/internal/pkg/guard"
)

var ErrSendMessageCommandIsNotConstructed = errors.New(
	"SendMessageCommand must be created via NewSendMessageCommand constructor",
)

// SendMessageCommand represents a participant posting a chat message on an
// appointment. A message sent after both sides ended the previous chat starts
// a fresh conversation; the ended one is superseded, never reopened.
type SendMessageCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	role     conversation.Role
	senderID kernel.UUID
	content  string

	guard guard.ConstructorGuard
}

// NewSendMessageCommand creates a command to post a chat message.
// Only the user and recycler roles can author messages through this command;
// system messages are produced by the workflow itself.
func NewSendMessageCommand(orderID kernel.UUID, role conversation.Role, senderID kernel.UUID, content string) (SendMessageCommand, error) {
	cmd := SendMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
		cmd.setSenderID(senderID),
		cmd.setContent(content),
	); err != nil {
		return SendMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

// OrderID returns the appointment the message belongs to.
func (c SendMessageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Role returns who is authoring the message.
func (c SendMessageCommand) Role() conversation.Role {
	return c.role
}

// SenderID returns the author's identifier.
func (c SendMessageCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Content returns the message body.
func (c SendMessageCommand) Content() string {
	return c.content
}

func (c *SendMessageCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *SendMessageCommand) setRole(role conversation.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !role.IsParticipant() {
		return errs.NewValueIsInvalidError("role")
	}

	c.role = role
	return nil
}

func (c *SendMessageCommand) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.senderID = id
	return nil
}

func (c *SendMessageCommand) setContent(content string) error {
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}

	c.content = content
	return nil
}
