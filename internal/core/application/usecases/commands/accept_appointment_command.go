package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrAcceptAppointmentCommandIsNotConstructed = errors.New(
	"AcceptAppointmentCommand must be created via NewAcceptAppointmentCommand constructor",
)

// AcceptAppointmentCommand represents a recycler taking a pending
// appointment. Acceptance assigns the recycler and opens the chat session
// between the two parties.
//
// Example:
//
//	cmd, err := NewAcceptAppointmentCommand(appointmentID, recyclerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAcceptAppointmentCommandHandler(uowFactory, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("acceptance failed: %w", err)
//	}
type AcceptAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID
	recyclerID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptAppointmentCommand creates a command for a recycler to accept an
// appointment. Validates both identifiers.
func NewAcceptAppointmentCommand(appointmentID, recyclerID kernel.UUID) (AcceptAppointmentCommand, error) {
	cmd := AcceptAppointmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setRecyclerID(recyclerID),
	); err != nil {
		return AcceptAppointmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrAcceptAppointmentCommandIsNotConstructed)
}

// AppointmentID returns the appointment to accept.
func (c AcceptAppointmentCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

// RecyclerID returns the accepting recycler.
func (c AcceptAppointmentCommand) RecyclerID() kernel.UUID {
	return c.recyclerID
}

func (c *AcceptAppointmentCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appointmentID = id
	return nil
}

func (c *AcceptAppointmentCommand) setRecyclerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.recyclerID = id
	return nil
}
