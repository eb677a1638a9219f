package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrCancelAppointmentCommandIsNotConstructed = errors.New(
	"CancelAppointmentCommand must be created via NewCancelAppointmentCommand constructor",
)

// CancelAppointmentCommand represents the owning user withdrawing a pending
// appointment before any recycler has accepted it.
type CancelAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID
	userID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelAppointmentCommand creates a command for the owning user to cancel
// an appointment. Validates both identifiers.
func NewCancelAppointmentCommand(appointmentID, userID kernel.UUID) (CancelAppointmentCommand, error) {
	cmd := CancelAppointmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setUserID(userID),
	); err != nil {
		return CancelAppointmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelAppointmentCommandIsNotConstructed)
}

// AppointmentID returns the appointment to cancel.
func (c CancelAppointmentCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

// UserID returns the user requesting the cancellation.
func (c CancelAppointmentCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *CancelAppointmentCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appointmentID = id
	return nil
}

func (c *CancelAppointmentCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
