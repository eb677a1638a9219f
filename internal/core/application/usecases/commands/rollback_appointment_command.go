package commands

import (
	"errors"
	"strings"

	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrRollbackAppointmentCommandIsNotConstructed = errors.New(
	"RollbackAppointmentCommand must be created via NewRollbackAppointmentCommand constructor",
)

// RollbackAppointmentCommand represents the assigned recycler backing out of
// an in-progress appointment. A blank reason is replaced with the default
// rollback reason so the user always sees a rationale.
type RollbackAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID
	recyclerID    kernel.UUID
	reason        string

	guard guard.ConstructorGuard
}

// NewRollbackAppointmentCommand creates a command for the assigned recycler
// to roll back an appointment. The reason is optional.
func NewRollbackAppointmentCommand(appointmentID, recyclerID kernel.UUID, reason string) (RollbackAppointmentCommand, error) {
	cmd := RollbackAppointmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setRecyclerID(recyclerID),
	); err != nil {
		return RollbackAppointmentCommand{}, err
	}

	cmd.setReason(reason)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RollbackAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrRollbackAppointmentCommandIsNotConstructed)
}

// AppointmentID returns the appointment to roll back.
func (c RollbackAppointmentCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

// RecyclerID returns the recycler requesting the rollback.
func (c RollbackAppointmentCommand) RecyclerID() kernel.UUID {
	return c.recyclerID
}

// Reason returns the rollback rationale; never blank.
func (c RollbackAppointmentCommand) Reason() string {
	return c.reason
}

func (c *RollbackAppointmentCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appointmentID = id
	return nil
}

func (c *RollbackAppointmentCommand) setRecyclerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.recyclerID = id
	return nil
}

func (c *RollbackAppointmentCommand) setReason(reason string) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = appointment.DefaultRollbackReason
	}

	c.reason = reason
}
