package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrCompleteAppointmentCommandIsNotConstructed = errors.New(
	"CompleteAppointmentCommand must be created via NewCompleteAppointmentCommand constructor",
)

// CompleteAppointmentCommand represents the assigned recycler finishing a
// pickup. The optional actual weight is the total weighed at pickup; when
// present it replaces the user's estimate for inventory purposes.
//
// Example:
//
//	weighed := 42.5
//	cmd, err := NewCompleteAppointmentCommand(appointmentID, recyclerID, &weighed)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCompleteAppointmentCommandHandler(uowFactory, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // fails while the conversation is not ended by both sides
//	    return err
//	}
type CompleteAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID  kernel.UUID
	recyclerID     kernel.UUID
	actualWeightKg *float64

	guard guard.ConstructorGuard
}

// NewCompleteAppointmentCommand creates a command for the assigned recycler
// to complete an appointment. A nil actual weight keeps the estimate.
func NewCompleteAppointmentCommand(appointmentID, recyclerID kernel.UUID, actualWeightKg *float64) (CompleteAppointmentCommand, error) {
	cmd := CompleteAppointmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setRecyclerID(recyclerID),
		cmd.setActualWeightKg(actualWeightKg),
	); err != nil {
		return CompleteAppointmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAppointmentCommandIsNotConstructed)
}

// AppointmentID returns the appointment to complete.
func (c CompleteAppointmentCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

// RecyclerID returns the recycler completing the pickup.
func (c CompleteAppointmentCommand) RecyclerID() kernel.UUID {
	return c.recyclerID
}

// ActualWeightKg returns the weighed total in kilograms, or nil.
func (c CompleteAppointmentCommand) ActualWeightKg() *float64 {
	return c.actualWeightKg
}

func (c *CompleteAppointmentCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appointmentID = id
	return nil
}

func (c *CompleteAppointmentCommand) setRecyclerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.recyclerID = id
	return nil
}

func (c *CompleteAppointmentCommand) setActualWeightKg(kg *float64) error {
	if kg != nil && *kg <= 0 {
		return ErrWeightIsInvalid
	}

	c.actualWeightKg = kg
	return nil
}
