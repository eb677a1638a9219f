package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateAppointmentCommandIsNotConstructed = errors.New(
		"CreateAppointmentCommand must be created via NewCreateAppointmentCommand constructor",
	)
	ErrCategoryItemsAreRequired = errors.New("at least one category item is required")
	ErrWeightIsInvalid          = errors.New("weight must be greater than 0")
)

// CategoryLine is one category's share of a submission or manifest as it
// arrives from the presentation layer: a category key with free-form intake
// answers, a declared weight in kilograms and an estimated payout value.
type CategoryLine struct {
	Category string
	Answers  string
	WeightKg float64
	Value    decimal.Decimal
}

// CreateAppointmentCommand represents a user's pickup submission.
// Encapsulates the declared weight and category line items of the request.
//
// Example:
//
//	appointmentID := kernel.NewUUID()
//	cmd, err := NewCreateAppointmentCommand(appointmentID, userID, 12.5, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//
//	handler := NewCreateAppointmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create appointment: %w", err)
//	}
type CreateAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID     kernel.UUID
	userID            kernel.UUID
	estimatedWeightKg float64
	items             []CategoryLine

	guard guard.ConstructorGuard
}

// NewCreateAppointmentCommand creates a command to register a pickup
// submission. Validates ids, requires a positive estimated weight and at
// least one category line item.
func NewCreateAppointmentCommand(
	appointmentID kernel.UUID,
	userID kernel.UUID,
	estimatedWeightKg float64,
	items []CategoryLine,
) (CreateAppointmentCommand, error) {
	cmd := CreateAppointmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setUserID(userID),
		cmd.setEstimatedWeightKg(estimatedWeightKg),
		cmd.setItems(items),
	); err != nil {
		return CreateAppointmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAppointmentCommandIsNotConstructed)
}

// AppointmentID returns the unique identifier for the appointment.
func (c CreateAppointmentCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

// UserID returns the submitting user's identifier.
func (c CreateAppointmentCommand) UserID() kernel.UUID {
	return c.userID
}

// EstimatedWeightKg returns the declared total weight in kilograms.
func (c CreateAppointmentCommand) EstimatedWeightKg() float64 {
	return c.estimatedWeightKg
}

// Items returns the category line items of the submission.
func (c CreateAppointmentCommand) Items() []CategoryLine {
	items := make([]CategoryLine, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateAppointmentCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appointmentID = id
	return nil
}

func (c *CreateAppointmentCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *CreateAppointmentCommand) setEstimatedWeightKg(kg float64) error {
	if kg <= 0 {
		return ErrWeightIsInvalid
	}

	c.estimatedWeightKg = kg
	return nil
}

func (c *CreateAppointmentCommand) setItems(items []CategoryLine) error {
	if len(items) == 0 {
		return ErrCategoryItemsAreRequired
	}

	c.items = make([]CategoryLine, len(items))
	copy(c.items, items)
	return nil
}
