package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrCompleteTransportOrderCommandIsNotConstructed = errors.New(
	"CompleteTransportOrderCommand must be created via NewCompleteTransportOrderCommand constructor",
)

// CompleteTransportOrderCommand represents closing a shipment that has
// reached the processing base. The optional actual weight is the weighed-in
// total recorded at arrival.
type CompleteTransportOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actualWeightKg *float64

	guard guard.ConstructorGuard
}

// NewCompleteTransportOrderCommand creates a command to complete a shipment.
// A nil actual weight keeps the estimate.
func NewCompleteTransportOrderCommand(orderID kernel.UUID, actualWeightKg *float64) (CompleteTransportOrderCommand, error) {
	cmd := CompleteTransportOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActualWeightKg(actualWeightKg),
	); err != nil {
		return CompleteTransportOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTransportOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTransportOrderCommandIsNotConstructed)
}

// OrderID returns the transportation order to complete.
func (c CompleteTransportOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActualWeightKg returns the weighed-in total in kilograms, or nil.
func (c CompleteTransportOrderCommand) ActualWeightKg() *float64 {
	return c.actualWeightKg
}

func (c *CompleteTransportOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CompleteTransportOrderCommand) setActualWeightKg(kg *float64) error {
	if kg != nil && *kg < 0 {
		return ErrWeightIsInvalid
	}

	c.actualWeightKg = kg
	return nil
}
