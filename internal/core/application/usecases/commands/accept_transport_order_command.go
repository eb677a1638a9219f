package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrAcceptTransportOrderCommandIsNotConstructed = errors.New(
	"AcceptTransportOrderCommand must be created via NewAcceptTransportOrderCommand constructor",
)

// AcceptTransportOrderCommand represents the assigned transporter taking a
// pending shipment.
type AcceptTransportOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	transporterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptTransportOrderCommand creates a command for the assigned
// transporter to accept a shipment. Validates both identifiers.
func NewAcceptTransportOrderCommand(orderID, transporterID kernel.UUID) (AcceptTransportOrderCommand, error) {
	cmd := AcceptTransportOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransporterID(transporterID),
	); err != nil {
		return AcceptTransportOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptTransportOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptTransportOrderCommandIsNotConstructed)
}

// OrderID returns the transportation order to accept.
func (c AcceptTransportOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransporterID returns the accepting transporter.
func (c AcceptTransportOrderCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

func (c *AcceptTransportOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AcceptTransportOrderCommand) setTransporterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.transporterID = id
	return nil
}
