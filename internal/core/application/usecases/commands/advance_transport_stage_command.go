package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"
	"recycling/internal/pkg/guard"
)

var ErrAdvanceTransportStageCommandIsNotConstructed = errors.New(
	"AdvanceTransportStageCommand must be created via NewAdvanceTransportStageCommand constructor",
)

// AdvanceTransportStageCommand represents moving a shipment to the next
// handoff stage. Each stage has its own confirmation in the field, so one
// command instance carries exactly one target stage.
//
// Example:
//
//	cmd, err := NewAdvanceTransportStageCommand(orderID, transport.StageLoadingComplete)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAdvanceTransportStageCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // out-of-order confirmations fail naming the current stage
//	    return err
//	}
type AdvanceTransportStageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  transport.Stage

	guard guard.ConstructorGuard
}

// NewAdvanceTransportStageCommand creates a command to confirm the next
// handoff stage of a shipment.
func NewAdvanceTransportStageCommand(orderID kernel.UUID, target transport.Stage) (AdvanceTransportStageCommand, error) {
	cmd := AdvanceTransportStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceTransportStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceTransportStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceTransportStageCommandIsNotConstructed)
}

// OrderID returns the transportation order to advance.
func (c AdvanceTransportStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the handoff stage being confirmed.
func (c AdvanceTransportStageCommand) Target() transport.Stage {
	return c.target
}

func (c *AdvanceTransportStageCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AdvanceTransportStageCommand) setTarget(target transport.Stage) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
