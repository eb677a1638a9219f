package commands

import (
	"context"
	"time"
)

// AcceptTransportOrderCommandHandler handles transporter acceptance of a
// pending shipment.
type AcceptTransportOrderCommandHandler struct {
	uowFactory TransportUoWFactory
}

// NewAcceptTransportOrderCommandHandler creates a handler for shipment
// acceptance operations.
func NewAcceptTransportOrderCommandHandler(uowFactory TransportUoWFactory) AcceptTransportOrderCommandHandler {
	return AcceptTransportOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Requires the order to be Pending and the caller to be the assigned
// transporter.
func (h AcceptTransportOrderCommandHandler) Handle(ctx context.Context, cmd AcceptTransportOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	transportRepo := uow.TransportRepository()
	aggregate, err := transportRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedStatus, loadedStage := aggregate.Status(), aggregate.Stage()
	if err = aggregate.Accept(cmd.TransporterID(), time.Now()); err != nil {
		return err
	}

	if err = transportRepo.Update(ctx, aggregate, loadedStatus, loadedStage); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
