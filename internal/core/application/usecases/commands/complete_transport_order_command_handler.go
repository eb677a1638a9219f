package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/ports"
)

// CompleteTransportOrderCommandHandler handles shipment completion at the
// processing base. The base staff pool is notified after commit so intake
// can create the warehouse receipt.
type CompleteTransportOrderCommandHandler struct {
	uowFactory    TransportUoWFactory
	notifications notifications
}

// NewCompleteTransportOrderCommandHandler creates a handler for shipment
// completion operations.
func NewCompleteTransportOrderCommandHandler(
	uowFactory TransportUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompleteTransportOrderCommandHandler {
	return CompleteTransportOrderCommandHandler{
		uowFactory:    uowFactory,
		notifications: newNotifications(notifier, logger),
	}
}

// Handle processes the completion command.
// Requires the order to be InTransit at the terminal handoff stage
// (legacy orders with no stage are accepted).
func (h CompleteTransportOrderCommandHandler) Handle(ctx context.Context, cmd CompleteTransportOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var actualWeight *kernel.Weight
	if cmd.ActualWeightKg() != nil {
		weight, err := kernel.NewWeight(*cmd.ActualWeightKg())
		if err != nil {
			return err
		}
		actualWeight = &weight
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
	if err = aggregate.Complete(actualWeight, time.Now()); err != nil {
		return err
	}

	if err = transportRepo.Update(ctx, aggregate, loadedStatus, loadedStage); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifications.broadcast(ctx, ports.TargetBaseStaff,
		"Shipment arrived",
		fmt.Sprintf("Transportation order %s has arrived and awaits intake.", aggregate.OrderNumber()))

	return nil
}
