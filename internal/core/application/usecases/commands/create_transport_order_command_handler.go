package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"
	"recycling/internal/core/ports"
)

// CreateTransportOrderResult carries the identifiers the presentation layer
// needs after registering a shipment.
type CreateTransportOrderResult struct {
	OrderID     kernel.UUID
	OrderNumber string
}

// CreateTransportOrderCommandHandler handles shipment registration.
// The order row and its category manifest persist atomically; the base staff
// pool is notified after commit, best-effort.
type CreateTransportOrderCommandHandler struct {
	uowFactory    CreateTransportUoWFactory
	notifications notifications
}

// NewCreateTransportOrderCommandHandler creates a handler for shipment
// registration operations.
func NewCreateTransportOrderCommandHandler(
	uowFactory CreateTransportUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateTransportOrderCommandHandler {
	return CreateTransportOrderCommandHandler{
		uowFactory:    uowFactory,
		notifications: newNotifications(notifier, logger),
	}
}

// Handle processes the shipment registration command.
// Resolves the recycler (a dangling id is a not-found error, not a guard
// violation), builds the Pending order with its generated order number and
// persists it with the manifest in one transaction.
func (h CreateTransportOrderCommandHandler) Handle(ctx context.Context, cmd CreateTransportOrderCommand) (CreateTransportOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateTransportOrderResult{}, err
	}

	estimatedWeight, err := kernel.NewWeight(cmd.EstimatedWeightKg())
	if err != nil {
		return CreateTransportOrderResult{}, err
	}

	categories := make([]transport.Category, 0, len(cmd.Categories()))
	for _, line := range cmd.Categories() {
		weight, lineErr := kernel.NewWeight(line.WeightKg)
		if lineErr != nil {
			return CreateTransportOrderResult{}, lineErr
		}
		category, lineErr := transport.NewCategory(line.Category, weight, line.Value)
		if lineErr != nil {
			return CreateTransportOrderResult{}, lineErr
		}
		categories = append(categories, category)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateTransportOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.RecyclerRepository().Get(ctx, cmd.RecyclerID()); err != nil {
		return CreateTransportOrderResult{}, err
	}

	aggregate, err := transport.NewOrder(
		cmd.OrderID(),
		cmd.RecyclerID(),
		cmd.TransporterID(),
		cmd.PickupAddress(),
		cmd.Destination(),
		cmd.ContactName(),
		cmd.ContactPhone(),
		estimatedWeight,
		categories,
		time.Now(),
	)
	if err != nil {
		return CreateTransportOrderResult{}, err
	}

	if err = uow.TransportRepository().Add(ctx, aggregate); err != nil {
		return CreateTransportOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateTransportOrderResult{}, err
	}

	h.notifications.broadcast(ctx, ports.TargetBaseStaff,
		"Shipment registered",
		fmt.Sprintf("Transportation order %s has been registered, estimated weight %s.",
			aggregate.OrderNumber(), aggregate.EstimatedWeight()))

	return CreateTransportOrderResult{
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
	}, nil
}
