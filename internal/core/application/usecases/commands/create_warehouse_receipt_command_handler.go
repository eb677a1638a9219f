package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"
	"recycling/internal/core/domain/model/warehouse"
	"recycling/internal/core/ports"
	"recycling/internal/pkg/errs"
)

// ErrOrderAlreadyHasReceipt indicates a warehouse receipt already exists for
// the transportation order. At most one receipt per order.
var ErrOrderAlreadyHasReceipt = errors.New("transportation order already has a receipt")

// CreateWarehouseReceiptCommandHandler handles shipment intake at the base.
// The source order must be Completed and must not have a receipt yet; the
// uniqueness check runs inside the transaction and the backing store carries
// a unique index on the source order, so a racing duplicate surfaces as a
// conflict the caller re-checks.
type CreateWarehouseReceiptCommandHandler struct {
	uowFactory    CreateReceiptUoWFactory
	notifications notifications
}

// NewCreateWarehouseReceiptCommandHandler creates a handler for intake
// operations.
func NewCreateWarehouseReceiptCommandHandler(
	uowFactory CreateReceiptUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateWarehouseReceiptCommandHandler {
	return CreateWarehouseReceiptCommandHandler{
		uowFactory:    uowFactory,
		notifications: newNotifications(notifier, logger),
	}
}

// CreateWarehouseReceiptResult carries the identifiers the presentation
// layer needs after recording an intake.
type CreateWarehouseReceiptResult struct {
	ReceiptID     kernel.UUID
	ReceiptNumber string
}

// Handle processes the intake command.
// Produces a Pending receipt with a generated receipt number and notifies
// the base staff pool after commit.
func (h CreateWarehouseReceiptCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseReceiptCommand) (CreateWarehouseReceiptResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateWarehouseReceiptResult{}, err
	}

	totalWeight, err := kernel.NewWeight(cmd.TotalWeightKg())
	if err != nil {
		return CreateWarehouseReceiptResult{}, err
	}

	categories := make([]transport.Category, 0, len(cmd.Categories()))
	for _, line := range cmd.Categories() {
		weight, lineErr := kernel.NewWeight(line.WeightKg)
		if lineErr != nil {
			return CreateWarehouseReceiptResult{}, lineErr
		}
		category, lineErr := transport.NewCategory(line.Category, weight, line.Value)
		if lineErr != nil {
			return CreateWarehouseReceiptResult{}, lineErr
		}
		categories = append(categories, category)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateWarehouseReceiptResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.TransportRepository().Get(ctx, cmd.TransportOrderID())
	if err != nil {
		return CreateWarehouseReceiptResult{}, err
	}
	if order.Status() != transport.StatusCompleted {
		return CreateWarehouseReceiptResult{}, errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, a receipt requires a completed transportation order", order.Status()))
	}

	warehouseRepo := uow.WarehouseRepository()
	_, err = warehouseRepo.GetByTransportOrder(ctx, order.ID())
	if err == nil {
		return CreateWarehouseReceiptResult{}, ErrOrderAlreadyHasReceipt
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return CreateWarehouseReceiptResult{}, err
	}

	aggregate, err := warehouse.NewReceipt(
		cmd.ReceiptID(),
		order.ID(),
		order.RecyclerID(),
		cmd.WorkerID(),
		totalWeight,
		categories,
		cmd.Notes(),
		time.Now(),
	)
	if err != nil {
		return CreateWarehouseReceiptResult{}, err
	}

	if err = warehouseRepo.Add(ctx, aggregate); err != nil {
		return CreateWarehouseReceiptResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateWarehouseReceiptResult{}, err
	}

	h.notifications.broadcast(ctx, ports.TargetBaseStaff,
		"Intake recorded",
		fmt.Sprintf("Receipt %s recorded for shipment %s, total weight %s.",
			aggregate.ReceiptNumber(), order.OrderNumber(), aggregate.TotalWeight()))

	return CreateWarehouseReceiptResult{
		ReceiptID:     aggregate.ID(),
		ReceiptNumber: aggregate.ReceiptNumber(),
	}, nil
}
