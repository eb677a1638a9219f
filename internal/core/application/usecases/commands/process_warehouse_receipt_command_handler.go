package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/ports"
)

// ProcessWarehouseReceiptCommandHandler handles receipt processing, the
// single authoritative point where shipped goods become durable warehouse
// stock. The inventory postings and the status flip commit together; a
// failed posting aborts the processing with no partial effect.
type ProcessWarehouseReceiptCommandHandler struct {
	uowFactory    ProcessReceiptUoWFactory
	notifications notifications
}

// NewProcessWarehouseReceiptCommandHandler creates a handler for receipt
// processing operations.
func NewProcessWarehouseReceiptCommandHandler(
	uowFactory ProcessReceiptUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ProcessWarehouseReceiptCommandHandler {
	return ProcessWarehouseReceiptCommandHandler{
		uowFactory:    uowFactory,
		notifications: newNotifications(notifier, logger),
	}
}

// Handle processes the command.
// Requires the receipt to be Pending; processing twice fails with a guard
// error naming the current status, and no second posting batch is written.
// After commit the originating recycler and the base staff pool are
// notified, best-effort.
func (h ProcessWarehouseReceiptCommandHandler) Handle(ctx context.Context, cmd ProcessWarehouseReceiptCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()
	aggregate, err := warehouseRepo.Get(ctx, cmd.ReceiptID())
	if err != nil {
		return err
	}

	loadedStatus := aggregate.Status()
	now := time.Now()
	if err = aggregate.Process(now); err != nil {
		return err
	}

	postings := make([]*inventory.Posting, 0, len(aggregate.Categories()))
	for _, category := range aggregate.Categories() {
		posting, postingErr := inventory.NewWarehousePosting(
			kernel.NewUUID(),
			category.Category(),
			category.Weight(),
			category.Value(),
			aggregate.ID(),
			now,
		)
		if postingErr != nil {
			return postingErr
		}
		postings = append(postings, posting)
	}

	if err = uow.InventoryRepository().AddBatch(ctx, postings); err != nil {
		return err
	}

	if err = warehouseRepo.Update(ctx, aggregate, loadedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifications.send(ctx, ports.TargetRecycler, aggregate.RecyclerID(),
		"Shipment processed",
		fmt.Sprintf("Receipt %s has been processed into warehouse inventory.", aggregate.ReceiptNumber()),
		aggregate.TransportOrderID())
	h.notifications.broadcast(ctx, ports.TargetBaseStaff,
		"Receipt processed",
		fmt.Sprintf("Receipt %s (total weight %s) has been processed.",
			aggregate.ReceiptNumber(), aggregate.TotalWeight()))

	return nil
}
