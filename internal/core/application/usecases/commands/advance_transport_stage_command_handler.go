package commands

import (
	"context"
	"time"
)

// AdvanceTransportStageCommandHandler handles shipment stage confirmations.
// Confirming loading completion additionally clears the recycler's staging
// inventory in the same transaction: the goods are on the truck, so they no
// longer count as staged.
type AdvanceTransportStageCommandHandler struct {
	uowFactory AdvanceStageUoWFactory
}

// NewAdvanceTransportStageCommandHandler creates a handler for stage
// confirmation operations.
func NewAdvanceTransportStageCommandHandler(uowFactory AdvanceStageUoWFactory) AdvanceTransportStageCommandHandler {
	return AdvanceTransportStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stage confirmation command.
// An out-of-order confirmation fails with a wrong-stage error naming the
// current stage and leaves the order untouched.
func (h AdvanceTransportStageCommandHandler) Handle(ctx context.Context, cmd AdvanceTransportStageCommand) error {
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
	now := time.Now()
	if err = aggregate.AdvanceTo(cmd.Target(), now); err != nil {
		return err
	}

	if cmd.Target().ClearsStaging() {
		if err = uow.InventoryRepository().ClearStaging(ctx, aggregate.RecyclerID(), now); err != nil {
			return err
		}
	}

	if err = transportRepo.Update(ctx, aggregate, loadedStatus, loadedStage); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
