package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/services"
	"recycling/internal/core/ports"
	"recycling/internal/pkg/errs"
)

// ErrConversationIsNotEnded indicates the bilateral chat handshake is
// incomplete, so the appointment cannot be completed yet.
var ErrConversationIsNotEnded = errors.New(
	"conversation must be ended by both the user and the recycler before completion")

// CompleteAppointmentCommandHandler orchestrates appointment completion.
// The conversation both-ended gate, the status flip and the staging inventory
// postings all execute in one transaction: a failed posting aborts the
// completion with no partial effect.
type CompleteAppointmentCommandHandler struct {
	uowFactory    CompleteAppointmentUoWFactory
	allocator     services.WeightAllocator
	notifications notifications
}

// NewCompleteAppointmentCommandHandler creates a handler for completion
// operations.
func NewCompleteAppointmentCommandHandler(
	uowFactory CompleteAppointmentUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompleteAppointmentCommandHandler {
	return CompleteAppointmentCommandHandler{
		uowFactory:    uowFactory,
		allocator:     services.NewWeightAllocator(),
		notifications: newNotifications(notifier, logger),
	}
}

// Handle processes the completion command.
// Requires the appointment to be InProgress, the caller to be the assigned
// recycler and the conversation to be ended by both sides. On success the
// pickup's category line items are posted into the recycler's staging
// inventory, proportioned to the actual weight when one was recorded.
func (h CompleteAppointmentCommandHandler) Handle(ctx context.Context, cmd CompleteAppointmentCommand) error {
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

	appointmentRepo := uow.AppointmentRepository()
	aggregate, err := appointmentRepo.Get(ctx, cmd.AppointmentID())
	if err != nil {
		return err
	}

	chat, err := uow.ConversationRepository().GetActiveByOrder(ctx, aggregate.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrConversationIsNotEnded
	}
	if err != nil {
		return err
	}
	if !chat.BothEnded() {
		return ErrConversationIsNotEnded
	}

	loadedStatus := aggregate.Status()
	now := time.Now()
	if err = aggregate.Complete(cmd.RecyclerID(), actualWeight, now); err != nil {
		return err
	}

	allocations, err := h.allocator.Allocate(aggregate.Items(), aggregate.ActualWeight())
	if err != nil {
		return err
	}

	postings := make([]*inventory.Posting, 0, len(allocations))
	for _, allocation := range allocations {
		posting, postingErr := inventory.NewStagingPosting(
			kernel.NewUUID(),
			cmd.RecyclerID(),
			allocation.Category,
			allocation.Weight,
			allocation.Value,
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

	if err = appointmentRepo.Update(ctx, aggregate, loadedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifications.send(ctx, ports.TargetUser, aggregate.UserID(),
		"Pickup completed",
		"Your pickup appointment has been completed. Thank you for recycling!",
		aggregate.ID())

	return nil
}
