package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/ports"
	"recycling/internal/pkg/errs"
)

// RollbackAppointmentCommandHandler orchestrates a recycler rollback.
// Flips the appointment to CancelledByRecyclerRollback and posts the
// rationale into the chat history so it stays visible to the user.
type RollbackAppointmentCommandHandler struct {
	uowFactory    RollbackAppointmentUoWFactory
	notifications notifications
}

// NewRollbackAppointmentCommandHandler creates a handler for rollback
// operations.
func NewRollbackAppointmentCommandHandler(
	uowFactory RollbackAppointmentUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RollbackAppointmentCommandHandler {
	return RollbackAppointmentCommandHandler{
		uowFactory:    uowFactory,
		notifications: newNotifications(notifier, logger),
	}
}

// Handle processes the rollback command.
// Requires the appointment to be InProgress and the caller to be the
// assigned recycler. The rationale chat message and the status flip commit
// together; the user is notified after commit, best-effort.
func (h RollbackAppointmentCommandHandler) Handle(ctx context.Context, cmd RollbackAppointmentCommand) error {
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

	appointmentRepo := uow.AppointmentRepository()
	aggregate, err := appointmentRepo.Get(ctx, cmd.AppointmentID())
	if err != nil {
		return err
	}

	loadedStatus := aggregate.Status()
	now := time.Now()
	if err = aggregate.Rollback(cmd.RecyclerID(), now); err != nil {
		return err
	}

	// The chat session opened at acceptance; a missing one means legacy
	// data, the rollback itself must still go through.
	conversationRepo := uow.ConversationRepository()
	if _, err = conversationRepo.GetActiveByOrder(ctx, aggregate.ID()); err == nil {
		notice, msgErr := conversation.NewSystemMessage(kernel.NewUUID(), aggregate.ID(),
			fmt.Sprintf("The recycler cancelled this pickup: %s", cmd.Reason()), now)
		if msgErr != nil {
			return msgErr
		}
		if msgErr = conversationRepo.AddMessage(ctx, notice); msgErr != nil {
			return msgErr
		}
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = appointmentRepo.Update(ctx, aggregate, loadedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifications.send(ctx, ports.TargetUser, aggregate.UserID(),
		"Appointment cancelled by recycler",
		cmd.Reason(),
		aggregate.ID())

	return nil
}
