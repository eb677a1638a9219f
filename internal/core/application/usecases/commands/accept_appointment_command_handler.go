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
)

// ErrRecyclerIsNotAvailable indicates the recycler's intake switch is off,
// so new appointments cannot be accepted on their behalf.
var ErrRecyclerIsNotAvailable = errors.New("recycler is not available for new appointments")

// AcceptAppointmentCommandHandler orchestrates appointment acceptance.
// Checks the recycler's availability, assigns them to the appointment, opens
// the chat session and posts the acceptance notice into it, all in one
// transaction. The user is notified after commit, best-effort.
type AcceptAppointmentCommandHandler struct {
	uowFactory    AcceptAppointmentUoWFactory
	notifications notifications
}

// NewAcceptAppointmentCommandHandler creates a handler for appointment
// acceptance operations.
func NewAcceptAppointmentCommandHandler(
	uowFactory AcceptAppointmentUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AcceptAppointmentCommandHandler {
	return AcceptAppointmentCommandHandler{
		uowFactory:    uowFactory,
		notifications: newNotifications(notifier, logger),
	}
}

// Handle processes the acceptance command.
// Requires the appointment to be Pending and the recycler to be available.
// Guard violations name the current status so the caller can resynchronize.
func (h AcceptAppointmentCommandHandler) Handle(ctx context.Context, cmd AcceptAppointmentCommand) error {
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

	recycler, err := uow.RecyclerRepository().Get(ctx, cmd.RecyclerID())
	if err != nil {
		return err
	}
	if !recycler.IsAvailable() {
		return ErrRecyclerIsNotAvailable
	}

	appointmentRepo := uow.AppointmentRepository()
	aggregate, err := appointmentRepo.Get(ctx, cmd.AppointmentID())
	if err != nil {
		return err
	}

	loadedStatus := aggregate.Status()
	now := time.Now()
	if err = aggregate.Accept(cmd.RecyclerID(), now); err != nil {
		return err
	}

	conversationRepo := uow.ConversationRepository()
	chat, err := conversation.NewConversation(kernel.NewUUID(), aggregate.ID(), now)
	if err != nil {
		return err
	}
	if err = conversationRepo.Add(ctx, chat); err != nil {
		return err
	}

	notice, err := conversation.NewSystemMessage(kernel.NewUUID(), aggregate.ID(),
		fmt.Sprintf("Recycler %s has accepted this pickup appointment.", recycler.Name()), now)
	if err != nil {
		return err
	}
	if err = conversationRepo.AddMessage(ctx, notice); err != nil {
		return err
	}

	if err = appointmentRepo.Update(ctx, aggregate, loadedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifications.send(ctx, ports.TargetUser, aggregate.UserID(),
		"Appointment accepted",
		fmt.Sprintf("Recycler %s has accepted your pickup appointment.", recycler.Name()),
		aggregate.ID())

	return nil
}
