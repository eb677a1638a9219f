package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
)

// SendMessageCommandHandler handles chat messages between the user and the
// assigned recycler. Messaging is only open while the appointment is
// InProgress; a message arriving after both sides ended the active chat
// starts a fresh conversation row.
type SendMessageCommandHandler struct {
	uowFactory MessagingUoWFactory
}

// NewSendMessageCommandHandler creates a handler for chat messages.
func NewSendMessageCommandHandler(uowFactory MessagingUoWFactory) SendMessageCommandHandler {
	return SendMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the message command.
// The sender must be the owning user or the assigned recycler, matching the
// declared role; guard violations name the current status.
func (h SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) error {
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

	aggregate, err := uow.AppointmentRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.authorize(aggregate, cmd); err != nil {
		return err
	}

	now := time.Now()
	conversationRepo := uow.ConversationRepository()

	chat, err := conversationRepo.GetActiveByOrder(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		chat = nil
	case err != nil:
		return err
	case chat.BothEnded():
		// superseded; the new message opens a fresh conversation
		chat = nil
	}

	if chat == nil {
		chat, err = conversation.NewConversation(kernel.NewUUID(), cmd.OrderID(), now)
		if err != nil {
			return err
		}
		if err = conversationRepo.Add(ctx, chat); err != nil {
			return err
		}
	}

	message, err := conversation.NewMessage(
		kernel.NewUUID(), cmd.OrderID(), cmd.Role(), cmd.SenderID(), cmd.Content(), now)
	if err != nil {
		return err
	}

	if err = conversationRepo.AddMessage(ctx, message); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h SendMessageCommandHandler) authorize(aggregate *appointment.Appointment, cmd SendMessageCommand) error {
	if aggregate.Status() != appointment.InProgress {
		return errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, messaging is only open while the appointment is in progress",
				aggregate.Status()))
	}

	switch cmd.Role() {
	case conversation.RoleUser:
		if !aggregate.UserID().IsEqual(cmd.SenderID()) {
			return appointment.ErrNotAppointmentOwner
		}
	case conversation.RoleRecycler:
		if aggregate.Recycler() == nil || !aggregate.Recycler().IsEqual(cmd.SenderID()) {
			return appointment.ErrNotAssignedRecycler
		}
	default:
		return errs.NewValueIsInvalidError("role")
	}

	return nil
}
