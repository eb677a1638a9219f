package commands

import (
	"context"
	"time"
)

// EndConversationCommandHandler handles one side's conversation end marker.
type EndConversationCommandHandler struct {
	uowFactory ConversationUoWFactory
}

// NewEndConversationCommandHandler creates a handler for conversation end
// operations.
func NewEndConversationCommandHandler(uowFactory ConversationUoWFactory) EndConversationCommandHandler {
	return EndConversationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the end command.
// Succeeds regardless of whether the counterpart has ended; the operation
// only stamps the caller's own marker, so two simultaneous ends commute.
func (h EndConversationCommandHandler) Handle(ctx context.Context, cmd EndConversationCommand) error {
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

	conversationRepo := uow.ConversationRepository()
	chat, err := conversationRepo.GetActiveByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = chat.EndBy(cmd.Role(), time.Now()); err != nil {
		return err
	}

	if err = conversationRepo.UpdateEndMarker(ctx, chat, cmd.Role()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
