package commands

import (
	"context"
	"log/slog"
	"time"

	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/ports"
)

// SendReviewRemindersCommandHandler handles the periodic review reminder
// sweep. The reminder marks commit first; notifications go out after, so a
// failed delivery is lost rather than duplicated on the next sweep.
type SendReviewRemindersCommandHandler struct {
	uowFactory    ReviewReminderUoWFactory
	notifications notifications
}

// NewSendReviewRemindersCommandHandler creates a handler for the reminder
// sweep.
func NewSendReviewRemindersCommandHandler(
	uowFactory ReviewReminderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) SendReviewRemindersCommandHandler {
	return SendReviewRemindersCommandHandler{
		uowFactory:    uowFactory,
		notifications: newNotifications(notifier, logger),
	}
}

// Handle processes the sweep command.
// Returns the number of appointments marked and notified.
func (h SendReviewRemindersCommandHandler) Handle(ctx context.Context, cmd SendReviewRemindersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	appointmentRepo := uow.AppointmentRepository()
	due, err := appointmentRepo.GetAllDueReviewReminder(ctx, cmd.CompletedBefore())
	if err != nil {
		return 0, err
	}

	now := time.Now()
	marked := make([]*appointment.Appointment, 0, len(due))
	for _, aggregate := range due {
		loadedStatus := aggregate.Status()
		if err = aggregate.MarkReviewReminded(now); err != nil {
			return 0, err
		}
		if err = appointmentRepo.Update(ctx, aggregate, loadedStatus); err != nil {
			return 0, err
		}
		marked = append(marked, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, aggregate := range marked {
		h.notifications.send(ctx, ports.TargetUser, aggregate.UserID(),
			"How was your pickup?",
			"Your pickup was completed. Please take a moment to review your recycler.",
			aggregate.ID())
	}

	return len(marked), nil
}
