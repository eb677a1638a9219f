package commands

import (
	"context"
	"log/slog"
	"time"

	"recycling/internal/core/ports"
)

// CancelAppointmentCommandHandler handles user-initiated cancellation.
// Only Pending appointments are cancellable; anything later is rejected by
// the status machine with a "not cancellable" guard error.
type CancelAppointmentCommandHandler struct {
	uowFactory    CancelAppointmentUoWFactory
	notifications notifications
}

// NewCancelAppointmentCommandHandler creates a handler for cancellation
// operations.
func NewCancelAppointmentCommandHandler(
	uowFactory CancelAppointmentUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CancelAppointmentCommandHandler {
	return CancelAppointmentCommandHandler{
		uowFactory:    uowFactory,
		notifications: newNotifications(notifier, logger),
	}
}

// Handle processes the cancellation command.
// Requires the caller to own the appointment and the status to be Pending.
func (h CancelAppointmentCommandHandler) Handle(ctx context.Context, cmd CancelAppointmentCommand) error {
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
	if err = aggregate.Cancel(cmd.UserID(), time.Now()); err != nil {
		return err
	}

	if err = appointmentRepo.Update(ctx, aggregate, loadedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifications.send(ctx, ports.TargetUser, aggregate.UserID(),
		"Appointment cancelled",
		"Your pickup appointment has been cancelled.",
		aggregate.ID())

	return nil
}
