package commands

import (
	"context"
	"time"

	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/domain/model/kernel"
)

// CreateAppointmentCommandHandler handles the business logic for pickup
// submissions. Creates the appointment in Pending status, awaiting a recycler.
type CreateAppointmentCommandHandler struct {
	uowFactory CreateAppointmentUoWFactory
}

// NewCreateAppointmentCommandHandler creates a handler for pickup submissions.
// Requires a CreateAppointmentUoWFactory for transactional persistence.
func NewCreateAppointmentCommandHandler(uowFactory CreateAppointmentUoWFactory) CreateAppointmentCommandHandler {
	return CreateAppointmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command.
// Converts the category lines into domain line items and persists the new
// Pending appointment, or rolls back on any error.
func (h CreateAppointmentCommandHandler) Handle(ctx context.Context, cmd CreateAppointmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	estimatedWeight, err := kernel.NewWeight(cmd.EstimatedWeightKg())
	if err != nil {
		return err
	}

	items := make([]appointment.CategoryItem, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		weight, err := kernel.NewWeight(line.WeightKg)
		if err != nil {
			return err
		}
		item, err := appointment.NewCategoryItem(line.Category, line.Answers, weight, line.Value)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := appointment.NewAppointment(
		cmd.AppointmentID(), cmd.UserID(), estimatedWeight, items, time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AppointmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
