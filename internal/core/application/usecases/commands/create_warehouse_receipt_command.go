package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrCreateWarehouseReceiptCommandIsNotConstructed = errors.New(
	"CreateWarehouseReceiptCommand must be created via NewCreateWarehouseReceiptCommand constructor",
)

// CreateWarehouseReceiptCommand represents a base worker recording the
// intake of an arrived shipment.
//
// Example:
//
//	receiptID := kernel.NewUUID()
//	cmd, err := NewCreateWarehouseReceiptCommand(receiptID, transportOrderID,
//	    workerID, 42.5, lines, "pallet slightly damp")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCreateWarehouseReceiptCommandHandler(uowFactory, notifier, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // fails if the order is not completed or already has a receipt
//	    return err
//	}
//	fmt.Printf("receipt %s recorded", result.ReceiptNumber)
type CreateWarehouseReceiptCommand struct { //nolint:recvcheck //using for validation
	receiptID        kernel.UUID
	transportOrderID kernel.UUID
	workerID         kernel.UUID
	totalWeightKg    float64
	categories       []CategoryLine
	notes            string

	guard guard.ConstructorGuard
}

// NewCreateWarehouseReceiptCommand creates a command to record shipment
// intake. Requires a positive total weight; notes are optional.
func NewCreateWarehouseReceiptCommand(
	receiptID kernel.UUID,
	transportOrderID kernel.UUID,
	workerID kernel.UUID,
	totalWeightKg float64,
	categories []CategoryLine,
	notes string,
) (CreateWarehouseReceiptCommand, error) {
	cmd := CreateWarehouseReceiptCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReceiptID(receiptID),
		cmd.setTransportOrderID(transportOrderID),
		cmd.setWorkerID(workerID),
		cmd.setTotalWeightKg(totalWeightKg),
	); err != nil {
		return CreateWarehouseReceiptCommand{}, err
	}

	cmd.categories = make([]CategoryLine, len(categories))
	copy(cmd.categories, categories)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseReceiptCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseReceiptCommandIsNotConstructed)
}

// ReceiptID returns the unique identifier for the receipt.
func (c CreateWarehouseReceiptCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

// TransportOrderID returns the source transportation order.
func (c CreateWarehouseReceiptCommand) TransportOrderID() kernel.UUID {
	return c.transportOrderID
}

// WorkerID returns the base worker recording the intake.
func (c CreateWarehouseReceiptCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// TotalWeightKg returns the weighed-in total in kilograms.
func (c CreateWarehouseReceiptCommand) TotalWeightKg() float64 {
	return c.totalWeightKg
}

// Categories returns the item category summary.
func (c CreateWarehouseReceiptCommand) Categories() []CategoryLine {
	categories := make([]CategoryLine, len(c.categories))
	copy(categories, c.categories)
	return categories
}

// Notes returns the free-form intake notes.
func (c CreateWarehouseReceiptCommand) Notes() string {
	return c.notes
}

func (c *CreateWarehouseReceiptCommand) setReceiptID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.receiptID = id
	return nil
}

func (c *CreateWarehouseReceiptCommand) setTransportOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.transportOrderID = id
	return nil
}

func (c *CreateWarehouseReceiptCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.workerID = id
	return nil
}

func (c *CreateWarehouseReceiptCommand) setTotalWeightKg(kg float64) error {
	if kg <= 0 {
		return ErrWeightIsInvalid
	}

	c.totalWeightKg = kg
	return nil
}
