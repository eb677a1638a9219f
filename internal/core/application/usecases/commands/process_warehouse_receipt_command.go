package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrProcessWarehouseReceiptCommandIsNotConstructed = errors.New(
	"ProcessWarehouseReceiptCommand must be created via NewProcessWarehouseReceiptCommand constructor",
)

// ProcessWarehouseReceiptCommand represents committing a pending receipt's
// contents into warehouse inventory.
type ProcessWarehouseReceiptCommand struct { //nolint:recvcheck //using for validation
	receiptID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessWarehouseReceiptCommand creates a command to process a receipt.
func NewProcessWarehouseReceiptCommand(receiptID kernel.UUID) (ProcessWarehouseReceiptCommand, error) {
	cmd := ProcessWarehouseReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReceiptID(receiptID); err != nil {
		return ProcessWarehouseReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessWarehouseReceiptCommand) Validate() error {
	return c.guard.Validate(ErrProcessWarehouseReceiptCommandIsNotConstructed)
}

// ReceiptID returns the receipt to process.
func (c ProcessWarehouseReceiptCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

func (c *ProcessWarehouseReceiptCommand) setReceiptID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.receiptID = id
	return nil
}
