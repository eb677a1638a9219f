package warehouse

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"
	"recycling/internal/pkg/errs"
)

// ErrReceiptIsNotConstructed is returned when a Receipt instance was not
// created through NewReceipt or RestoreReceipt.
var ErrReceiptIsNotConstructed = errors.New(
	"Receipt must be created via NewReceipt or RestoreReceipt constructor")

// Receipt is the aggregate root for a warehouse intake record. A receipt is
// created against exactly one completed transportation order (the backing
// store enforces the uniqueness) and, once processed, commits the shipment's
// contents into warehouse inventory.
//
// Processing is the single authoritative point where staged and shipped
// goods become durable stock; the inventory posting and the status flip
// happen in one transaction coordinated by the application layer.
type Receipt struct {
	id               kernel.UUID
	receiptNumber    string
	transportOrderID kernel.UUID
	recyclerID       kernel.UUID
	workerID         kernel.UUID
	totalWeight      kernel.Weight
	categories       []transport.Category
	notes            string
	status           Status
	createdAt        time.Time
	processedAt      *time.Time

	isConstructed bool
}

// NewReceipt creates a Pending warehouse receipt with a generated receipt
// number. The total weight must be positive. The caller is responsible for
// checking that the source transportation order is Completed and has no
// prior receipt.
func NewReceipt(
	id kernel.UUID,
	transportOrderID kernel.UUID,
	recyclerID kernel.UUID,
	workerID kernel.UUID,
	totalWeight kernel.Weight,
	categories []transport.Category,
	notes string,
	now time.Time,
) (*Receipt, error) {
	r := &Receipt{
		status:        StatusPending,
		notes:         notes,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setTransportOrderID(transportOrderID),
		r.setRecyclerID(recyclerID),
		r.setWorkerID(workerID),
		r.setTotalWeight(totalWeight),
		r.setCategories(categories),
	); err != nil {
		return nil, err
	}

	r.receiptNumber = generateReceiptNumber(id, now)
	return r, nil
}

// RestoreReceipt reconstructs a receipt from persistence.
func RestoreReceipt(
	id kernel.UUID,
	receiptNumber string,
	transportOrderID kernel.UUID,
	recyclerID kernel.UUID,
	workerID kernel.UUID,
	totalWeight kernel.Weight,
	categories []transport.Category,
	notes string,
	status Status,
	createdAt time.Time,
	processedAt *time.Time,
) (*Receipt, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if receiptNumber == "" {
		return nil, errs.NewValueIsRequiredError("receiptNumber")
	}

	r := &Receipt{
		status:        status,
		notes:         notes,
		createdAt:     createdAt,
		processedAt:   processedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setTransportOrderID(transportOrderID),
		r.setRecyclerID(recyclerID),
		r.setWorkerID(workerID),
		r.setTotalWeight(totalWeight),
		r.setCategories(categories),
	); err != nil {
		return nil, err
	}

	r.receiptNumber = receiptNumber
	return r, nil
}

// Validate ensures the Receipt instance was properly constructed.
func (r *Receipt) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

// ID returns the receipt's unique identifier.
func (r *Receipt) ID() kernel.UUID {
	return r.id
}

// ReceiptNumber returns the human-readable receipt number.
func (r *Receipt) ReceiptNumber() string {
	return r.receiptNumber
}

// TransportOrderID returns the source transportation order.
func (r *Receipt) TransportOrderID() kernel.UUID {
	return r.transportOrderID
}

// RecyclerID returns the recycler whose shipment the receipt records.
func (r *Receipt) RecyclerID() kernel.UUID {
	return r.recyclerID
}

// WorkerID returns the base worker who created the receipt.
func (r *Receipt) WorkerID() kernel.UUID {
	return r.workerID
}

// TotalWeight returns the weighed-in total of the shipment.
func (r *Receipt) TotalWeight() kernel.Weight {
	return r.totalWeight
}

// Categories returns a copy of the item category summary.
func (r *Receipt) Categories() []transport.Category {
	categories := make([]transport.Category, len(r.categories))
	copy(categories, r.categories)
	return categories
}

// Notes returns the free-form intake notes.
func (r *Receipt) Notes() string {
	return r.notes
}

// Status returns the current lifecycle status.
func (r *Receipt) Status() Status {
	return r.status
}

// CreatedAt returns the intake time.
func (r *Receipt) CreatedAt() time.Time {
	return r.createdAt
}

// ProcessedAt returns when the receipt was processed, or nil while Pending.
func (r *Receipt) ProcessedAt() *time.Time {
	return r.processedAt
}

// Process flips a Pending receipt to Processed. The warehouse inventory
// posting must be performed in the same transaction by the caller.
func (r *Receipt) Process(now time.Time) error {
	newStatus, err := r.status.Process()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.processedAt = &now
	return nil
}

func (r *Receipt) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Receipt) setTransportOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("transportOrderID", err)
	}
	r.transportOrderID = id
	return nil
}

func (r *Receipt) setRecyclerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recyclerID", err)
	}
	r.recyclerID = id
	return nil
}

func (r *Receipt) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("workerID", err)
	}
	r.workerID = id
	return nil
}

func (r *Receipt) setTotalWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("totalWeight",
			fmt.Errorf("%s is not greater than 0", weight))
	}
	r.totalWeight = weight
	return nil
}

func (r *Receipt) setCategories(categories []transport.Category) error {
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	r.categories = make([]transport.Category, len(categories))
	copy(r.categories, categories)
	return nil
}

// generateReceiptNumber derives a human-readable receipt number from the
// intake date and the receipt id, e.g. "WR-20260115-9F86D081".
func generateReceiptNumber(id kernel.UUID, now time.Time) string {
	raw := id.Bytes()
	return fmt.Sprintf("WR-%s-%s",
		now.UTC().Format("20060102"),
		strings.ToUpper(hex.EncodeToString(raw[:4])))
}
