package transport

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New(
		"Order must be created via NewOrder or RestoreOrder constructor")

	// ErrNotAssignedTransporter indicates the caller is not the transporter
	// assigned to the order.
	ErrNotAssignedTransporter = errors.New("caller is not the assigned transporter")
)

// Order is the aggregate root for a transportation order: one recycler's
// staged inventory consolidated into a single shipment to one destination.
//
// The order runs two nested machines. Status moves Pending -> Accepted ->
// InTransit -> Completed. While InTransit, Stage walks the fixed handoff
// sequence (see Stage); every transition is guarded by exact current-stage
// equality, and an out-of-order call fails without side effects.
//
// One compatibility carve-out: records restored from persistence with no
// stage while InTransit predate stage tracking and match any stage guard.
// New code always sets a stage on entering transit, so the wildcard never
// applies to orders created here.
type Order struct {
	id              kernel.UUID
	orderNumber     string
	recyclerID      kernel.UUID
	transporterID   kernel.UUID
	pickupAddress   string
	destination     string
	contactName     string
	contactPhone    string
	estimatedWeight kernel.Weight
	actualWeight    *kernel.Weight
	categories      []Category
	status          Status
	stage           *Stage
	createdAt       time.Time
	acceptedAt      *time.Time
	pickedUpAt      *time.Time
	completedAt     *time.Time

	isConstructed bool
}

// NewOrder creates a Pending transportation order with a generated
// human-readable order number. The pickup address must be non-empty and the
// estimated weight positive. The category manifest travels with the order
// and is persisted atomically with it.
func NewOrder(
	id kernel.UUID,
	recyclerID kernel.UUID,
	transporterID kernel.UUID,
	pickupAddress string,
	destination string,
	contactName string,
	contactPhone string,
	estimatedWeight kernel.Weight,
	categories []Category,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRecyclerID(recyclerID),
		o.setTransporterID(transporterID),
		o.setPickupAddress(pickupAddress),
		o.setContact(contactName, contactPhone),
		o.setEstimatedWeight(estimatedWeight),
		o.setCategories(categories),
	); err != nil {
		return nil, err
	}

	o.destination = destination
	o.orderNumber = generateOrderNumber(id, now)
	return o, nil
}

// RestoreOrder reconstructs a transportation order from persistence.
// A nil stage on an InTransit order is accepted for legacy rows.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	recyclerID kernel.UUID,
	transporterID kernel.UUID,
	pickupAddress string,
	destination string,
	contactName string,
	contactPhone string,
	estimatedWeight kernel.Weight,
	actualWeight *kernel.Weight,
	categories []Category,
	status Status,
	stage *Stage,
	createdAt time.Time,
	acceptedAt, pickedUpAt, completedAt *time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if stage != nil {
		if err := stage.Validate(); err != nil {
			return nil, err
		}
		if status != StatusInTransit {
			return nil, errs.NewValueIsInvalidErrorWithCause("stage",
				fmt.Errorf("status %s must not carry a stage", status))
		}
	}
	if actualWeight != nil {
		if err := actualWeight.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		status:        status,
		stage:         stage,
		actualWeight:  actualWeight,
		createdAt:     createdAt,
		acceptedAt:    acceptedAt,
		pickedUpAt:    pickedUpAt,
		completedAt:   completedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRecyclerID(recyclerID),
		o.setTransporterID(transporterID),
		o.setPickupAddress(pickupAddress),
		o.setContact(contactName, contactPhone),
		o.setEstimatedWeight(estimatedWeight),
		o.setCategories(categories),
	); err != nil {
		return nil, err
	}

	o.destination = destination
	o.orderNumber = orderNumber
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number generated at creation.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// RecyclerID returns the recycler whose staged goods the shipment consolidates.
func (o *Order) RecyclerID() kernel.UUID {
	return o.recyclerID
}

// TransporterID returns the transporter assigned to carry the shipment.
func (o *Order) TransporterID() kernel.UUID {
	return o.transporterID
}

// PickupAddress returns the recycler's staging point address.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// Destination returns the processing base the shipment is headed to.
func (o *Order) Destination() string {
	return o.destination
}

// ContactName returns the pickup contact person.
func (o *Order) ContactName() string {
	return o.contactName
}

// ContactPhone returns the pickup contact phone number.
func (o *Order) ContactPhone() string {
	return o.contactPhone
}

// EstimatedWeight returns the declared shipment weight.
func (o *Order) EstimatedWeight() kernel.Weight {
	return o.estimatedWeight
}

// ActualWeight returns the weight recorded at completion, or nil before that.
func (o *Order) ActualWeight() *kernel.Weight {
	return o.actualWeight
}

// Categories returns a copy of the item category manifest.
func (o *Order) Categories() []Category {
	categories := make([]Category, len(o.categories))
	copy(categories, o.categories)
	return categories
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Stage returns the current handoff stage, or nil outside InTransit
// (and for legacy rows that predate stage tracking).
func (o *Order) Stage() *Stage {
	return o.stage
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns when the transporter accepted the job, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// PickedUpAt returns when loading completed, or nil.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// CompletedAt returns when the shipment completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Accept lets the assigned transporter take a Pending order.
// Returns ErrNotAssignedTransporter for any other caller.
func (o *Order) Accept(transporterID kernel.UUID, now time.Time) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}
	if !o.transporterID.IsEqual(transporterID) {
		return ErrNotAssignedTransporter
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.acceptedAt = &now
	return nil
}

// AdvanceTo moves the order to the target handoff stage.
//
// Entering StageConfirmPickup flips an Accepted order to InTransit.
// Every later stage requires the order to be InTransit and currently at the
// stage immediately preceding the target; any other current stage fails with
// a wrong-stage error that names the current stage, and the order is left
// untouched. A legacy nil stage matches any guard.
func (o *Order) AdvanceTo(target Stage, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == StageConfirmPickup {
		newStatus, err := o.status.BeginTransit()
		if err != nil {
			return err
		}
		o.status = newStatus
		o.setStage(target)
		return nil
	}

	if o.status != StatusInTransit {
		return errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, cannot advance to %s", o.status, target))
	}

	required, _ := target.Previous()
	if o.stage != nil && *o.stage != required {
		return errs.NewStateIsInvalidErrorWithCause("stage",
			fmt.Errorf("wrong stage: order is at %s, cannot advance to %s", o.stage, target))
	}

	o.setStage(target)
	if target == StageLoadingComplete && o.pickedUpAt == nil {
		o.pickedUpAt = &now
	}
	return nil
}

// Complete closes an InTransit order from the terminal stage.
// The optional actual weight recorded at the base replaces the estimate.
// A legacy nil stage matches the terminal-stage guard.
func (o *Order) Complete(actualWeight *kernel.Weight, now time.Time) error {
	if actualWeight != nil {
		if err := actualWeight.Validate(); err != nil {
			return err
		}
	}

	if o.stage != nil && !o.stage.IsTerminal() {
		return errs.NewStateIsInvalidErrorWithCause("stage",
			fmt.Errorf("wrong stage: order is at %s, cannot complete", o.stage))
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stage = nil
	o.actualWeight = actualWeight
	o.completedAt = &now
	return nil
}

func (o *Order) setStage(stage Stage) {
	o.stage = &stage
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRecyclerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recyclerID", err)
	}
	o.recyclerID = id
	return nil
}

func (o *Order) setTransporterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("transporterID", err)
	}
	o.transporterID = id
	return nil
}

func (o *Order) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = address
	return nil
}

func (o *Order) setContact(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("contactName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("contactPhone")
	}
	o.contactName = name
	o.contactPhone = phone
	return nil
}

func (o *Order) setEstimatedWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("estimatedWeight",
			fmt.Errorf("%s is not greater than 0", weight))
	}
	o.estimatedWeight = weight
	return nil
}

func (o *Order) setCategories(categories []Category) error {
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	o.categories = make([]Category, len(categories))
	copy(o.categories, categories)
	return nil
}

// generateOrderNumber derives a human-readable shipment number from the
// creation date and the order id, e.g. "TO-20260115-9F86D081".
func generateOrderNumber(id kernel.UUID, now time.Time) string {
	raw := id.Bytes()
	return fmt.Sprintf("TO-%s-%s",
		now.UTC().Format("20060102"),
		strings.ToUpper(hex.EncodeToString(raw[:4])))
}
