package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
	"recycling/internal/pkg/guard"
)

var ErrCreateTransportOrderCommandIsNotConstructed = errors.New(
	"CreateTransportOrderCommand must be created via NewCreateTransportOrderCommand constructor",
)

// CreateTransportOrderCommand represents a request to consolidate a
// recycler's staged goods into one shipment to a processing base.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateTransportOrderCommand(orderID, recyclerID, transporterID,
//	    "12 Depot Road", "North Base", "A. Chen", "555-0117", 120, manifest)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment request: %w", err)
//	}
//
//	handler := NewCreateTransportOrderCommandHandler(uowFactory, notifier, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("shipment %s registered", result.OrderNumber)
type CreateTransportOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	recyclerID        kernel.UUID
	transporterID     kernel.UUID
	pickupAddress     string
	destination       string
	contactName       string
	contactPhone      string
	estimatedWeightKg float64
	categories        []CategoryLine

	guard guard.ConstructorGuard
}

// NewCreateTransportOrderCommand creates a command to register a shipment.
// Requires valid recycler and transporter ids, a non-empty pickup address,
// contact info and a positive estimated weight. The category manifest may be
// empty; it is persisted atomically with the order when present.
func NewCreateTransportOrderCommand(
	orderID kernel.UUID,
	recyclerID kernel.UUID,
	transporterID kernel.UUID,
	pickupAddress string,
	destination string,
	contactName string,
	contactPhone string,
	estimatedWeightKg float64,
	categories []CategoryLine,
) (CreateTransportOrderCommand, error) {
	cmd := CreateTransportOrderCommand{
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRecyclerID(recyclerID),
		cmd.setTransporterID(transporterID),
		cmd.setPickupAddress(pickupAddress),
		cmd.setContact(contactName, contactPhone),
		cmd.setEstimatedWeightKg(estimatedWeightKg),
	); err != nil {
		return CreateTransportOrderCommand{}, err
	}

	cmd.categories = make([]CategoryLine, len(categories))
	copy(cmd.categories, categories)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransportOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the transportation order.
func (c CreateTransportOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RecyclerID returns the recycler whose staged goods ship.
func (c CreateTransportOrderCommand) RecyclerID() kernel.UUID {
	return c.recyclerID
}

// TransporterID returns the transporter assigned to the shipment.
func (c CreateTransportOrderCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// PickupAddress returns the staging point address.
func (c CreateTransportOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// Destination returns the processing base address.
func (c CreateTransportOrderCommand) Destination() string {
	return c.destination
}

// ContactName returns the pickup contact person.
func (c CreateTransportOrderCommand) ContactName() string {
	return c.contactName
}

// ContactPhone returns the pickup contact phone number.
func (c CreateTransportOrderCommand) ContactPhone() string {
	return c.contactPhone
}

// EstimatedWeightKg returns the declared shipment weight in kilograms.
func (c CreateTransportOrderCommand) EstimatedWeightKg() float64 {
	return c.estimatedWeightKg
}

// Categories returns the item category manifest.
func (c CreateTransportOrderCommand) Categories() []CategoryLine {
	categories := make([]CategoryLine, len(c.categories))
	copy(categories, c.categories)
	return categories
}

func (c *CreateTransportOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateTransportOrderCommand) setRecyclerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recyclerID", err)
	}

	c.recyclerID = id
	return nil
}

func (c *CreateTransportOrderCommand) setTransporterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("transporterID", err)
	}

	c.transporterID = id
	return nil
}

func (c *CreateTransportOrderCommand) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}

	c.pickupAddress = address
	return nil
}

func (c *CreateTransportOrderCommand) setContact(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("contactName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("contactPhone")
	}

	c.contactName = name
	c.contactPhone = phone
	return nil
}

func (c *CreateTransportOrderCommand) setEstimatedWeightKg(kg float64) error {
	if kg <= 0 {
		return ErrWeightIsInvalid
	}

	c.estimatedWeightKg = kg
	return nil
}
