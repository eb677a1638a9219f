package queries

import (
	"errors"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrGetPendingTransportOrdersQueryIsNotConstructed = errors.New(
	"GetPendingTransportOrdersQuery must be created via NewGetPendingTransportOrdersQuery constructor",
)

// GetPendingTransportOrdersQuery retrieves a transporter's worklist: the
// shipments assigned to them that still await acceptance.
type GetPendingTransportOrdersQuery struct { //nolint:recvcheck //using for validation
	transporterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingTransportOrdersQuery creates a query for a transporter's
// pending shipments.
func NewGetPendingTransportOrdersQuery(transporterID kernel.UUID) (GetPendingTransportOrdersQuery, error) {
	if err := transporterID.Validate(); err != nil {
		return GetPendingTransportOrdersQuery{}, err
	}

	return GetPendingTransportOrdersQuery{
		transporterID: transporterID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingTransportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingTransportOrdersQueryIsNotConstructed)
}

// TransporterID returns the transporter whose worklist is requested.
func (q GetPendingTransportOrdersQuery) TransporterID() kernel.UUID {
	return q.transporterID
}

// GetPendingTransportOrdersQueryResponse is one pending shipment on the
// worklist.
type GetPendingTransportOrdersQueryResponse struct {
	ID                kernel.UUID
	OrderNumber       string
	PickupAddress     string
	Destination       string
	EstimatedWeightKg float64
	CreatedAt         time.Time
}
