package queries

import (
	"context"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingTransportOrdersQueryHandler reads a transporter's pending
// shipments from the database.
type GetPendingTransportOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingTransportOrdersQueryHandler creates a handler for transporter
// worklist queries. Requires a GORM database connection.
func NewGetPendingTransportOrdersQueryHandler(db *gorm.DB) GetPendingTransportOrdersQueryHandler {
	return GetPendingTransportOrdersQueryHandler{db: db}
}

// Handle executes the worklist query, oldest shipment first.
func (h GetPendingTransportOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingTransportOrdersQuery,
) ([]GetPendingTransportOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			pickup_address,
			destination,
			estimated_weight_kg,
			created_at
		FROM transport_orders
		WHERE status = ?
			AND transporter_id = ?
		ORDER BY created_at, id
	`, transport.StatusPending, query.TransporterID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetPendingTransportOrdersQueryResponse, 0)

	for rows.Next() {
		var id uuid.UUID
		var order GetPendingTransportOrdersQueryResponse

		err = rows.Scan(
			&id,
			&order.OrderNumber,
			&order.PickupAddress,
			&order.Destination,
			&order.EstimatedWeightKg,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		order.ID = orderID

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
