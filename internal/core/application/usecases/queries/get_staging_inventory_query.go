package queries

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStagingInventoryQueryIsNotConstructed = errors.New(
	"GetStagingInventoryQuery must be created via NewGetStagingInventoryQuery constructor",
)

// GetStagingInventoryQuery retrieves a recycler's current staging stock:
// per-category sums over uncleared staging postings. Cleared postings are
// on a departed shipment and no longer count.
//
// Example:
//
//	query, err := NewGetStagingInventoryQuery(recyclerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetStagingInventoryQueryHandler(db)
//	stock, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, line := range stock {
//	    fmt.Printf("%s: %.1f kg worth %s\n", line.Category, line.TotalWeightKg, line.TotalValue)
//	}
type GetStagingInventoryQuery struct { //nolint:recvcheck //using for validation
	recyclerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStagingInventoryQuery creates a query for a recycler's staging stock.
func NewGetStagingInventoryQuery(recyclerID kernel.UUID) (GetStagingInventoryQuery, error) {
	if err := recyclerID.Validate(); err != nil {
		return GetStagingInventoryQuery{}, err
	}

	return GetStagingInventoryQuery{
		recyclerID: recyclerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStagingInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStagingInventoryQueryIsNotConstructed)
}

// RecyclerID returns the recycler whose staging stock is requested.
func (q GetStagingInventoryQuery) RecyclerID() kernel.UUID {
	return q.recyclerID
}

// InventorySummaryResponse is one category's aggregated stock line.
type InventorySummaryResponse struct {
	Category      string
	TotalWeightKg float64
	TotalValue    decimal.Decimal
}
