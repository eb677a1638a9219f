package queries

import (
	"errors"

	"recycling/internal/pkg/guard"
)

var ErrGetWarehouseInventoryQueryIsNotConstructed = errors.New(
	"GetWarehouseInventoryQuery must be created via NewGetWarehouseInventoryQuery constructor",
)

// GetWarehouseInventoryQuery retrieves the warehouse-wide stock: per-category
// sums over all warehouse-scope postings. Warehouse postings are never
// cleared, so the sums only grow.
type GetWarehouseInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWarehouseInventoryQuery creates a query for warehouse stock.
// This is a parameterless query over the warehouse-global scope.
func NewGetWarehouseInventoryQuery() GetWarehouseInventoryQuery {
	return GetWarehouseInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWarehouseInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseInventoryQueryIsNotConstructed)
}
