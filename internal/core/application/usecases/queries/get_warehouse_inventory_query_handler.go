package queries

import (
	"context"

	"recycling/internal/core/domain/model/inventory"

	"gorm.io/gorm"
)

// GetWarehouseInventoryQueryHandler aggregates warehouse-scope postings per
// category.
type GetWarehouseInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehouseInventoryQueryHandler creates a handler for warehouse stock
// queries. Requires a GORM database connection.
func NewGetWarehouseInventoryQueryHandler(db *gorm.DB) GetWarehouseInventoryQueryHandler {
	return GetWarehouseInventoryQueryHandler{db: db}
}

// Handle executes the aggregation, sorted by category for consistent output.
func (h GetWarehouseInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseInventoryQuery,
) ([]InventorySummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category,
			SUM(weight_kg),
			SUM(price)
		FROM inventory_postings
		WHERE scope = ?
		GROUP BY category
		ORDER BY category
	`, inventory.ScopeWarehouse).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make([]InventorySummaryResponse, 0)

	for rows.Next() {
		var line InventorySummaryResponse
		if err = rows.Scan(&line.Category, &line.TotalWeightKg, &line.TotalValue); err != nil {
			return nil, err
		}
		summary = append(summary, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
