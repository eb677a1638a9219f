package queries

import (
	"context"

	"recycling/internal/core/domain/model/inventory"

	"gorm.io/gorm"
)

// GetStagingInventoryQueryHandler aggregates a recycler's uncleared staging
// postings per category. Aggregates are computed by summation, never stored.
type GetStagingInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStagingInventoryQueryHandler creates a handler for staging stock
// queries. Requires a GORM database connection.
func NewGetStagingInventoryQueryHandler(db *gorm.DB) GetStagingInventoryQueryHandler {
	return GetStagingInventoryQueryHandler{db: db}
}

// Handle executes the aggregation.
// Returns one line per category with weight and value sums over uncleared
// rows, sorted by category for consistent output.
func (h GetStagingInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetStagingInventoryQuery,
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
			AND owner_id = ?
			AND cleared_at IS NULL
		GROUP BY category
		ORDER BY category
	`, inventory.ScopeStaging, query.RecyclerID().String()).Rows()
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
