package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRestaurantRevenueQueryHandler computes a restaurant's delivered
// revenue and cancellation count for a reporting period.
type GetRestaurantRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantRevenueQueryHandler creates a handler for revenue
// queries.
func NewGetRestaurantRevenueQueryHandler(db *gorm.DB) GetRestaurantRevenueQueryHandler {
	return GetRestaurantRevenueQueryHandler{db: db}
}

// Handle executes the aggregation. Totals come from the orders' cached
// total_amount column, so the report needs no join against line items.
func (h GetRestaurantRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantRevenueQuery,
) (GetRestaurantRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantRevenueQueryResponse{}, err
	}

	var resp GetRestaurantRevenueQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_amount) FILTER (WHERE status = ?), 0),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM orders
		WHERE restaurant_id = ?
		  AND placed_at >= ?
		  AND placed_at < ?
	`,
		int(order.Delivered),
		int(order.Delivered),
		int(order.Cancelled),
		query.RestaurantID().Bytes(),
		query.From(),
		query.To(),
	).Row()

	if err := row.Scan(&resp.DeliveredRevenue, &resp.DeliveredCount, &resp.CancelledCount); err != nil {
		return GetRestaurantRevenueQueryResponse{}, err
	}

	return resp, nil
}
