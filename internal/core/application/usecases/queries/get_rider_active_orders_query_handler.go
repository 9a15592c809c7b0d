package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRiderActiveOrdersQueryHandler retrieves a rider's in-flight orders
// from the database.
type GetRiderActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderActiveOrdersQueryHandler creates a handler for rider workload
// queries.
func NewGetRiderActiveOrdersQueryHandler(db *gorm.DB) GetRiderActiveOrdersQueryHandler {
	return GetRiderActiveOrdersQueryHandler{db: db}
}

// Handle executes the query on the indexed rider_id column, excluding
// orders that already reached a terminal state.
func (h GetRiderActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRiderActiveOrdersQuery,
) ([]GetRiderActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetRiderActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			placed_at
		FROM orders
		WHERE rider_id = ?
		  AND status NOT IN (?, ?)
		ORDER BY placed_at ASC
	`, query.RiderID().Bytes(), int(order.Delivered), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetRiderActiveOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&status,
			&orderResp.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status)

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
