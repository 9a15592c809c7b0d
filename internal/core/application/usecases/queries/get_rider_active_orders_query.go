package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRiderActiveOrdersQueryIsNotConstructed = errors.New(
	"GetRiderActiveOrdersQuery must be created via NewGetRiderActiveOrdersQuery constructor",
)

// GetRiderActiveOrdersQuery retrieves the orders a rider is currently
// delivering, terminal orders excluded.
type GetRiderActiveOrdersQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderActiveOrdersQuery creates a query for a rider's active orders.
func NewGetRiderActiveOrdersQuery(riderID kernel.UUID) (GetRiderActiveOrdersQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderActiveOrdersQuery{}, err
	}

	return GetRiderActiveOrdersQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderActiveOrdersQueryIsNotConstructed)
}

// RiderID returns the rider whose workload is requested.
func (q GetRiderActiveOrdersQuery) RiderID() kernel.UUID {
	return q.riderID
}

// GetRiderActiveOrdersQueryResponse is one order in a rider's workload.
type GetRiderActiveOrdersQueryResponse struct {
	ID       kernel.UUID
	Status   order.Status
	PlacedAt time.Time
}
