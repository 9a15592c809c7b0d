package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetRestaurantRevenueQueryIsNotConstructed = errors.New(
		"GetRestaurantRevenueQuery must be created via NewGetRestaurantRevenueQuery constructor",
	)
	ErrPeriodIsInvalid = errors.New("period end must not precede period start")
)

// GetRestaurantRevenueQuery retrieves a restaurant's delivered revenue and
// cancellation count over a reporting period.
type GetRestaurantRevenueQuery struct {
	restaurantID kernel.UUID
	from         time.Time
	to           time.Time

	guard guard.ConstructorGuard
}

// NewGetRestaurantRevenueQuery creates a revenue query for the period
// [from, to).
func NewGetRestaurantRevenueQuery(restaurantID kernel.UUID, from, to time.Time) (GetRestaurantRevenueQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantRevenueQuery{}, err
	}
	if to.Before(from) {
		return GetRestaurantRevenueQuery{}, ErrPeriodIsInvalid
	}

	return GetRestaurantRevenueQuery{
		restaurantID: restaurantID,
		from:         from,
		to:           to,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantRevenueQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose revenue is requested.
func (q GetRestaurantRevenueQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// From returns the period start, inclusive.
func (q GetRestaurantRevenueQuery) From() time.Time {
	return q.from
}

// To returns the period end, exclusive.
func (q GetRestaurantRevenueQuery) To() time.Time {
	return q.to
}

// GetRestaurantRevenueQueryResponse carries the aggregated period figures.
// Revenue counts delivered orders only; cancelled orders are reported
// separately and contribute nothing to revenue.
type GetRestaurantRevenueQueryResponse struct {
	DeliveredRevenue int64
	DeliveredCount   int64
	CancelledCount   int64
}
