package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantRatingQueryIsNotConstructed = errors.New(
	"GetRestaurantRatingQuery must be created via NewGetRestaurantRatingQuery constructor",
)

// GetRestaurantRatingQuery retrieves a restaurant's average review rating.
type GetRestaurantRatingQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantRatingQuery creates a query for a restaurant's rating.
func NewGetRestaurantRatingQuery(restaurantID kernel.UUID) (GetRestaurantRatingQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantRatingQuery{}, err
	}

	return GetRestaurantRatingQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantRatingQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose rating is requested.
func (q GetRestaurantRatingQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantRatingQueryResponse carries the aggregated rating. A
// restaurant without reviews reports a zero average over zero reviews.
type GetRestaurantRatingQueryResponse struct {
	AverageRating float64
	ReviewCount   int64
}
