package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAvailableMenuItemsQueryIsNotConstructed = errors.New(
	"GetAvailableMenuItemsQuery must be created via NewGetAvailableMenuItemsQuery constructor",
)

// GetAvailableMenuItemsQuery retrieves the orderable part of a restaurant's
// menu, grouped by category.
type GetAvailableMenuItemsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableMenuItemsQuery creates a query for a restaurant's
// available menu items.
func NewGetAvailableMenuItemsQuery(restaurantID kernel.UUID) (GetAvailableMenuItemsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetAvailableMenuItemsQuery{}, err
	}

	return GetAvailableMenuItemsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableMenuItemsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is requested.
func (q GetAvailableMenuItemsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetAvailableMenuItemsQueryResponse is one orderable dish.
type GetAvailableMenuItemsQueryResponse struct {
	MenuItemID   kernel.UUID
	CategoryName string
	Name         string
	Price        int64
}
