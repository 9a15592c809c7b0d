package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates, categories and menu items included.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage, including the
	// default category.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate,
	// including newly added categories and menu items.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier,
	// including its full menu.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
