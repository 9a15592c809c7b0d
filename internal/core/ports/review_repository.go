package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review.
	Add(ctx context.Context, aggregate *review.Review) error

	// GetAllByRestaurant retrieves all reviews for the given restaurant.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*review.Review, error)
}
