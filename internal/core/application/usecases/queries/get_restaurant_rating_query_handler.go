package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantRatingQueryHandler computes a restaurant's average rating
// and review count in the database.
type GetRestaurantRatingQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantRatingQueryHandler creates a handler for rating queries.
func NewGetRestaurantRatingQueryHandler(db *gorm.DB) GetRestaurantRatingQueryHandler {
	return GetRestaurantRatingQueryHandler{db: db}
}

// Handle executes the aggregation on the indexed restaurant_id column.
func (h GetRestaurantRatingQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantRatingQuery,
) (GetRestaurantRatingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantRatingQueryResponse{}, err
	}

	var resp GetRestaurantRatingQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(AVG(rating), 0),
			COUNT(*)
		FROM reviews
		WHERE restaurant_id = ?
	`, query.RestaurantID().Bytes()).Row()

	if err := row.Scan(&resp.AverageRating, &resp.ReviewCount); err != nil {
		return GetRestaurantRatingQueryResponse{}, err
	}

	return resp, nil
}
