package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableMenuItemsQueryHandler retrieves a restaurant's orderable menu
// from the database. Items a restaurant has taken off sale are filtered
// out.
type GetAvailableMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableMenuItemsQueryHandler creates a handler for menu queries.
func NewGetAvailableMenuItemsQueryHandler(db *gorm.DB) GetAvailableMenuItemsQueryHandler {
	return GetAvailableMenuItemsQueryHandler{db: db}
}

// Handle executes the query, joining categories with their items on the
// indexed restaurant_id and category_id columns.
func (h GetAvailableMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableMenuItemsQuery,
) ([]GetAvailableMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetAvailableMenuItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_items.id,
			categories.name,
			menu_items.name,
			menu_items.price
		FROM menu_items
		JOIN categories ON categories.id = menu_items.category_id
		WHERE categories.restaurant_id = ?
		  AND menu_items.is_available = TRUE
		ORDER BY categories.name, menu_items.name
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetAvailableMenuItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&itemResp.CategoryName,
			&itemResp.Name,
			&itemResp.Price,
		)
		if err != nil {
			return nil, err
		}

		menuItemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.MenuItemID = menuItemID

		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
