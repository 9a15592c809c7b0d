// Package restaurantrepo provides data transfer objects and mapping
// functions for restaurant persistence, the menu included.
package restaurantrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates. The unique index on Email is the enforcement point for the
// one-restaurant-per-email rule.
type RestaurantDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name        string
	Email       string        `gorm:"uniqueIndex"`
	Phone       string
	AddressLine string
	IsActive    bool
	Categories  []CategoryDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// CategoryDTO represents a persisted menu category.
type CategoryDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID     `gorm:"type:uuid;index"`
	Name         string
	Items        []MenuItemDTO `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for menu categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// MenuItemDTO represents a persisted menu item. Price is stored in subunits.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Price       int64
	IsAvailable bool
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a restaurant domain aggregate to its database
// representation, categories and menu items included.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	categories := aggregate.Categories()
	categoryDTOs := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		items := category.Items()
		itemDTOs := make([]MenuItemDTO, 0, len(items))
		for _, item := range items {
			itemDTOs = append(itemDTOs, MenuItemDTO{
				ID:          item.ID().Bytes(),
				CategoryID:  category.ID().Bytes(),
				Name:        item.Name(),
				Price:       item.Price().Subunits(),
				IsAvailable: item.IsAvailable(),
			})
		}

		categoryDTOs = append(categoryDTOs, CategoryDTO{
			ID:           category.ID().Bytes(),
			RestaurantID: aggregate.ID().Bytes(),
			Name:         category.Name(),
			Items:        itemDTOs,
		})
	}

	return RestaurantDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Email:       aggregate.Email(),
		Phone:       aggregate.Phone(),
		AddressLine: aggregate.AddressLine(),
		IsActive:    aggregate.IsActive(),
		Categories:  categoryDTOs,
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categories := make([]*restaurant.Category, 0, len(dto.Categories))
	for _, categoryDTO := range dto.Categories {
		category, categoryErr := categoryToDomain(categoryDTO)
		if categoryErr != nil {
			return nil, categoryErr
		}
		categories = append(categories, category)
	}

	return restaurant.RestoreRestaurant(
		id, dto.Name, dto.Email, dto.Phone, dto.AddressLine, dto.IsActive, categories)
}

func categoryToDomain(dto CategoryDTO) (*restaurant.Category, error) {
	categoryID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*restaurant.MenuItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, itemErr := kernel.NewPositiveMoney(itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := restaurant.RestoreMenuItem(itemID, itemDTO.Name, price, itemDTO.IsAvailable)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return restaurant.RestoreCategory(categoryID, dto.Name, items)
}
