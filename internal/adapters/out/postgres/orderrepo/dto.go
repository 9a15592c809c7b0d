// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational tables with indexing for the
// lookups the queries and the dispatch workflow need: by customer, by
// restaurant, by rider, and by status.
//
// Version backs the optimistic lock: Update only matches rows still carrying
// the version the aggregate was loaded with.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;index"`
	AddressID    uuid.UUID      `gorm:"type:uuid"`
	RiderID      *uuid.UUID     `gorm:"type:uuid;index"`
	Status       int            `gorm:"index"`
	TotalAmount  int64
	PlacedAt     time.Time
	Version      int64
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a persisted order line item. UnitPrice is the menu
// price snapshot captured when the item was added, stored in subunits.
type OrderItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	UnitPrice  int64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, line items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Subunits(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		AddressID:    aggregate.AddressID().Bytes(),
		RiderID:      riderID,
		Status:       int(aggregate.Status()),
		TotalAmount:  aggregate.TotalAmount().Subunits(),
		PlacedAt:     aggregate.PlacedAt(),
		Version:      aggregate.Version(),
		Items:        itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-verifies the cached total against the item sum.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, addressID,
		riderID,
		order.Status(dto.Status),
		items,
		totalAmount,
		dto.PlacedAt,
		dto.Version,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewPositiveMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(itemID, menuItemID, dto.Quantity, unitPrice)
}
