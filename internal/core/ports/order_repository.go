package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, items and
	// cached total included. The write is version-guarded: if another
	// writer has updated the order since it was read, Update fails with a
	// VersionIsInvalidError and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order aggregate that owns the given line
	// item. Used by item-level operations that address an item without
	// naming its order.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// GetFirstUnassigned retrieves the oldest non-terminal order with no
	// rider assigned. Used by the dispatch workflow.
	GetFirstUnassigned(ctx context.Context) (*order.Order, error)

	// GetAllByRider retrieves all non-terminal orders assigned to the rider.
	GetAllByRider(ctx context.Context, riderID kernel.UUID) ([]*order.Order, error)
}
