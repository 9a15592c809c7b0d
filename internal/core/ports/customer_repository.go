package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates, addresses included.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage. Fails if the
	// email is already taken (unique index).
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate,
	// including newly added addresses.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier,
	// including all owned addresses.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
