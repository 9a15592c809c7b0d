package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payments.
type PaymentRepository interface {
	// Add persists a new payment. The unique index on the order reference
	// makes a second payment for the same order fail.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByOrderID retrieves the payment recorded for the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
