package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Verifies that the customer exists, that the delivery address belongs to
// that customer, and that the restaurant accepts orders, all within the
// transaction that writes the order. A dangling reference can therefore
// never be committed.
type CreateOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory PlacementUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command. The order starts pending
// with no items and a zero total.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderingCustomer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if _, err = orderingCustomer.AddressByID(cmd.AddressID()); err != nil {
		return err
	}

	preparingRestaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = preparingRestaurant.EnsureAcceptsOrders(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.RestaurantID(), cmd.AddressID())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
