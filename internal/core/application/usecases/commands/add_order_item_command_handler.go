package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"
)

// ErrMenuItemIsNotAvailable is returned when adding a menu item that the
// restaurant has taken off sale.
var ErrMenuItemIsNotAvailable = errors.New("menu item is not available")

// AddOrderItemCommandHandler handles the business logic for adding a line
// item to an order. The menu price is captured at add time, so later menu
// price changes never retroactively change an order's total.
type AddOrderItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
func NewAddOrderItemCommandHandler(uowFactory MenuUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add item command. Resolves the menu item on the
// order's restaurant, snapshots its current price, and lets the order
// aggregate apply the total delta.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	orderRepo := uow.OrderRepository()

	loadedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedRestaurant, err := uow.RestaurantRepository().Get(ctx, loadedOrder.RestaurantID())
	if err != nil {
		return err
	}

	menuItem, err := loadedRestaurant.MenuItemByID(cmd.MenuItemID())
	if err != nil {
		return err
	}
	if !menuItem.IsAvailable() {
		return errs.NewValueIsInvalidErrorWithCause("menu item", ErrMenuItemIsNotAvailable)
	}

	if _, err = loadedOrder.AddItem(cmd.OrderItemID(), menuItem.ID(), cmd.Quantity(), menuItem.Price()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, loadedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
