package commands

import (
	"context"
)

// AddMenuItemCommandHandler handles the business logic for extending a
// restaurant's menu.
type AddMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu item registration.
func NewAddMenuItemCommandHandler(uowFactory RestaurantUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item command. The restaurant aggregate resolves
// the target category and validates the dish.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()

	loaded, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if _, err = loaded.AddMenuItem(cmd.MenuItemID(), cmd.CategoryID(), cmd.Name(), cmd.Price()); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, loaded); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
