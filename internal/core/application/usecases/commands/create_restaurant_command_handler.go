package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler handles the business logic for restaurant
// registration.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant registration command.
func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
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

	newRestaurant, err := restaurant.NewRestaurant(
		cmd.RestaurantID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.AddressLine())
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, newRestaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
