package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errors.New("menu item name is required")
	ErrPriceIsInvalid         = errors.New("price must be greater than 0")
)

// AddMenuItemCommand represents a request to add a dish to a restaurant's
// menu. A zero-value category ID places the item in the restaurant's default
// category.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	menuItemID   kernel.UUID
	categoryID   kernel.UUID
	name         string
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(
	restaurantID, menuItemID, categoryID kernel.UUID,
	name string,
	price kernel.Money,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		// categoryID is optional and resolved by the aggregate.
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setMenuItemID(menuItemID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// RestaurantID returns the owning restaurant's identifier.
func (c AddMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// MenuItemID returns the identifier for the new menu item.
func (c AddMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// CategoryID returns the target category, zero value for the default one.
func (c AddMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the dish name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Price returns the dish price.
func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c *AddMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *AddMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrPriceIsInvalid
	}
	c.price = price
	return nil
}
