package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddOrderItemCommand represents a request to add a menu item to an order.
// The unit price is not part of the command: it is captured from the menu
// inside the handler's transaction.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderItemID kernel.UUID
	menuItemID  kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an order line item.
func NewAddOrderItemCommand(orderID, orderItemID, menuItemID kernel.UUID, quantity int) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderItemID(orderItemID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderItemID returns the identifier for the new line item.
func (c AddOrderItemCommand) OrderItemID() kernel.UUID {
	return c.orderItemID
}

// MenuItemID returns the referenced menu item's identifier.
func (c AddOrderItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the ordered quantity.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setOrderItemID(orderItemID kernel.UUID) error {
	if err := orderItemID.Validate(); err != nil {
		return err
	}
	c.orderItemID = orderItemID
	return nil
}

func (c *AddOrderItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
