package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand represents a request to change the quantity of an
// existing order line item. The line is addressed by its own identifier;
// the handler resolves the owning order.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderItemID kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemCommand creates a command to change a line item's
// quantity.
func NewUpdateOrderItemCommand(orderItemID kernel.UUID, quantity int) (UpdateOrderItemCommand, error) {
	cmd := UpdateOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderItemID(orderItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

// OrderItemID returns the line item's identifier.
func (c UpdateOrderItemCommand) OrderItemID() kernel.UUID {
	return c.orderItemID
}

// Quantity returns the new quantity.
func (c UpdateOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateOrderItemCommand) setOrderItemID(orderItemID kernel.UUID) error {
	if err := orderItemID.Validate(); err != nil {
		return err
	}
	c.orderItemID = orderItemID
	return nil
}

func (c *UpdateOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
