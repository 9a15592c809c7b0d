package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"fooddelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of an order. It references a menu item and captures
// the menu price at order time as an immutable snapshot: later menu price
// changes never affect existing orders.
//
// Quantity is the only mutable attribute, and only the owning Order may
// change it, because every quantity change carries a total-amount delta.
type Item struct {
	// id is the unique identifier of the line item
	id kernel.UUID

	// menuItemID references the menu item this line was created from
	menuItemID kernel.UUID

	// quantity is the number of units ordered (always positive)
	quantity int

	// unitPrice is the menu price captured at order time
	unitPrice kernel.Money

	// guard ensures the item was created via a constructor
	guard guard.ConstructorGuard
}

// NewItem creates a line item with a positive quantity and a positive
// captured unit price.
func NewItem(id, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistent storage.
func RestoreItem(id, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	return NewItem(id, menuItemID, quantity, unitPrice)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item's identifier.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot captured at order time.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns quantity × unit price, the item's contribution to the
// order total.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

// setQuantity validates and sets the quantity. Only the owning Order calls
// this outside construction, pairing it with a total-amount adjustment.
func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
