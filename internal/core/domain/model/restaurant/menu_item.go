package restaurant

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when using an improperly initialized MenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a dish on a restaurant's menu. It is an entity inside the
// Restaurant aggregate. Its price is the value orders snapshot at the moment
// an item is added; later price changes never touch existing orders.
type MenuItem struct {
	id          kernel.UUID
	name        string
	price       kernel.Money
	isAvailable bool
	guard       guard.ConstructorGuard
}

// NewMenuItem creates an available menu item with a positive price.
func NewMenuItem(id kernel.UUID, name string, price kernel.Money) (*MenuItem, error) {
	m := &MenuItem{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenuItem reconstructs a menu item from persistent storage.
func RestoreMenuItem(id kernel.UUID, name string, price kernel.Money, isAvailable bool) (*MenuItem, error) {
	m, err := NewMenuItem(id, name, price)
	if err != nil {
		return nil, err
	}
	m.isAvailable = isAvailable
	return m, nil
}

// Validate checks if the MenuItem was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu item identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the current menu price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

// MakeUnavailable takes the item off the orderable menu without deleting it.
func (m *MenuItem) MakeUnavailable() {
	m.isAvailable = false
}

// MakeAvailable puts the item back on the orderable menu.
func (m *MenuItem) MakeAvailable() {
	m.isAvailable = true
}

// ChangePrice updates the menu price. Existing orders keep their snapshots.
func (m *MenuItem) ChangePrice(price kernel.Money) error {
	return m.setPrice(price)
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("menu item price")
	}
	m.price = price
	return nil
}
