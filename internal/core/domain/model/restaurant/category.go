package restaurant

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned when using an improperly initialized Category.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// DefaultCategoryName is the name of the category every restaurant starts
// with. Menu items added without an explicit category land here.
const DefaultCategoryName = "General"

// Category groups menu items on a restaurant's menu.
type Category struct {
	id    kernel.UUID
	name  string
	items []*MenuItem
	guard guard.ConstructorGuard
}

// NewCategory creates an empty menu category.
func NewCategory(id kernel.UUID, name string) (*Category, error) {
	c := &Category{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a category with its menu items from storage.
func RestoreCategory(id kernel.UUID, name string, items []*MenuItem) (*Category, error) {
	c, err := NewCategory(id, name)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	c.items = make([]*MenuItem, len(items))
	copy(c.items, items)

	return c, nil
}

// Validate checks if the Category was properly constructed.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// IsEqual compares two categories by their unique identifiers.
func (c *Category) IsEqual(other *Category) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the category identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Items returns the category's menu items.
// The returned slice is a copy to prevent external modification.
func (c *Category) Items() []*MenuItem {
	out := make([]*MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Category) addItem(item *MenuItem) {
	c.items = append(c.items, item)
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("category name")
	}
	c.name = name
	return nil
}
