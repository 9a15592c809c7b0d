// Package restaurant contains the Restaurant aggregate: the restaurant
// itself, its menu categories, and the menu items orders snapshot prices
// from.
//
// Every restaurant is created with a default category so AddMenuItem always
// has a landing place; callers that want structured menus add their own
// categories first.
package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	// ErrRestaurantIsNotActive is returned when placing an order against a deactivated restaurant.
	ErrRestaurantIsNotActive = errors.New("restaurant is not active")
)

const minPhoneLength = 10

// Restaurant is the aggregate root for a restaurant and its menu.
type Restaurant struct {
	// id uniquely identifies the restaurant
	id kernel.UUID
	// name is the restaurant's display name
	name string
	// email is the restaurant's contact email, unique across restaurants
	email string
	// phone is the restaurant's contact number
	phone string
	// addressLine is the restaurant's street address
	addressLine string
	// isActive gates order placement; deactivated restaurants keep their data
	isActive bool
	// categories hold the menu items grouped for display
	categories []*Category
	// guard ensures the restaurant was properly constructed
	guard guard.ConstructorGuard
}

// NewRestaurant creates an active restaurant with a single default category.
// Email uniqueness is enforced by a unique index in storage; the aggregate
// only validates the shape of the value.
func NewRestaurant(id kernel.UUID, name, email, phone, addressLine string) (*Restaurant, error) {
	r := &Restaurant{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
		r.setPhone(phone),
		r.setAddressLine(addressLine),
	); err != nil {
		return nil, err
	}

	defaultCategory, err := NewCategory(kernel.NewUUID(), DefaultCategoryName)
	if err != nil {
		return nil, err
	}
	r.categories = append(r.categories, defaultCategory)

	return r, nil
}

// RestoreRestaurant reconstructs a restaurant aggregate from persistent
// storage, including its categories and menu items.
func RestoreRestaurant(
	id kernel.UUID,
	name, email, phone, addressLine string,
	isActive bool,
	categories []*Category,
) (*Restaurant, error) {
	r := &Restaurant{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
		r.setPhone(phone),
		r.setAddressLine(addressLine),
	); err != nil {
		return nil, err
	}

	for _, category := range categories {
		if err := category.Validate(); err != nil {
			return nil, err
		}
	}
	r.categories = make([]*Category, len(categories))
	copy(r.categories, categories)

	return r, nil
}

// Validate checks if the Restaurant was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's name.
func (r *Restaurant) Name() string {
	return r.name
}

// Email returns the restaurant's contact email.
func (r *Restaurant) Email() string {
	return r.email
}

// Phone returns the restaurant's contact number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// AddressLine returns the restaurant's street address.
func (r *Restaurant) AddressLine() string {
	return r.addressLine
}

// IsActive reports whether the restaurant accepts new orders.
func (r *Restaurant) IsActive() bool {
	return r.isActive
}

// Categories returns the restaurant's menu categories.
// The returned slice is a copy to prevent external modification.
func (r *Restaurant) Categories() []*Category {
	out := make([]*Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Deactivate stops the restaurant from accepting new orders. Existing
// orders continue through their lifecycle untouched.
func (r *Restaurant) Deactivate() {
	r.isActive = false
}

// Activate re-opens the restaurant for new orders.
func (r *Restaurant) Activate() {
	r.isActive = true
}

// EnsureAcceptsOrders fails unless the restaurant is active.
func (r *Restaurant) EnsureAcceptsOrders() error {
	if !r.isActive {
		return errs.NewValueIsInvalidErrorWithCause("restaurant", ErrRestaurantIsNotActive)
	}
	return nil
}

// AddCategory adds a named menu category.
func (r *Restaurant) AddCategory(id kernel.UUID, name string) (*Category, error) {
	for _, category := range r.categories {
		if category.name == name {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"category name",
				fmt.Errorf("category %q already exists", name),
			)
		}
	}

	category, err := NewCategory(id, name)
	if err != nil {
		return nil, err
	}

	r.categories = append(r.categories, category)
	return category, nil
}

// CategoryByID returns the category with the given ID, or an ObjectNotFoundError.
func (r *Restaurant) CategoryByID(categoryID kernel.UUID) (*Category, error) {
	for _, category := range r.categories {
		if category.id.IsEqual(categoryID) {
			return category, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("category", categoryID.String())
}

// MenuItemByID returns the menu item with the given ID from any category,
// or an ObjectNotFoundError.
func (r *Restaurant) MenuItemByID(menuItemID kernel.UUID) (*MenuItem, error) {
	for _, category := range r.categories {
		for _, item := range category.items {
			if item.id.IsEqual(menuItemID) {
				return item, nil
			}
		}
	}
	return nil, errs.NewObjectNotFoundError("menu item", menuItemID.String())
}

// AddMenuItem creates a menu item inside the given category. A zero-value
// categoryID places the item in the default category.
func (r *Restaurant) AddMenuItem(
	itemID kernel.UUID,
	categoryID kernel.UUID,
	name string,
	price kernel.Money,
) (*MenuItem, error) {
	category, err := r.resolveCategory(categoryID)
	if err != nil {
		return nil, err
	}

	item, err := NewMenuItem(itemID, name, price)
	if err != nil {
		return nil, err
	}

	category.addItem(item)
	return item, nil
}

func (r *Restaurant) resolveCategory(categoryID kernel.UUID) (*Category, error) {
	if categoryID.Validate() != nil {
		// No explicit category requested: use the default one.
		for _, category := range r.categories {
			if category.name == DefaultCategoryName {
				return category, nil
			}
		}
		return nil, errs.NewObjectNotFoundError("category", DefaultCategoryName)
	}
	return r.CategoryByID(categoryID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not a valid email address", email),
		)
	}
	r.email = email
	return nil
}

func (r *Restaurant) setPhone(phone string) error {
	if len(phone) < minPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("%q is shorter than %d characters", phone, minPhoneLength),
		)
	}
	r.phone = phone
	return nil
}

func (r *Restaurant) setAddressLine(addressLine string) error {
	if addressLine == "" {
		return errs.NewValueIsRequiredError("address line")
	}
	r.addressLine = addressLine
	return nil
}
