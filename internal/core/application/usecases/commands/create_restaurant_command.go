package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired  = errors.New("restaurant name is required")
	ErrRestaurantEmailIsRequired = errors.New("restaurant email is required")
	ErrRestaurantPhoneIsRequired = errors.New("restaurant phone is required")
	ErrAddressLineIsRequired     = errors.New("address line is required")
)

// CreateRestaurantCommand represents a request to register a restaurant.
// The restaurant starts active with an empty default menu category.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	email        string
	phone        string
	addressLine  string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	name, email, phone, addressLine string,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setAddressLine(addressLine),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier for the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Email returns the restaurant's contact email.
func (c CreateRestaurantCommand) Email() string {
	return c.email
}

// Phone returns the restaurant's contact number.
func (c CreateRestaurantCommand) Phone() string {
	return c.phone
}

// AddressLine returns the restaurant's street address.
func (c CreateRestaurantCommand) AddressLine() string {
	return c.addressLine
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setEmail(email string) error {
	if email == "" {
		return ErrRestaurantEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *CreateRestaurantCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrRestaurantPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *CreateRestaurantCommand) setAddressLine(addressLine string) error {
	if addressLine == "" {
		return ErrAddressLineIsRequired
	}
	c.addressLine = addressLine
	return nil
}
