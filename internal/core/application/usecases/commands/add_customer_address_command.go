package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddCustomerAddressCommandIsNotConstructed = errors.New(
		"AddCustomerAddressCommand must be created via NewAddCustomerAddressCommand constructor",
	)
	ErrStreetIsRequired     = errors.New("street is required")
	ErrCityIsRequired       = errors.New("city is required")
	ErrPostalCodeIsRequired = errors.New("postal code is required")
	ErrCountryIsRequired    = errors.New("country is required")
)

// AddCustomerAddressCommand represents a request to add a delivery address
// to an existing customer.
type AddCustomerAddressCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	addressID  kernel.UUID
	street     string
	city       string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewAddCustomerAddressCommand creates a command to add a delivery address.
func NewAddCustomerAddressCommand(
	customerID, addressID kernel.UUID,
	street, city, postalCode, country string,
) (AddCustomerAddressCommand, error) {
	cmd := AddCustomerAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setAddressID(addressID),
		cmd.setStreet(street),
		cmd.setCity(city),
		cmd.setPostalCode(postalCode),
		cmd.setCountry(country),
	); err != nil {
		return AddCustomerAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCustomerAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomerAddressCommandIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (c AddCustomerAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AddressID returns the identifier for the new address.
func (c AddCustomerAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

// Street returns the street line.
func (c AddCustomerAddressCommand) Street() string {
	return c.street
}

// City returns the city.
func (c AddCustomerAddressCommand) City() string {
	return c.city
}

// PostalCode returns the postal code.
func (c AddCustomerAddressCommand) PostalCode() string {
	return c.postalCode
}

// Country returns the country.
func (c AddCustomerAddressCommand) Country() string {
	return c.country
}

func (c *AddCustomerAddressCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *AddCustomerAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	c.addressID = addressID
	return nil
}

func (c *AddCustomerAddressCommand) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}
	c.street = street
	return nil
}

func (c *AddCustomerAddressCommand) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}
	c.city = city
	return nil
}

func (c *AddCustomerAddressCommand) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return ErrPostalCodeIsRequired
	}
	c.postalCode = postalCode
	return nil
}

func (c *AddCustomerAddressCommand) setCountry(country string) error {
	if country == "" {
		return ErrCountryIsRequired
	}
	c.country = country
	return nil
}
