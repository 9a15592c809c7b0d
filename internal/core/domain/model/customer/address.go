package customer

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using an improperly initialized Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a delivery address owned by a customer. It is an entity inside
// the Customer aggregate; orders reference it by ID.
type Address struct {
	id         kernel.UUID
	street     string
	city       string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewAddress creates a delivery address.
func NewAddress(id kernel.UUID, street, city, postalCode, country string) (*Address, error) {
	a := &Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setStreet(street),
		a.setCity(city),
		a.setPostalCode(postalCode),
		a.setCountry(country),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs an address from persistent storage.
func RestoreAddress(id kernel.UUID, street, city, postalCode, country string) (*Address, error) {
	return NewAddress(id, street, city, postalCode, country)
}

// Validate checks if the Address was properly constructed.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// IsEqual compares two addresses by their unique identifiers.
func (a *Address) IsEqual(other *Address) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the address identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// Street returns the street line.
func (a *Address) Street() string {
	return a.street
}

// City returns the city.
func (a *Address) City() string {
	return a.city
}

// PostalCode returns the postal code.
func (a *Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country.
func (a *Address) Country() string {
	return a.country
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}
