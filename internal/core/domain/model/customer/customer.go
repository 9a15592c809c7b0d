// Package customer contains the Customer aggregate and its delivery addresses.
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

const minPhoneLength = 10

// Customer is the aggregate root for a customer account and the delivery
// addresses it owns. An order may only reference an address that belongs to
// the ordering customer, so address ownership is resolved through this
// aggregate rather than a standalone address lookup.
//
// Email uniqueness is enforced by a unique index in storage; the aggregate
// only validates the shape of the value.
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the customer's display name
	name string
	// email is the customer's contact email, unique across customers
	email string
	// phone is the customer's contact number
	phone string
	// passwordHash is the customer's credential hash; authentication itself
	// lives outside this service
	passwordHash string
	// createdAt is when the account was registered
	createdAt time.Time
	// addresses are the delivery addresses owned by this customer
	addresses []*Address
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a customer with no addresses, registered now.
func NewCustomer(id kernel.UUID, name, email, phone, passwordHash string) (*Customer, error) {
	c := &Customer{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer aggregate from persistent storage.
func RestoreCustomer(
	id kernel.UUID,
	name, email, phone, passwordHash string,
	createdAt time.Time,
	addresses []*Address,
) (*Customer, error) {
	c, err := NewCustomer(id, name, email, phone, passwordHash)
	if err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("creation time")
	}
	c.createdAt = createdAt

	for _, addr := range addresses {
		if err := addr.Validate(); err != nil {
			return nil, err
		}
	}
	c.addresses = make([]*Address, len(addresses))
	copy(c.addresses, addresses)

	return c, nil
}

// Validate checks if the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's contact number.
func (c *Customer) Phone() string {
	return c.phone
}

// PasswordHash returns the customer's credential hash.
func (c *Customer) PasswordHash() string {
	return c.passwordHash
}

// CreatedAt returns when the account was registered.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// Addresses returns the customer's delivery addresses.
// The returned slice is a copy to prevent external modification.
func (c *Customer) Addresses() []*Address {
	out := make([]*Address, len(c.addresses))
	copy(out, c.addresses)
	return out
}

// AddressByID returns the owned address with the given ID, or an
// ObjectNotFoundError. An address belonging to another customer is
// indistinguishable from a missing one: both are "not found" here.
func (c *Customer) AddressByID(addressID kernel.UUID) (*Address, error) {
	for _, addr := range c.addresses {
		if addr.id.IsEqual(addressID) {
			return addr, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("address", addressID.String())
}

// AddAddress registers a new delivery address for the customer.
func (c *Customer) AddAddress(id kernel.UUID, street, city, postalCode, country string) (*Address, error) {
	addr, err := NewAddress(id, street, city, postalCode, country)
	if err != nil {
		return nil, err
	}

	c.addresses = append(c.addresses, addr)
	return addr, nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
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
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if len(phone) < minPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("%q is shorter than %d characters", phone, minPhoneLength),
		)
	}
	c.phone = phone
	return nil
}

func (c *Customer) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	c.passwordHash = passwordHash
	return nil
}
