package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("name is required")
	ErrEmailIsRequired        = errors.New("email is required")
	ErrPhoneIsRequired        = errors.New("phone is required")
	ErrPasswordHashIsRequired = errors.New("password hash is required")
)

// CreateCustomerCommand represents a request to register a new customer
// account. Shape validation happens in the domain constructor; the command
// only rejects obviously empty input.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	name         string
	email        string
	phone        string
	passwordHash string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// The credential arrives pre-hashed; this service never sees plaintext
// passwords past the transport edge.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	name, email, phone, passwordHash string,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setPasswordHash(passwordHash),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's email.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's contact number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// PasswordHash returns the customer's credential hash.
func (c CreateCustomerCommand) PasswordHash() string {
	return c.passwordHash
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *CreateCustomerCommand) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	c.passwordHash = passwordHash
	return nil
}
