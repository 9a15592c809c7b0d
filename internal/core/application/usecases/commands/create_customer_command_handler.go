package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer
// registration.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command. The unique email
// constraint is enforced by the repository on Add.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newCustomer, err := customer.NewCustomer(
		cmd.CustomerID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.PasswordHash())
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, newCustomer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
