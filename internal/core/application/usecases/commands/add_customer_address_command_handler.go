package commands

import (
	"context"
)

// AddCustomerAddressCommandHandler handles the business logic for adding a
// delivery address to a customer's address book.
type AddCustomerAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewAddCustomerAddressCommandHandler creates a handler for address
// registration.
func NewAddCustomerAddressCommandHandler(uowFactory CustomerUoWFactory) AddCustomerAddressCommandHandler {
	return AddCustomerAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address registration command. Loads the customer,
// appends the address, and persists the whole aggregate.
func (h AddCustomerAddressCommandHandler) Handle(ctx context.Context, cmd AddCustomerAddressCommand) error {
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

	customerRepo := uow.CustomerRepository()

	loaded, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if _, err = loaded.AddAddress(
		cmd.AddressID(), cmd.Street(), cmd.City(), cmd.PostalCode(), cmd.Country()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, loaded); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
