package commands

import (
	"context"
)

// RemoveOrderItemCommandHandler handles the business logic for removing a
// line item from an order.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for line item removal.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. A repeated removal of the same line
// fails with a not-found error and leaves the total untouched.
func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	orderRepo := uow.OrderRepository()

	loadedOrder, err := orderRepo.GetByItemID(ctx, cmd.OrderItemID())
	if err != nil {
		return err
	}

	if err = loadedOrder.RemoveItem(cmd.OrderItemID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, loadedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
