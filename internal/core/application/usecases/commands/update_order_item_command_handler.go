package commands

import (
	"context"
)

// UpdateOrderItemCommandHandler handles the business logic for changing a
// line item's quantity. The order aggregate adjusts its cached total by the
// line delta.
type UpdateOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderItemCommandHandler creates a handler for line item updates.
func NewUpdateOrderItemCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change command.
func (h UpdateOrderItemCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemCommand) error {
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

	if err = loadedOrder.UpdateItemQuantity(cmd.OrderItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, loadedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
