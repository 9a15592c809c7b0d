package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler handles the business logic for order
// lifecycle transitions.
//
// Entering a terminal state (delivered or cancelled) releases the assigned
// rider back to the pool in the same transaction as the status write, so an
// observer can never see a finished order with a rider still marked busy.
// A rejected transition commits nothing.
type UpdateOrderStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(uowFactory DispatchUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	loadedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	wasTerminal := loadedOrder.Status().IsTerminal()

	if err = loadedOrder.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	// First entry into a terminal state frees the assigned rider.
	if !wasTerminal && loadedOrder.Status().IsTerminal() && loadedOrder.RiderID() != nil {
		riderRepo := uow.RiderRepository()

		assignedRider, err := riderRepo.Get(ctx, *loadedOrder.RiderID())
		if err != nil {
			return err
		}

		assignedRider.MarkFree()

		if err = riderRepo.Update(ctx, assignedRider); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, loadedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
