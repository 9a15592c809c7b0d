package commands

import (
	"context"
)

// AssignRiderCommandHandler handles the business logic for manual rider
// assignment. The order's rider reference and the rider's availability flag
// flip in the same transaction.
type AssignRiderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for manual assignment.
func NewAssignRiderCommandHandler(uowFactory DispatchUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. The order is checked first, so a
// rejected assignment never marks the rider busy.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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
	riderRepo := uow.RiderRepository()

	loadedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedRider, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = loadedOrder.AssignRider(loadedRider.ID()); err != nil {
		return err
	}

	if err = loadedRider.MarkBusy(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, loadedOrder); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, loadedRider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
