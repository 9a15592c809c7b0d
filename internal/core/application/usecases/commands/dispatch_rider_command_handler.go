package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

var (
	ErrNoAvailableRidersFound = errors.New("no available riders found")
	ErrNoOrderFound           = errors.New("no order found")
)

// DispatchRiderCommandHandler orchestrates the automatic dispatch process.
// Finds the oldest unassigned order and matches it with an available rider
// using the domain dispatch rules. Updates both aggregates within a single
// transaction.
//
// Example:
//
//	handler := NewDispatchRiderCommandHandler(uowFactory)
//	cmd := NewDispatchRiderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No unassigned orders")
//	case errors.Is(err, ErrNoAvailableRidersFound):
//	    log.Println("All riders are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Println("Rider dispatched successfully")
//	}
type DispatchRiderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewDispatchRiderCommandHandler creates a handler for automatic dispatch.
func NewDispatchRiderCommandHandler(uowFactory DispatchUoWFactory) DispatchRiderCommandHandler {
	return DispatchRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command. Returns specific errors when there
// is nothing to dispatch (ErrNoOrderFound) or nobody to dispatch to
// (ErrNoAvailableRidersFound).
func (h DispatchRiderCommandHandler) Handle(ctx context.Context, cmd DispatchRiderCommand) error {
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

	riderRepo := uow.RiderRepository()
	orderRepo := uow.OrderRepository()

	unassignedOrder, err := orderRepo.GetFirstUnassigned(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	riders, err := riderRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(riders) == 0 {
		return ErrNoAvailableRidersFound
	}

	assignedRider, err := services.NewRiderDispatcher().Dispatch(unassignedOrder, riders)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, unassignedOrder); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, assignedRider); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
