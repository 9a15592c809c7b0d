package services

import (
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rider"
)

// ErrRiderNotFound is returned when no suitable rider is available for order
// dispatch. This occurs when either no riders are provided or none of the
// provided riders is currently available.
var ErrRiderNotFound = errors.New("rider not found")

// RiderDispatcher is a domain service responsible for finding an available
// rider for an order and executing the assignment workflow.
//
// Business rules:
//   - The order must be valid and accept an assignment (no rider yet, not in
//     a terminal state)
//   - Only available riders are considered
//   - Assignment updates both sides in one workflow: the order records the
//     rider and the rider is marked busy; the caller persists both within a
//     single transaction
type RiderDispatcher struct{}

// NewRiderDispatcher creates a new RiderDispatcher instance.
func NewRiderDispatcher() RiderDispatcher {
	return RiderDispatcher{}
}

// Dispatch selects an available rider for the given order and assigns it.
//
// Returns ErrRiderNotFound if no rider in the slice is available. On any
// error neither the order nor any rider is modified.
func (d RiderDispatcher) Dispatch(o *order.Order, riders []*rider.Rider) (*rider.Rider, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	selected, err := d.findAvailableRider(riders)
	if err != nil {
		return nil, err
	}

	// AssignRider performs the order-side checks (terminal state, second
	// assignment), so it runs before the rider is marked busy.
	if err = o.AssignRider(selected.ID()); err != nil {
		return nil, err
	}

	if err = selected.MarkBusy(); err != nil {
		return nil, err
	}

	return selected, nil
}

func (d RiderDispatcher) findAvailableRider(riders []*rider.Rider) (*rider.Rider, error) {
	for _, r := range riders {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		if r.IsAvailable() {
			return r, nil
		}
	}

	return nil, ErrRiderNotFound
}
