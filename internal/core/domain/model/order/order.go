package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrRiderAlreadyAssigned is returned when assigning a rider to an order
	// that already has one. The rider reference transitions from absent to
	// present exactly once per delivery attempt.
	ErrRiderAlreadyAssigned = errors.New("order already has a rider assigned")
)

// Order is the aggregate root for a customer's order. It references one
// customer, one restaurant, one delivery address, and optionally one rider.
//
// The aggregate maintains these invariants through its methods:
//   - totalAmount always equals the sum of quantity × unit price over its
//     current items; every item mutation applies the matching delta in the
//     same call, never a rescan
//   - status changes go through the lifecycle rules in Status.TransitionTo;
//     terminal states are final
//   - a rider is assigned at most once, and only while the order is not in
//     a terminal state
//   - items may be added, changed, or removed only while the order is not
//     in a terminal state
//
// version carries the persisted optimistic-lock counter; the repository uses
// it to detect concurrent writers to the same order.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// restaurantID references the restaurant preparing the order
	restaurantID kernel.UUID

	// addressID references the customer's delivery address
	addressID kernel.UUID

	// riderID is the assigned rider's ID (nil if unassigned)
	riderID *kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// totalAmount is the derived, cached sum over line items
	totalAmount kernel.Money

	// items are the order's line items
	items []*Item

	// placedAt is the order timestamp
	placedAt time.Time

	// version is the optimistic-concurrency counter loaded from storage
	version int64

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates an order in Pending status with a zero total and no
// items. All referenced identifiers must be valid; referential existence is
// checked by the application layer against the store within the same
// transaction.
func NewOrder(id, customerID, restaurantID, addressID kernel.UUID) (*Order, error) {
	o := &Order{
		status:      Pending,
		totalAmount: kernel.ZeroMoney(),
		placedAt:    time.Now().UTC(),
		version:     1,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setAddressID(addressID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage,
// including items, cached total, rider assignment, and version.
//
// The cached total is verified against the item sum during restoration: a
// mismatch means the persisted derived state is corrupt and the aggregate
// must not be used.
func RestoreOrder(
	id, customerID, restaurantID, addressID kernel.UUID,
	riderID *kernel.UUID,
	status Status,
	items []*Item,
	totalAmount kernel.Money,
	placedAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		totalAmount: totalAmount,
		placedAt:    placedAt,
		version:     version,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setAddressID(addressID),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
		rID := *riderID
		o.riderID = &rID
	}

	if err := o.checkTotalInvariant(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was properly constructed and that its cached
// total still equals the sum over its items. Repositories call this before
// every write so a broken derived total can never be persisted.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		return err
	}
	return o.checkTotalInvariant()
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the preparing restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// AddressID returns the delivery address identifier.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// RiderID returns the assigned rider's ID, or nil if no rider is assigned.
func (o *Order) RiderID() *kernel.UUID {
	return o.riderID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the cached order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// PlacedAt returns the order timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Version returns the optimistic-concurrency counter.
func (o *Order) Version() int64 {
	return o.version
}

// Items returns the order's line items.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// ItemByID returns the line item with the given ID, or an ObjectNotFoundError.
func (o *Order) ItemByID(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order item", itemID.String())
}

// AddItem appends a line item and increments the cached total by
// quantity × unitPrice in the same operation.
//
// unitPrice is the captured menu price snapshot; the caller resolves it from
// the menu item within the same transaction. Fails if quantity or price is
// not positive, or if the order is already in a terminal state.
func (o *Order) AddItem(
	itemID, menuItemID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (*Item, error) {
	if err := o.ensureMutable(); err != nil {
		return nil, err
	}

	item, err := NewItem(itemID, menuItemID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	o.totalAmount = o.totalAmount.Add(item.LineTotal())
	return item, nil
}

// UpdateItemQuantity changes a line item's quantity and adjusts the cached
// total by the delta (new line total − old line total), without rescanning
// other items.
//
// Fails with ObjectNotFoundError if the item does not belong to the order
// and leaves the total untouched on any validation error.
func (o *Order) UpdateItemQuantity(itemID kernel.UUID, quantity int) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	item, err := o.ItemByID(itemID)
	if err != nil {
		return err
	}

	oldLine := item.LineTotal()
	if err = item.setQuantity(quantity); err != nil {
		return err
	}

	// Add before Sub keeps the intermediate amount non-negative.
	newTotal, err := o.totalAmount.Add(item.LineTotal()).Sub(oldLine)
	if err != nil {
		return err
	}
	o.totalAmount = newTotal
	return nil
}

// RemoveItem deletes a line item and decrements the cached total by its line
// total. Removing an item that is not present fails with
// ObjectNotFoundError and does not touch the total, so a double remove can
// never double-decrement.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.id.IsEqual(itemID) {
			newTotal, err := o.totalAmount.Sub(item.LineTotal())
			if err != nil {
				return err
			}

			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.totalAmount = newTotal
			return nil
		}
	}

	return errs.NewObjectNotFoundError("order item", itemID.String())
}

// AssignRider records the one-shot rider assignment.
//
// Fails with ErrRiderAlreadyAssigned if a rider is already set, and rejects
// assignment to orders in a terminal state. The order status itself is not
// changed here; status moves through ChangeStatus independently.
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	if o.riderID != nil {
		return errs.NewValueIsInvalidErrorWithCause("rider assignment", ErrRiderAlreadyAssigned)
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"rider assignment",
			fmt.Errorf("order is %s", o.status),
		)
	}

	o.riderID = &riderID
	return nil
}

// ChangeStatus moves the order to the next lifecycle state.
//
// Rejection with InvalidTransitionError leaves the current status unchanged;
// callers must not apply any derived-state updates after a rejection.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ensureMutable rejects item mutations on orders in a terminal state.
func (o *Order) ensureMutable() error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"order items",
			fmt.Errorf("order is %s and can no longer be modified", o.status),
		)
	}
	return nil
}

// checkTotalInvariant verifies totalAmount == Σ(quantity × unit price).
func (o *Order) checkTotalInvariant() error {
	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		sum = sum.Add(item.LineTotal())
	}

	if !o.totalAmount.IsEqual(sum) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total amount",
			fmt.Errorf("cached total %s does not match item sum %s", o.totalAmount, sum),
		)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	o.addressID = addressID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
