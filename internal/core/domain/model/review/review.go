// Package review contains the Review aggregate. A review scores a delivered
// order; the rating feeds the restaurant's average rating query.
package review

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrReviewIsNotConstructed is returned when using an improperly initialized Review.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of an order.
type Review struct {
	// id uniquely identifies the review
	id kernel.UUID
	// orderID references the reviewed order
	orderID kernel.UUID
	// customerID references the reviewing customer
	customerID kernel.UUID
	// restaurantID references the reviewed restaurant, denormalized for
	// rating queries that never load the order
	restaurantID kernel.UUID
	// rating is the score, MinRating..MaxRating inclusive
	rating int
	// comment is optional free text
	comment string
	// createdAt is the review timestamp
	createdAt time.Time
	// guard ensures the review was properly constructed
	guard guard.ConstructorGuard
}

// NewReview creates a review for an order.
func NewReview(
	id, orderID, customerID, restaurantID kernel.UUID,
	rating int,
	comment string,
) (*Review, error) {
	r := &Review{
		comment:   comment,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setCustomerID(customerID),
		r.setRestaurantID(restaurantID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a review from persistent storage.
func RestoreReview(
	id, orderID, customerID, restaurantID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	r, err := NewReview(id, orderID, customerID, restaurantID, rating, comment)
	if err != nil {
		return nil, err
	}
	r.createdAt = createdAt
	return r, nil
}

// Validate checks if the Review was properly constructed.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// IsEqual compares two reviews by their unique identifiers.
func (r *Review) IsEqual(other *Review) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the review identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// OrderID returns the reviewed order's identifier.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// CustomerID returns the reviewing customer's identifier.
func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

// RestaurantID returns the reviewed restaurant's identifier.
func (r *Review) RestaurantID() kernel.UUID {
	return r.restaurantID
}

// Rating returns the score.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free text.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns the review timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	r.orderID = orderID
	return nil
}

func (r *Review) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	r.customerID = customerID
	return nil
}

func (r *Review) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	r.restaurantID = restaurantID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}
