package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in currency
// subunits (e.g. cents). Integer subunits keep derived-total arithmetic
// exact: incremental deltas on an order total compose without rounding
// drift.
//
// Money is immutable; arithmetic methods return new values. The zero value
// is a legitimate amount of zero and is valid (a freshly created order has a
// zero total), but negative amounts are not representable through the
// constructors.
type Money struct {
	subunits int64
}

// ZeroMoney returns a zero monetary amount.
func ZeroMoney() Money {
	return Money{subunits: 0}
}

// NewMoney creates a Money amount from currency subunits.
// Negative amounts are rejected.
func NewMoney(subunits int64) (Money, error) {
	if subunits < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d is negative", subunits),
		)
	}
	return Money{subunits: subunits}, nil
}

// NewPositiveMoney creates a Money amount that must be strictly positive.
// Used for prices, which may never be zero.
func NewPositiveMoney(subunits int64) (Money, error) {
	if subunits <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d is not greater than 0", subunits),
		)
	}
	return Money{subunits: subunits}, nil
}

// Subunits returns the raw amount in currency subunits.
func (m Money) Subunits() int64 {
	return m.subunits
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.subunits == 0
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.subunits > 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{subunits: m.subunits + other.subunits}
}

// Sub returns the difference of two amounts.
// Returns an error if the result would be negative: a derived total that
// goes below zero signals a maintenance bug, not a legal state.
func (m Money) Sub(other Money) (Money, error) {
	if other.subunits > m.subunits {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("subtracting %d from %d yields a negative amount", other.subunits, m.subunits),
		)
	}
	return Money{subunits: m.subunits - other.subunits}, nil
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{subunits: m.subunits * int64(quantity)}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.subunits == other.subunits
}

// String renders the amount as a decimal with two fractional digits.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.subunits/100, m.subunits%100)
}
