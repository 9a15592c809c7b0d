// Package payment contains the Payment aggregate. A payment records the
// settlement of exactly one order; the one-payment-per-order rule is backed
// by a unique index on the order reference in storage.
package payment

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when using an improperly initialized Payment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Method enumerates how a payment was made.
type Method int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown Method = iota

	// Card is a credit or debit card payment.
	Card

	// Cash is cash on delivery.
	Cash

	// Wallet is an in-app wallet payment.
	Wallet
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "Unknown",
		Card:          "Card",
		Cash:          "Cash",
		Wallet:        "Wallet",
	}
}

// MethodFromString parses a payment method name.
func MethodFromString(s string) (Method, error) {
	for method, name := range getMethodStrings() {
		if method != MethodUnknown && name == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the Method is one of the defined methods.
func (m Method) Validate() error {
	if m != Card && m != Cash && m != Wallet {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Status enumerates the settlement state of a payment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined payment status.
	StatusUnknown Status = iota

	// Completed means the payment settled successfully.
	Completed

	// Failed means the payment attempt did not settle.
	Failed

	// Refunded means a completed payment was returned to the customer.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Completed:     "Completed",
		Failed:        "Failed",
		Refunded:      "Refunded",
	}
}

// StatusFromString parses a payment status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the Status is one of the defined statuses.
func (s Status) Validate() error {
	if s != Completed && s != Failed && s != Refunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Payment records the settlement of one order.
type Payment struct {
	// id uniquely identifies the payment
	id kernel.UUID
	// orderID references the settled order, one payment per order
	orderID kernel.UUID
	// amount is the settled amount, equal to the order total at settlement
	amount kernel.Money
	// method is how the payment was made
	method Method
	// status is the settlement outcome
	status Status
	// paidAt is the settlement timestamp
	paidAt time.Time
	// guard ensures the payment was properly constructed
	guard guard.ConstructorGuard
}

// NewPayment records a payment for an order. The application layer is
// responsible for matching amount to the order's current total within the
// same transaction.
func NewPayment(
	id, orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
) (*Payment, error) {
	p := &Payment{
		paidAt: time.Now().UTC(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment from persistent storage.
func RestorePayment(
	id, orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	paidAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, amount, method, status)
	if err != nil {
		return nil, err
	}
	p.paidAt = paidAt
	return p, nil
}

// Validate checks if the Payment was properly constructed.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the settled order's identifier.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the settled amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns the payment method.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the settlement outcome.
func (p *Payment) Status() Status {
	return p.status
}

// PaidAt returns the settlement timestamp.
func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("payment amount")
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
