package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The lifecycle enforces a terminal lock, not a strict linear progression:
//
//	Pending ──> Preparing ──> OutForDelivery ──> Delivered (terminal)
//	    \__________\________________\──────────> Cancelled (terminal)
//
// Any transition between non-terminal states is permitted, including
// non-adjacent jumps (e.g. Pending directly to Delivered). The only hard
// rule is that Delivered and Cancelled are final: once reached, every
// transition to a different state is rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	Pending

	// Preparing indicates the restaurant accepted the order and is cooking.
	Preparing

	// OutForDelivery indicates a rider is carrying the order to the customer.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was aborted. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// StatusFromString parses a status name as received from transport or
// persistence. Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates a status change and returns the new status.
//
// The rules are deliberately permissive everywhere except the terminal lock:
//   - from Delivered or Cancelled, any transition to a different state fails
//     with an InvalidTransitionError;
//   - every other transition between valid states is allowed, including
//     skips like Pending -> Delivered.
//
// On rejection the receiver is returned unchanged so callers can keep the
// prior status without special-casing.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return s, err
	}

	if s.IsTerminal() && next != s {
		return s, errs.NewInvalidTransitionError(s.String(), next.String())
	}

	return next, nil
}
