// Package rider contains the Rider aggregate.
//
// The availability flag is a projection of "currently the assignee of a
// non-terminal order". It changes only through MarkBusy and MarkFree, which
// the application layer invokes on exactly two events: rider assignment and
// an assigned order entering a terminal state. No other code path writes it.
package rider

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrNameIsRequired is returned when attempting to create a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	// ErrRiderIsNotAvailable is returned when marking busy a rider who already carries an order.
	ErrRiderIsNotAvailable = errors.New("rider is not available")
)

// minPhoneLength is the minimum accepted contact phone length.
const minPhoneLength = 10

// VehicleKind enumerates how a rider moves deliveries around.
type VehicleKind int

const (
	// VehicleUnknown represents an invalid or undefined vehicle kind.
	VehicleUnknown VehicleKind = iota

	// Bicycle is a pedal bicycle.
	Bicycle

	// Motorbike is a motorized two-wheeler.
	Motorbike

	// Car is a car or van.
	Car
)

func getVehicleKindStrings() map[VehicleKind]string {
	return map[VehicleKind]string{
		VehicleUnknown: "Unknown",
		Bicycle:        "Bicycle",
		Motorbike:      "Motorbike",
		Car:            "Car",
	}
}

// VehicleKindFromString parses a vehicle kind name.
func VehicleKindFromString(s string) (VehicleKind, error) {
	for kind, name := range getVehicleKindStrings() {
		if kind != VehicleUnknown && name == s {
			return kind, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle kind",
		fmt.Errorf("%q is not a valid vehicle kind", s),
	)
}

// Validate checks if the VehicleKind is one of the defined kinds.
func (v VehicleKind) Validate() error {
	if v != Bicycle && v != Motorbike && v != Car {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle kind",
			fmt.Errorf("%d is not a valid vehicle kind", v),
		)
	}
	return nil
}

// String returns the human-readable name of the vehicle kind.
func (v VehicleKind) String() string {
	if str, ok := getVehicleKindStrings()[v]; ok {
		return str
	}
	return "Unknown"
}

// Rider represents a delivery rider. It is an aggregate root managing rider
// identity and the availability flag driven by order assignment events.
//
// Business rules:
//   - Rider must have a valid UUID, non-empty name, valid phone, and a valid
//     vehicle kind
//   - A new rider starts available
//   - MarkBusy succeeds only while available; MarkFree returns the rider to
//     the pool when the carried order reaches a terminal state
type Rider struct {
	// id uniquely identifies the rider
	id kernel.UUID
	// name is the human-readable name of the rider
	name string
	// phone is the rider's contact number
	phone string
	// vehicle is how the rider carries deliveries
	vehicle VehicleKind
	// isAvailable reflects "not currently assigned to an active order"
	isAvailable bool
	// version is the optimistic-concurrency counter loaded from storage
	version int64
	// guard ensures the rider was properly constructed
	guard guard.ConstructorGuard
}

// NewRider creates an available rider with the specified parameters.
func NewRider(id kernel.UUID, name, phone string, vehicle VehicleKind) (*Rider, error) {
	r := &Rider{
		isAvailable: true,
		version:     1,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setPhone(phone),
		r.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a rider aggregate from persistent storage,
// preserving the persisted availability flag and version.
func RestoreRider(
	id kernel.UUID,
	name, phone string,
	vehicle VehicleKind,
	isAvailable bool,
	version int64,
) (*Rider, error) {
	r := &Rider{
		isAvailable: isAvailable,
		version:     version,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setPhone(phone),
		r.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the Rider was properly constructed.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's contact number.
func (r *Rider) Phone() string {
	return r.phone
}

// Vehicle returns the rider's vehicle kind.
func (r *Rider) Vehicle() VehicleKind {
	return r.vehicle
}

// IsAvailable reports whether the rider can take a new assignment.
func (r *Rider) IsAvailable() bool {
	return r.isAvailable
}

// Version returns the optimistic-concurrency counter.
func (r *Rider) Version() int64 {
	return r.version
}

// MarkBusy flags the rider as carrying an active order.
//
// Fails with ErrRiderIsNotAvailable if the rider is already busy: a rider
// carries at most one active assignment, so assigning a busy rider is a
// constraint violation, never a silent overwrite.
func (r *Rider) MarkBusy() error {
	if !r.isAvailable {
		return errs.NewValueIsInvalidErrorWithCause("rider availability", ErrRiderIsNotAvailable)
	}

	r.isAvailable = false
	return nil
}

// MarkFree returns the rider to the available pool. Invoked when the
// rider's order enters a terminal state. Idempotent by construction: the
// flag reflects the current assignment's transition event only.
func (r *Rider) MarkFree() {
	r.isAvailable = true
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rider) setPhone(phone string) error {
	if len(phone) < minPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("%q is shorter than %d characters", phone, minPhoneLength),
		)
	}
	r.phone = phone
	return nil
}

func (r *Rider) setVehicle(vehicle VehicleKind) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	r.vehicle = vehicle
	return nil
}
