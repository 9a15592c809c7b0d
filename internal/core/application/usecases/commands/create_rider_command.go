package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateRiderCommandIsNotConstructed = errors.New(
		"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
	)
	ErrRiderNameIsRequired = errors.New("rider name is required")
)

// CreateRiderCommand represents a request to register a delivery rider.
// New riders join the pool available for dispatch.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	name    string
	phone   string
	vehicle rider.VehicleKind

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to register a rider.
func NewCreateRiderCommand(
	riderID kernel.UUID,
	name, phone string,
	vehicle rider.VehicleKind,
) (CreateRiderCommand, error) {
	cmd := CreateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setVehicle(vehicle),
	); err != nil {
		return CreateRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the identifier for the new rider.
func (c CreateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the rider's display name.
func (c CreateRiderCommand) Name() string {
	return c.name
}

// Phone returns the rider's contact number.
func (c CreateRiderCommand) Phone() string {
	return c.phone
}

// Vehicle returns the rider's vehicle kind.
func (c CreateRiderCommand) Vehicle() rider.VehicleKind {
	return c.vehicle
}

func (c *CreateRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	c.riderID = riderID
	return nil
}

func (c *CreateRiderCommand) setName(name string) error {
	if name == "" {
		return ErrRiderNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateRiderCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *CreateRiderCommand) setVehicle(vehicle rider.VehicleKind) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}
