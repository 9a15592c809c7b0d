package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrDispatchRiderCommandIsNotConstructed = errors.New(
	"DispatchRiderCommand must be created via NewDispatchRiderCommand constructor",
)

// DispatchRiderCommand triggers automatic rider assignment. It finds the
// oldest order without a rider and matches it with an available rider.
//
// Example:
//
//	cmd := NewDispatchRiderCommand()
//	handler := NewDispatchRiderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to dispatch or no available riders: %v", err)
//	}
type DispatchRiderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchRiderCommand creates a new command to trigger rider dispatch.
func NewDispatchRiderCommand() DispatchRiderCommand {
	return DispatchRiderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchRiderCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchRiderCommandIsNotConstructed,
	)
}
