package commands

import (
	"errors"

	"deliverytime/internal/pkg/guard"
)

var (
	ErrScheduleOrderDeliveriesCommandIsNotConstructed = errors.New(
		"ScheduleOrderDeliveriesCommand must be created via NewScheduleOrderDeliveriesCommand constructor",
	)
)

// ScheduleOrderDeliveriesCommand triggers rule estimation for every order still in
// Created status.
type ScheduleOrderDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewScheduleOrderDeliveriesCommand creates the parameterless batch command.
func NewScheduleOrderDeliveriesCommand() ScheduleOrderDeliveriesCommand {
	return ScheduleOrderDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ScheduleOrderDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrScheduleOrderDeliveriesCommandIsNotConstructed)
}
