package commands

import (
	"errors"
	"fmt"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/pkg/errs"
	"deliverytime/internal/pkg/guard"
)

var (
	ErrSetOrderDeliveryTimeCommandIsNotConstructed = errors.New(
		"SetOrderDeliveryTimeCommand must be created via NewSetOrderDeliveryTimeCommand constructor",
	)
)

// SetOrderDeliveryTimeCommand carries an operator's manual delivery date and time for
// one order. Rules are never consulted for it.
//
// Example:
//
//	cmd, err := NewSetOrderDeliveryTimeCommand(orderID, "2024-03-20", "14:00")
//	if err != nil {
//	    return err // missing or malformed date/time
//	}
//	ts, err := handler.Handle(ctx, cmd)
type SetOrderDeliveryTimeCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	deliveryDate kernel.Date
	deliveryTime kernel.TimeOfDay

	guard guard.ConstructorGuard
}

// NewSetOrderDeliveryTimeCommand parses the date (YYYY-MM-DD or an ISO date-time, of
// which only the date is used) and the HH:mm time.
func NewSetOrderDeliveryTimeCommand(
	orderID kernel.UUID,
	deliveryDate string,
	deliveryTime string,
) (SetOrderDeliveryTimeCommand, error) {
	command := SetOrderDeliveryTimeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDeliveryDate(deliveryDate),
		command.setDeliveryTime(deliveryTime),
	); err != nil {
		return SetOrderDeliveryTimeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderDeliveryTimeCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderDeliveryTimeCommandIsNotConstructed)
}

func (c SetOrderDeliveryTimeCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetOrderDeliveryTimeCommand) DeliveryDate() kernel.Date {
	return c.deliveryDate
}

func (c SetOrderDeliveryTimeCommand) DeliveryTime() kernel.TimeOfDay {
	return c.deliveryTime
}

func (c *SetOrderDeliveryTimeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderDeliveryTimeCommand) setDeliveryDate(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("deliveryDate")
	}

	date, err := kernel.ParseDate(text)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate", fmt.Errorf("%q: expected YYYY-MM-DD", text))
	}

	c.deliveryDate = date
	return nil
}

func (c *SetOrderDeliveryTimeCommand) setDeliveryTime(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("deliveryTime")
	}

	tod, err := kernel.ParseTimeOfDay(text)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryTime", fmt.Errorf("%q: %w", text, kernel.ErrTimeOfDayFormatIsInvalid))
	}

	c.deliveryTime = tod
	return nil
}
