package commands

import (
	"context"
	"time"

	"deliverytime/internal/core/ports"
)

// SetOrderDeliveryTimeCommandHandler applies a manual delivery timestamp to an order.
// The date and time are combined in the service time zone.
type SetOrderDeliveryTimeCommandHandler struct {
	uowFactory OrderUoWFactory
	location   *time.Location
}

// NewSetOrderDeliveryTimeCommandHandler creates the handler. A nil location means time.Local.
func NewSetOrderDeliveryTimeCommandHandler(
	uowFactory OrderUoWFactory,
	location *time.Location,
) SetOrderDeliveryTimeCommandHandler {
	if location == nil {
		location = time.Local
	}

	return SetOrderDeliveryTimeCommandHandler{
		uowFactory: uowFactory,
		location:   location,
	}
}

// Handle stores the timestamp and returns it. Returns errs.ErrObjectNotFound for an
// unknown order. Accepted whatever the order's current status.
func (h SetOrderDeliveryTimeCommandHandler) Handle(
	ctx context.Context,
	cmd SetOrderDeliveryTimeCommand,
) (time.Time, error) {
	if err := cmd.Validate(); err != nil {
		return time.Time{}, err
	}

	deliveryTimestamp := cmd.DeliveryDate().At(cmd.DeliveryTime(), h.location)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return time.Time{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var orders ports.OrderDeliveryTimeWriter = uow.OrderRepository()

	aggregate, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return time.Time{}, err
	}

	if err = aggregate.OverrideDeliveryTime(deliveryTimestamp); err != nil {
		return time.Time{}, err
	}

	if err = orders.Update(ctx, aggregate); err != nil {
		return time.Time{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return time.Time{}, err
	}

	return deliveryTimestamp, nil
}
