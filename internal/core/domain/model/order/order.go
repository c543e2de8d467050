package order

import (
	"errors"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a placed order waiting for, or carrying, a delivery
// timestamp.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a placement instant
//   - Created orders have no delivery time; Scheduled orders have one
//   - A rule reference is present only when the delivery time came from a rule
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id kernel.UUID

	// placedAt is when the customer placed the order; its clock time drives rule matching.
	placedAt time.Time

	status Status

	// deliveryTime is nil until the order is scheduled.
	deliveryTime *time.Time

	// ruleID is the rule that produced deliveryTime, nil for manual overrides.
	ruleID *kernel.UUID

	overridden bool

	isConstructed bool
}

// NewOrder creates a new Order in Created status.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - placedAt: Placement instant (must not be zero)
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, placedAt time.Time) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from persisted state and re-checks its invariants.
func RestoreOrder(
	id kernel.UUID,
	placedAt time.Time,
	status Status,
	deliveryTime *time.Time,
	ruleID *kernel.UUID,
	overridden bool,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setPlacedAt(placedAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveDeliveryTime(deliveryTime != nil); err != nil {
		return nil, err
	}

	if ruleID != nil {
		if err := ruleID.Validate(); err != nil {
			return nil, err
		}
		if overridden {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"ruleID", errors.New("an overridden delivery time has no rule"))
		}
	}

	o.status = status
	o.deliveryTime = deliveryTime
	o.ruleID = ruleID
	o.overridden = overridden
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PlacedAt returns the placement instant.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryTime returns the delivery timestamp, nil while the order is Created.
func (o *Order) DeliveryTime() *time.Time {
	if o.deliveryTime == nil {
		return nil
	}
	ts := *o.deliveryTime
	return &ts
}

// Rule returns the id of the rule that produced the delivery time, nil otherwise.
func (o *Order) Rule() *kernel.UUID {
	return o.ruleID
}

// IsOverridden reports whether the delivery time was set manually.
func (o *Order) IsOverridden() bool {
	return o.overridden
}

// ScheduleByRule stamps the delivery time estimated from a rule.
//
// Only Created orders can be scheduled this way; a timestamp already set,
// by a rule or by an override, is kept.
func (o *Order) ScheduleByRule(ruleID kernel.UUID, deliveryTime time.Time) error {
	if err := ruleID.Validate(); err != nil {
		return err
	}
	if deliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("deliveryTime")
	}

	newStatus, err := o.status.Schedule()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryTime = &deliveryTime
	o.ruleID = &ruleID
	o.overridden = false
	return nil
}

// OverrideDeliveryTime replaces the delivery timestamp with an operator-chosen one.
// It is accepted in any status and drops the rule reference.
func (o *Order) OverrideDeliveryTime(deliveryTime time.Time) error {
	if deliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("deliveryTime")
	}

	o.status = Scheduled
	o.deliveryTime = &deliveryTime
	o.ruleID = nil
	o.overridden = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}
