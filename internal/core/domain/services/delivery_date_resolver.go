package services

import (
	"fmt"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"
)

// DeliveryDateResolver turns a matched rule into a concrete delivery timestamp.
//
// The calendar date depends on the rule's date mode:
//
//	today    -> date of the evaluation instant
//	tomorrow -> date of the evaluation instant + 1 day
//	custom   -> the rule's fixed date, even if it lies in the past
//
// The time of day is the rule's delivery time, with zero seconds, interpreted in the
// evaluation instant's location. The order time plays no part in the date: an order
// at 23:50 evaluated just after midnight resolves "today" to the new day.
type DeliveryDateResolver struct{}

// NewDeliveryDateResolver creates a new DeliveryDateResolver instance.
func NewDeliveryDateResolver() DeliveryDateResolver {
	return DeliveryDateResolver{}
}

// Resolve computes the delivery timestamp for r evaluated at evaluationInstant.
func (d DeliveryDateResolver) Resolve(r *rule.Rule, evaluationInstant time.Time) (time.Time, error) {
	if err := r.Validate(); err != nil {
		return time.Time{}, err
	}

	var date kernel.Date
	switch r.DateMode() {
	case rule.Today:
		date = kernel.DateOf(evaluationInstant)
	case rule.Tomorrow:
		date = kernel.DateOf(evaluationInstant).AddDays(1)
	case rule.Custom:
		custom := r.CustomDeliveryDate()
		if custom == nil {
			return time.Time{}, rule.ErrCustomDeliveryDateIsRequired
		}
		date = *custom
	case rule.UnknownDateMode:
		fallthrough
	default:
		return time.Time{}, fmt.Errorf("rule %s: %w", r.Name(), r.DateMode().Validate())
	}

	return date.At(r.DeliveryTime(), evaluationInstant.Location()), nil
}
