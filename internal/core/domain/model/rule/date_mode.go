package rule

import (
	"fmt"

	"deliverytime/internal/pkg/errs"
)

// DateMode selects the calendar date of a resolved delivery.
//
//	Today    -> date of the evaluation instant
//	Tomorrow -> date of the evaluation instant plus one day
//	Custom   -> the rule's customDeliveryDate
type DateMode int

const (
	// UnknownDateMode is the zero value and never valid.
	UnknownDateMode DateMode = iota
	Today
	Tomorrow
	Custom
)

// getDateModeLiterals maps valid modes to their wire literals.
func getDateModeLiterals() map[DateMode]string {
	//nolint:exhaustive // UnknownDateMode has no literal
	return map[DateMode]string{
		Today:    "today",
		Tomorrow: "tomorrow",
		Custom:   "custom",
	}
}

// AllowedDateModes lists the accepted literals in display order.
func AllowedDateModes() []string {
	return []string{Today.String(), Tomorrow.String(), Custom.String()}
}

// ParseDateMode converts a wire literal into a DateMode. Matching is exact and case-sensitive.
func ParseDateMode(text string) (DateMode, error) {
	for mode, literal := range getDateModeLiterals() {
		if literal == text {
			return mode, nil
		}
	}
	return UnknownDateMode, errs.NewValueIsNotAllowedError("deliveryDateMode", text, AllowedDateModes())
}

// Validate rejects UnknownDateMode and values outside the enumeration.
func (m DateMode) Validate() error {
	if _, ok := getDateModeLiterals()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDateMode", fmt.Errorf("%d is not a valid date mode", m))
	}
	return nil
}

// String returns the wire literal, or "unknown".
func (m DateMode) String() string {
	if literal, ok := getDateModeLiterals()[m]; ok {
		return literal
	}
	return "unknown"
}
