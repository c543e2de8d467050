package order

import (
	"fmt"

	"deliverytime/internal/pkg/errs"
)

// Status represents the lifecycle state of an order with respect to its delivery time.
//
// State transitions:
//
//	Created ──(rule estimate)──> Scheduled
//	   │                            ▲  │
//	   └──────(manual override)─────┘──┘
//
// A manual override may be applied in any state and always lands in Scheduled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status: the order waits for a delivery timestamp.
	Created

	// Scheduled means the order carries a delivery timestamp, from a rule or an override.
	Scheduled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Scheduled: "Scheduled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Scheduled: "Scheduled",
	}
}

// Validate checks if the Status value is valid. Unknown and out-of-range values are rejected.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Schedule transitions Created to Scheduled. Orders already scheduled are never
// recomputed from rules.
func (s Status) Schedule() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to schedule", s.String()),
		)
	}
	return Scheduled, nil
}

// ValidateCanHaveDeliveryTime checks consistency between status and the delivery timestamp.
//
// Business Rules:
//   - Created orders must not have a delivery time
//   - Scheduled orders must have a delivery time
func (s Status) ValidateCanHaveDeliveryTime(hasDeliveryTime bool) error {
	if hasDeliveryTime && s != Scheduled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a delivery time", s.String()),
		)
	}

	if !hasDeliveryTime && s == Scheduled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no delivery time", s.String()),
		)
	}

	return nil
}
