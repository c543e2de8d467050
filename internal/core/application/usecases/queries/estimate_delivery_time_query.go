// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"
	"deliverytime/internal/pkg/errs"
	"deliverytime/internal/pkg/guard"
)

var (
	ErrEstimateDeliveryTimeQueryIsNotConstructed = errors.New(
		"EstimateDeliveryTimeQuery must be created via NewEstimateDeliveryTimeQuery constructor",
	)
)

// EstimateDeliveryTimeQuery asks which rule applies to an order time and what delivery
// timestamp it yields when evaluated at a given instant.
//
// Example:
//
//	query, err := NewEstimateDeliveryTimeQuery("10:30", time.Now())
//	if err != nil {
//	    return err // malformed order time
//	}
//
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err // the rule store failed
//	}
//	if estimate.Outcome != Matched {
//	    fmt.Println(estimate.Message)
//	}
type EstimateDeliveryTimeQuery struct {
	orderTime         kernel.TimeOfDay
	evaluationInstant time.Time

	guard guard.ConstructorGuard
}

// NewEstimateDeliveryTimeQuery creates the query. An empty orderTime means the clock
// time of evaluationInstant.
func NewEstimateDeliveryTimeQuery(orderTime string, evaluationInstant time.Time) (EstimateDeliveryTimeQuery, error) {
	if evaluationInstant.IsZero() {
		return EstimateDeliveryTimeQuery{}, errs.NewValueIsRequiredError("evaluationInstant")
	}

	query := EstimateDeliveryTimeQuery{
		evaluationInstant: evaluationInstant,
		orderTime:         kernel.TimeOfDayOf(evaluationInstant),
		guard:             guard.NewConstructorGuard(),
	}

	if orderTime != "" {
		tod, err := kernel.ParseTimeOfDay(orderTime)
		if err != nil {
			return EstimateDeliveryTimeQuery{}, errs.NewValueIsInvalidErrorWithCause(
				"orderTime", fmt.Errorf("%q: %w", orderTime, kernel.ErrTimeOfDayFormatIsInvalid),
			)
		}
		query.orderTime = tod
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q EstimateDeliveryTimeQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryTimeQueryIsNotConstructed)
}

func (q EstimateDeliveryTimeQuery) OrderTime() kernel.TimeOfDay {
	return q.orderTime
}

func (q EstimateDeliveryTimeQuery) EvaluationInstant() time.Time {
	return q.evaluationInstant
}

// Outcome classifies an estimate. "No rule" results are ordinary outcomes, not errors.
type Outcome int

const (
	Matched Outcome = iota + 1
	NoRulesConfigured
	NoMatchingRule
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case NoRulesConfigured:
		return "no_rules_configured"
	case NoMatchingRule:
		return "no_matching_rule"
	default:
		return "unknown"
	}
}

// EstimateDeliveryTimeQueryResponse is the result of an estimate. Rule and delivery
// fields are set only when Outcome is Matched.
type EstimateDeliveryTimeQueryResponse struct {
	Outcome   Outcome
	Message   string
	OrderTime kernel.TimeOfDay

	RuleID          kernel.UUID
	RuleName        string
	RuleDescription string

	DeliveryTimestamp time.Time
	DeliveryTime      kernel.TimeOfDay
	DeliveryDateMode  rule.DateMode
}
