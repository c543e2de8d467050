package queries

import (
	"context"
	"errors"

	"deliverytime/internal/core/domain/services"
	"deliverytime/internal/core/ports"
)

// EstimateDeliveryTimeQueryHandler runs the estimation pipeline: load the active rules,
// order them by priority, pick the first covering the order time, resolve its date.
//
// The handler is read-only. Given the same rule snapshot and the same query it always
// returns the same response.
type EstimateDeliveryTimeQueryHandler struct {
	rules    ports.ActiveRuleSource
	matcher  services.RuleMatcher
	resolver services.DeliveryDateResolver
}

// NewEstimateDeliveryTimeQueryHandler creates the handler over a rule source.
func NewEstimateDeliveryTimeQueryHandler(rules ports.ActiveRuleSource) EstimateDeliveryTimeQueryHandler {
	return EstimateDeliveryTimeQueryHandler{
		rules:    rules,
		matcher:  services.NewRuleMatcher(),
		resolver: services.NewDeliveryDateResolver(),
	}
}

// Handle computes the estimate. An error is returned only when the rule store fails or
// the query is invalid; missing or non-matching rules are reported through Outcome.
func (h EstimateDeliveryTimeQueryHandler) Handle(
	ctx context.Context,
	query EstimateDeliveryTimeQuery,
) (EstimateDeliveryTimeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateDeliveryTimeQueryResponse{}, err
	}

	response := EstimateDeliveryTimeQueryResponse{OrderTime: query.OrderTime()}

	active, err := h.rules.ListActiveByPriority(ctx)
	if err != nil {
		return EstimateDeliveryTimeQueryResponse{}, err
	}

	matched, err := h.matcher.Match(h.matcher.SortByPriority(active), query.OrderTime())
	switch {
	case errors.Is(err, services.ErrNoRulesConfigured):
		response.Outcome = NoRulesConfigured
		response.Message = "No delivery rules configured"
		return response, nil
	case errors.Is(err, services.ErrNoMatchingRule):
		response.Outcome = NoMatchingRule
		response.Message = "No matching delivery rule for this order time"
		return response, nil
	case err != nil:
		return EstimateDeliveryTimeQueryResponse{}, err
	}

	deliveryTimestamp, err := h.resolver.Resolve(matched, query.EvaluationInstant())
	if err != nil {
		return EstimateDeliveryTimeQueryResponse{}, err
	}

	response.Outcome = Matched
	response.Message = "Delivery time estimated by rule " + matched.Name()
	response.RuleID = matched.ID()
	response.RuleName = matched.Name()
	response.RuleDescription = matched.Description()
	response.DeliveryTimestamp = deliveryTimestamp
	response.DeliveryTime = matched.DeliveryTime()
	response.DeliveryDateMode = matched.DateMode()
	return response, nil
}
