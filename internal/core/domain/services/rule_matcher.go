package services

import (
	"cmp"
	"errors"
	"slices"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"
)

var (
	// ErrNoRulesConfigured is returned when there is no active rule at all.
	ErrNoRulesConfigured = errors.New("no delivery rules configured")

	// ErrNoMatchingRule is returned when active rules exist but none covers the order time.
	ErrNoMatchingRule = errors.New("no matching delivery rule for this order time")
)

// RuleMatcher selects the rule that applies to an order time.
//
// Business rules:
//   - Higher priority wins; among equal priorities the supplied order decides
//   - Windows are inclusive on both ends
//   - Inactive rules never match
//
// Example usage:
//
//	matcher := services.NewRuleMatcher()
//	sorted := matcher.SortByPriority(rules)
//	matched, err := matcher.Match(sorted, kernel.MustParseTimeOfDay("10:30"))
//	if errors.Is(err, services.ErrNoMatchingRule) {
//	    // Report "no rule" to the caller
//	}
type RuleMatcher struct{}

// NewRuleMatcher creates a new RuleMatcher instance.
func NewRuleMatcher() RuleMatcher {
	return RuleMatcher{}
}

// SortByPriority returns a copy of rules ordered by priority descending. The sort is
// stable, so rules with equal priority keep the order they were supplied in.
func (m RuleMatcher) SortByPriority(rules []*rule.Rule) []*rule.Rule {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b *rule.Rule) int {
		return cmp.Compare(b.Priority(), a.Priority())
	})
	return sorted
}

// Match scans rules in the given order and returns the first active rule whose window
// covers orderTime.
//
// Returns:
//   - ErrNoRulesConfigured if no active rule was supplied
//   - ErrNoMatchingRule if no active rule covers orderTime
//   - a validation error if orderTime or any rule is not properly constructed
func (m RuleMatcher) Match(rules []*rule.Rule, orderTime kernel.TimeOfDay) (*rule.Rule, error) {
	if err := orderTime.Validate(); err != nil {
		return nil, err
	}

	active := 0
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if !r.IsActive() {
			continue
		}
		active++

		if r.Covers(orderTime) {
			return r, nil
		}
	}

	if active == 0 {
		return nil, ErrNoRulesConfigured
	}
	return nil, ErrNoMatchingRule
}
