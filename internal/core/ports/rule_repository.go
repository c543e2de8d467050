// Package ports defines the contracts between the delivery-time domain and its
// infrastructure: rule storage, order storage and the transaction boundary.
package ports

import (
	"context"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"
)

// ActiveRuleSource is the read-only view of the rule store used by estimation.
type ActiveRuleSource interface {
	// ListActiveByPriority returns every active rule, highest priority first.
	// Equal priorities are ordered newest first, then by id, so the result is a
	// deterministic snapshot of the store.
	ListActiveByPriority(ctx context.Context) ([]*rule.Rule, error)
}

// RuleRepository defines the persistence contract for rule aggregates.
type RuleRepository interface {
	ActiveRuleSource

	// Add persists a new rule. A rule with the same name yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *rule.Rule) error

	// Update persists a replaced rule. Renaming onto another rule's name yields
	// errs.ErrObjectAlreadyExists; a missing rule yields errs.ErrObjectNotFound.
	Update(ctx context.Context, aggregate *rule.Rule) error

	// Delete removes a rule permanently.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a rule by id or returns errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*rule.Rule, error)

	// GetByName retrieves a rule by its unique name or returns errs.ErrObjectNotFound.
	GetByName(ctx context.Context, name string) (*rule.Rule, error)
}
