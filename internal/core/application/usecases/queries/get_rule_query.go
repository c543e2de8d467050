package queries

import (
	"errors"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/pkg/guard"
)

var (
	ErrGetRuleQueryIsNotConstructed = errors.New(
		"GetRuleQuery must be created via NewGetRuleQuery constructor",
	)
)

// GetRuleQuery fetches a single rule by id.
type GetRuleQuery struct {
	ruleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRuleQuery(ruleID kernel.UUID) (GetRuleQuery, error) {
	if err := ruleID.Validate(); err != nil {
		return GetRuleQuery{}, err
	}

	return GetRuleQuery{
		ruleID: ruleID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRuleQuery) Validate() error {
	return q.guard.Validate(ErrGetRuleQueryIsNotConstructed)
}

func (q GetRuleQuery) RuleID() kernel.UUID {
	return q.ruleID
}
