package queries

import (
	"errors"

	"deliverytime/internal/pkg/guard"
)

var (
	ErrGetAllRulesQueryIsNotConstructed = errors.New(
		"GetAllRulesQuery must be created via NewGetAllRulesQuery constructor",
	)
)

// GetAllRulesQuery lists every rule, active or not, in evaluation order.
type GetAllRulesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllRulesQuery() GetAllRulesQuery {
	return GetAllRulesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRulesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRulesQueryIsNotConstructed)
}
