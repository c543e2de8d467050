package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllRulesQueryHandler reads rules ordered by priority descending, newest first among
// equal priorities.
type GetAllRulesQueryHandler struct {
	db *gorm.DB
}

func NewGetAllRulesQueryHandler(db *gorm.DB) GetAllRulesQueryHandler {
	return GetAllRulesQueryHandler{db: db}
}

func (h GetAllRulesQueryHandler) Handle(ctx context.Context, query GetAllRulesQuery) ([]RuleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rules := make([]RuleResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(selectRuleColumns + `
		ORDER BY priority DESC, created_at DESC, id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		r, scanErr := scanRule(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		rules = append(rules, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
