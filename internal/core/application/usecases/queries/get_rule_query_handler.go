package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliverytime/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRuleQueryHandler struct {
	db *gorm.DB
}

func NewGetRuleQueryHandler(db *gorm.DB) GetRuleQueryHandler {
	return GetRuleQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when no rule has the requested id.
func (h GetRuleQueryHandler) Handle(ctx context.Context, query GetRuleQuery) (RuleResponse, error) {
	if err := query.Validate(); err != nil {
		return RuleResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(selectRuleColumns+`
		WHERE id = ?`, query.RuleID().String()).Row()

	response, err := scanRule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RuleResponse{}, errs.NewObjectNotFoundError("rule", query.RuleID())
	}
	if err != nil {
		return RuleResponse{}, err
	}

	return response, nil
}
