package commands

import (
	"context"
	"errors"

	"deliverytime/internal/core/domain/model/rule"
	"deliverytime/internal/pkg/errs"
)

// CreateRuleCommandHandler stores a new rule after checking its name is free.
//
// Example:
//
//	handler := NewCreateRuleCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // A rule with this name already exists
//	}
type CreateRuleCommandHandler struct {
	uowFactory RuleUoWFactory
}

// NewCreateRuleCommandHandler creates a handler for rule creation.
func NewCreateRuleCommandHandler(uowFactory RuleUoWFactory) CreateRuleCommandHandler {
	return CreateRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the rule. Returns errs.ErrObjectAlreadyExists when the name is taken;
// the repository reports the same error if a concurrent insert wins the race.
func (h CreateRuleCommandHandler) Handle(ctx context.Context, cmd CreateRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := rule.NewRule(cmd.RuleID(), cmd.Definition(), cmd.CreatedAt())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ruleRepo := uow.RuleRepository()

	if err = ensureNameIsFree(ctx, ruleRepo.GetByName, aggregate); err != nil {
		return err
	}

	if err = ruleRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensureNameIsFree fails when a different rule already holds the aggregate's name.
func ensureNameIsFree(
	ctx context.Context,
	getByName func(ctx context.Context, name string) (*rule.Rule, error),
	aggregate *rule.Rule,
) error {
	existing, err := getByName(ctx, aggregate.Name())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if existing.IsEqual(aggregate) {
		return nil
	}
	return errs.NewObjectAlreadyExistsError("rule", aggregate.Name())
}
