package commands

import (
	"context"
)

// UpdateRuleCommandHandler loads a rule, replaces its definition and stores it.
type UpdateRuleCommandHandler struct {
	uowFactory RuleUoWFactory
}

// NewUpdateRuleCommandHandler creates a handler for rule edits.
func NewUpdateRuleCommandHandler(uowFactory RuleUoWFactory) UpdateRuleCommandHandler {
	return UpdateRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the replacement.
//
// Returns:
//   - errs.ErrObjectNotFound if the rule does not exist
//   - errs.ErrObjectAlreadyExists if the new name belongs to another rule
func (h UpdateRuleCommandHandler) Handle(ctx context.Context, cmd UpdateRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ruleRepo := uow.RuleRepository()

	aggregate, err := ruleRepo.Get(ctx, cmd.RuleID())
	if err != nil {
		return err
	}

	if err = aggregate.Replace(cmd.Definition(), cmd.UpdatedAt()); err != nil {
		return err
	}

	if err = ensureNameIsFree(ctx, ruleRepo.GetByName, aggregate); err != nil {
		return err
	}

	if err = ruleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
