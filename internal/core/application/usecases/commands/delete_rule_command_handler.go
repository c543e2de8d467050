package commands

import (
	"context"
)

// DeleteRuleCommandHandler removes a rule from the store.
type DeleteRuleCommandHandler struct {
	uowFactory RuleUoWFactory
}

// NewDeleteRuleCommandHandler creates a handler for rule removal.
func NewDeleteRuleCommandHandler(uowFactory RuleUoWFactory) DeleteRuleCommandHandler {
	return DeleteRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the rule or returns errs.ErrObjectNotFound.
func (h DeleteRuleCommandHandler) Handle(ctx context.Context, cmd DeleteRuleCommand) error {
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

	if err := uow.RuleRepository().Delete(ctx, cmd.RuleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
