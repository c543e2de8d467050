package commands

import (
	"errors"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/pkg/guard"
)

var (
	ErrDeleteRuleCommandIsNotConstructed = errors.New(
		"DeleteRuleCommand must be created via NewDeleteRuleCommand constructor",
	)
)

// DeleteRuleCommand removes a rule permanently. Orders already scheduled from it keep
// their delivery times.
type DeleteRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRuleCommand creates the command.
func NewDeleteRuleCommand(ruleID kernel.UUID) (DeleteRuleCommand, error) {
	command := DeleteRuleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRuleID(ruleID); err != nil {
		return DeleteRuleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRuleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRuleCommandIsNotConstructed)
}

func (c DeleteRuleCommand) RuleID() kernel.UUID {
	return c.ruleID
}

func (c *DeleteRuleCommand) setRuleID(ruleID kernel.UUID) error {
	if err := ruleID.Validate(); err != nil {
		return err
	}

	c.ruleID = ruleID
	return nil
}
