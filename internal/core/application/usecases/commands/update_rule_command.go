package commands

import (
	"errors"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"
	"deliverytime/internal/pkg/errs"
	"deliverytime/internal/pkg/guard"
)

var (
	ErrUpdateRuleCommandIsNotConstructed = errors.New(
		"UpdateRuleCommand must be created via NewUpdateRuleCommand constructor",
	)
)

// UpdateRuleCommand replaces every editable field of an existing rule. Fields left out
// of raw fall back to their defaults, exactly as on creation.
type UpdateRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID     kernel.UUID
	definition rule.Definition
	updatedAt  time.Time

	guard guard.ConstructorGuard
}

// NewUpdateRuleCommand validates raw and creates the command.
func NewUpdateRuleCommand(ruleID kernel.UUID, raw rule.RawDefinition, updatedAt time.Time) (UpdateRuleCommand, error) {
	command := UpdateRuleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRuleID(ruleID),
		command.setUpdatedAt(updatedAt),
	); err != nil {
		return UpdateRuleCommand{}, err
	}

	definition, err := rule.ParseDefinition(raw)
	if err != nil {
		return UpdateRuleCommand{}, err
	}
	command.definition = definition

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRuleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRuleCommandIsNotConstructed)
}

func (c UpdateRuleCommand) RuleID() kernel.UUID {
	return c.ruleID
}

func (c UpdateRuleCommand) Definition() rule.Definition {
	return c.definition
}

func (c UpdateRuleCommand) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *UpdateRuleCommand) setRuleID(ruleID kernel.UUID) error {
	if err := ruleID.Validate(); err != nil {
		return err
	}

	c.ruleID = ruleID
	return nil
}

func (c *UpdateRuleCommand) setUpdatedAt(updatedAt time.Time) error {
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updatedAt")
	}

	c.updatedAt = updatedAt
	return nil
}
