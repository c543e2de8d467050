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
	ErrCreateRuleCommandIsNotConstructed = errors.New(
		"CreateRuleCommand must be created via NewCreateRuleCommand constructor",
	)
)

// CreateRuleCommand represents a request to add a delivery-time rule.
// The raw fields are validated on construction, so a constructed command always
// carries a valid definition.
//
// Example:
//
//	cmd, err := NewCreateRuleCommand(kernel.NewUUID(), rule.RawDefinition{
//	    Name: "Morning", StartTime: "08:00", EndTime: "11:59",
//	    DeliveryDateMode: "today", DeliveryTime: "15:00",
//	}, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid rule: %w", err)
//	}
//
//	handler := NewCreateRuleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create rule: %w", err)
//	}
type CreateRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID     kernel.UUID
	definition rule.Definition
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewCreateRuleCommand validates raw and creates the command.
func NewCreateRuleCommand(ruleID kernel.UUID, raw rule.RawDefinition, createdAt time.Time) (CreateRuleCommand, error) {
	command := CreateRuleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRuleID(ruleID),
		command.setCreatedAt(createdAt),
	); err != nil {
		return CreateRuleCommand{}, err
	}

	definition, err := rule.ParseDefinition(raw)
	if err != nil {
		return CreateRuleCommand{}, err
	}
	command.definition = definition

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreateRuleCommandIsNotConstructed)
}

func (c CreateRuleCommand) RuleID() kernel.UUID {
	return c.ruleID
}

func (c CreateRuleCommand) Definition() rule.Definition {
	return c.definition
}

func (c CreateRuleCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateRuleCommand) setRuleID(ruleID kernel.UUID) error {
	if err := ruleID.Validate(); err != nil {
		return err
	}

	c.ruleID = ruleID
	return nil
}

func (c *CreateRuleCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	c.createdAt = createdAt
	return nil
}
