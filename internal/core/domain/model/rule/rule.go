package rule

import (
	"errors"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/pkg/errs"
)

var (
	// ErrRuleIsNotConstructed is returned when a Rule was not created through NewRule or RestoreRule.
	ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule or RestoreRule")
)

// Rule is the aggregate root for delivery-time rules. It owns its Definition and the
// bookkeeping timestamps; edits replace the whole Definition at once.
type Rule struct {
	id         kernel.UUID
	definition Definition
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewRule creates a rule from a validated definition.
//
// Example:
//
//	def, err := rule.ParseDefinition(rule.RawDefinition{
//	    Name: "Morning", StartTime: "08:00", EndTime: "11:59",
//	    DeliveryDateMode: "today", DeliveryTime: "15:00",
//	})
//	r, err := rule.NewRule(kernel.NewUUID(), def, time.Now())
func NewRule(id kernel.UUID, definition Definition, createdAt time.Time) (*Rule, error) {
	return RestoreRule(id, definition, createdAt, createdAt)
}

// RestoreRule rebuilds a rule from persisted state, re-checking every invariant.
func RestoreRule(id kernel.UUID, definition Definition, createdAt, updatedAt time.Time) (*Rule, error) {
	r := &Rule{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setDefinition(definition),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	r.updatedAt = updatedAt
	if updatedAt.Before(createdAt) {
		r.updatedAt = createdAt
	}

	return r, nil
}

// Validate ensures the rule was properly constructed.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// IsEqual compares two rules by identifier.
func (r *Rule) IsEqual(other *Rule) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Rule) ID() kernel.UUID {
	return r.id
}

// Definition returns a copy of the rule's fields.
func (r *Rule) Definition() Definition {
	def := r.definition
	if def.CustomDeliveryDate != nil {
		date := *def.CustomDeliveryDate
		def.CustomDeliveryDate = &date
	}
	return def
}

func (r *Rule) Name() string {
	return r.definition.Name
}

func (r *Rule) StartTime() kernel.TimeOfDay {
	return r.definition.StartTime
}

func (r *Rule) EndTime() kernel.TimeOfDay {
	return r.definition.EndTime
}

func (r *Rule) DateMode() DateMode {
	return r.definition.DateMode
}

// CustomDeliveryDate returns the fixed delivery date; nil unless the mode is Custom.
func (r *Rule) CustomDeliveryDate() *kernel.Date {
	if r.definition.CustomDeliveryDate == nil {
		return nil
	}
	date := *r.definition.CustomDeliveryDate
	return &date
}

func (r *Rule) DeliveryTime() kernel.TimeOfDay {
	return r.definition.DeliveryTime
}

func (r *Rule) Priority() int {
	return r.definition.Priority
}

func (r *Rule) IsActive() bool {
	return r.definition.Active
}

func (r *Rule) Description() string {
	return r.definition.Description
}

func (r *Rule) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rule) UpdatedAt() time.Time {
	return r.updatedAt
}

// Covers reports whether the order time falls inside the rule's inclusive window.
// Activity is not considered.
func (r *Rule) Covers(orderTime kernel.TimeOfDay) bool {
	return r.definition.Covers(orderTime)
}

// Replace swaps the whole definition. The id and createdAt are kept.
func (r *Rule) Replace(definition Definition, at time.Time) error {
	if err := r.setDefinition(definition); err != nil {
		return err
	}
	r.touch(at)
	return nil
}

// Activate makes the rule eligible for matching.
func (r *Rule) Activate(at time.Time) {
	if r.definition.Active {
		return
	}
	r.definition.Active = true
	r.touch(at)
}

// Deactivate keeps the rule stored but excludes it from matching.
func (r *Rule) Deactivate(at time.Time) {
	if !r.definition.Active {
		return
	}
	r.definition.Active = false
	r.touch(at)
}

func (r *Rule) touch(at time.Time) {
	if at.After(r.updatedAt) {
		r.updatedAt = at
	}
}

func (r *Rule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rule) setDefinition(definition Definition) error {
	if err := definition.Validate(); err != nil {
		return err
	}
	if definition.DateMode != Custom {
		definition.CustomDeliveryDate = nil
	}
	r.definition = definition
	return nil
}

func (r *Rule) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
