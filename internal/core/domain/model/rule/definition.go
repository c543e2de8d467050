package rule

import (
	"errors"
	"fmt"
	"strings"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/pkg/errs"
)

var (
	// ErrCustomDeliveryDateIsRequired is returned when the mode is custom and no date is given.
	ErrCustomDeliveryDateIsRequired = errors.New("custom delivery date is required when deliveryDateMode is 'custom'")

	// ErrTimeWindowIsInvalid is returned when startTime is after endTime.
	ErrTimeWindowIsInvalid = errors.New("start time must not be after end time")
)

// Definition holds every editable field of a rule in validated form.
type Definition struct {
	Name               string
	StartTime          kernel.TimeOfDay
	EndTime            kernel.TimeOfDay
	DateMode           DateMode
	CustomDeliveryDate *kernel.Date
	DeliveryTime       kernel.TimeOfDay
	Priority           int
	Active             bool
	Description        string
}

// RawDefinition is a rule as received from a caller: times and dates as text, absent
// text fields as "". Priority defaults to 0 and Active to true when nil.
type RawDefinition struct {
	Name               string `yaml:"name"`
	StartTime          string `yaml:"startTime"`
	EndTime            string `yaml:"endTime"`
	DeliveryDateMode   string `yaml:"deliveryDateMode"`
	DeliveryTime       string `yaml:"deliveryTime"`
	CustomDeliveryDate string `yaml:"customDeliveryDate"`
	Priority           *int   `yaml:"priority"`
	Active             *bool  `yaml:"active"`
	Description        string `yaml:"description"`
}

// ParseDefinition validates raw field values and returns the normalized Definition.
//
// Failures, all classifiable with errors.Is:
//   - errs.ErrValueIsRequired: name, startTime, endTime, deliveryDateMode or deliveryTime absent
//   - errs.ErrValueIsInvalid: a time (or the custom date) does not parse
//   - errs.ErrValueIsNotAllowed: deliveryDateMode is not today, tomorrow or custom
//   - ErrCustomDeliveryDateIsRequired: custom mode without a date
//   - ErrTimeWindowIsInvalid: startTime after endTime
//
// Field errors are joined; the custom date and window checks run only once the fields
// they depend on are valid.
func ParseDefinition(raw RawDefinition) (Definition, error) {
	def := Definition{
		Active:      true,
		Description: raw.Description,
	}
	if raw.Priority != nil {
		def.Priority = *raw.Priority
	}
	if raw.Active != nil {
		def.Active = *raw.Active
	}

	if err := errors.Join(
		def.setName(raw.Name),
		setTime("startTime", raw.StartTime, &def.StartTime),
		setTime("endTime", raw.EndTime, &def.EndTime),
		def.setDateMode(raw.DeliveryDateMode),
		setTime("deliveryTime", raw.DeliveryTime, &def.DeliveryTime),
	); err != nil {
		return Definition{}, err
	}

	if err := def.setCustomDeliveryDate(raw.CustomDeliveryDate); err != nil {
		return Definition{}, err
	}

	if err := def.Validate(); err != nil {
		return Definition{}, err
	}

	return def, nil
}

// Validate checks the invariants of an already typed Definition.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(
		d.StartTime.Validate(),
		d.EndTime.Validate(),
		d.DeliveryTime.Validate(),
		d.DateMode.Validate(),
	); err != nil {
		return err
	}

	if d.DateMode == Custom {
		if d.CustomDeliveryDate == nil {
			return ErrCustomDeliveryDateIsRequired
		}
		if err := d.CustomDeliveryDate.Validate(); err != nil {
			return err
		}
	}

	if d.StartTime.After(d.EndTime) {
		return fmt.Errorf("%w: %s is after %s", ErrTimeWindowIsInvalid, d.StartTime, d.EndTime)
	}

	return nil
}

// Covers reports whether orderTime lies in [StartTime, EndTime], bounds included.
func (d Definition) Covers(orderTime kernel.TimeOfDay) bool {
	minutes := orderTime.Minutes()
	return d.StartTime.Minutes() <= minutes && minutes <= d.EndTime.Minutes()
}

func (d *Definition) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.Name = name
	return nil
}

func (d *Definition) setDateMode(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("deliveryDateMode")
	}
	mode, err := ParseDateMode(text)
	if err != nil {
		return err
	}
	d.DateMode = mode
	return nil
}

func (d *Definition) setCustomDeliveryDate(text string) error {
	if d.DateMode != Custom {
		d.CustomDeliveryDate = nil
		return nil
	}
	if text == "" {
		return ErrCustomDeliveryDateIsRequired
	}
	date, err := kernel.ParseDate(text)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customDeliveryDate", fmt.Errorf("%q: expected YYYY-MM-DD", text))
	}
	d.CustomDeliveryDate = &date
	return nil
}

func setTime(field, text string, target *kernel.TimeOfDay) error {
	if text == "" {
		return errs.NewValueIsRequiredError(field)
	}
	tod, err := kernel.ParseTimeOfDay(text)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%q: %w", text, kernel.ErrTimeOfDayFormatIsInvalid))
	}
	*target = tod
	return nil
}
