package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"deliverytime/internal/pkg/errs"
	"deliverytime/internal/pkg/guard"
)

const (
	// MinutesPerDay is the size of the minutes-since-midnight domain; valid values are [0, MinutesPerDay).
	MinutesPerDay = 24 * 60

	maxHour   = 23
	maxMinute = 59
)

var (
	// ErrTimeOfDayIsNotConstructed marks a zero TimeOfDay, i.e. an absent time rather than midnight.
	ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
		"TimeOfDay must be created via NewTimeOfDay, ParseTimeOfDay or TimeOfDayOf",
	)

	// ErrTimeOfDayFormatIsInvalid is the cause attached to HH:mm parse failures.
	ErrTimeOfDayFormatIsInvalid = errors.New("expected HH:mm with hour 0-23 and minute 0-59")
)

// A single leading digit is tolerated for the hour ("7:05"); the minute always has two.
var timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// TimeOfDay is a wall-clock time with minute precision. It is stored and compared as
// minutes since midnight, so ordering and window containment are integer comparisons.
//
// Example:
//
//	start, _ := kernel.ParseTimeOfDay("08:00")
//	end, _ := kernel.ParseTimeOfDay("12:00")
//	order, _ := kernel.ParseTimeOfDay("9:30")
//	inWindow := !order.Before(start) && !order.After(end) // true
type TimeOfDay struct {
	minutes int
	guard   guard.ConstructorGuard
}

// NewTimeOfDay builds a TimeOfDay from numeric components.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	var rangeErrs []error
	if hour < 0 || hour > maxHour {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError("hour", hour, 0, maxHour))
	}
	if minute < 0 || minute > maxMinute {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError("minute", minute, 0, maxMinute))
	}
	if err := errors.Join(rangeErrs...); err != nil {
		return TimeOfDay{}, err
	}

	return TimeOfDay{
		minutes: hour*60 + minute,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// ParseTimeOfDay parses HH:mm text. Anything else, including seconds, fails with a
// ValueIsInvalidError.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	parts := timeOfDayPattern.FindStringSubmatch(text)
	if parts == nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(
			"time of day",
			fmt.Errorf("%q: %w", text, ErrTimeOfDayFormatIsInvalid),
		)
	}

	// The pattern guarantees both groups are in range.
	hour, _ := strconv.Atoi(parts[1])
	minute, _ := strconv.Atoi(parts[2])

	return NewTimeOfDay(hour, minute)
}

// MustParseTimeOfDay is ParseTimeOfDay for constants and tests; it panics on bad input.
func MustParseTimeOfDay(text string) TimeOfDay {
	tod, err := ParseTimeOfDay(text)
	if err != nil {
		panic(err)
	}
	return tod
}

// TimeOfDayOf returns the clock part of t in t's own location, seconds dropped.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{
		minutes: t.Hour()*60 + t.Minute(),
		guard:   guard.NewConstructorGuard(),
	}
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

// Minutes returns the minutes since midnight, in [0, MinutesPerDay).
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or after other.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t.minutes < other.minutes:
		return -1
	case t.minutes > other.minutes:
		return 1
	default:
		return 0
	}
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// String formats the value as zero-padded HH:mm.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Validate rejects the zero value.
func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
