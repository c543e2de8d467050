package kernel

import (
	"fmt"
	"time"

	"deliverytime/internal/pkg/errs"
	"deliverytime/internal/pkg/guard"
)

const dateLayout = "2006-01-02"

var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate, ParseDate or DateOf")

// Layouts accepted by ParseDate. Only the calendar date of the timestamped forms is kept.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date is a calendar date with no time-of-day and no zone. It becomes an instant only
// when combined with a TimeOfDay and a location via At.
type Date struct {
	year  int
	month time.Month
	day   int
	guard guard.ConstructorGuard
}

// NewDate validates the components, rejecting dates such as February 30.
func NewDate(year int, month time.Month, day int) (Date, error) {
	normalized := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if normalized.Year() != year || normalized.Month() != month || normalized.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, int(month), day),
		)
	}

	return DateOf(normalized), nil
}

// ParseDate accepts YYYY-MM-DD, or an RFC 3339 / local timestamp whose time-of-day is discarded.
func ParseDate(text string) (Date, error) {
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, text)
		if err == nil {
			return DateOf(parsed), nil
		}
	}

	return Date{}, errs.NewValueIsInvalidErrorWithCause(
		"date",
		fmt.Errorf("%q: expected YYYY-MM-DD", text),
	)
}

// MustParseDate is ParseDate for constants and tests; it panics on bad input.
func MustParseDate(text string) Date {
	d, err := ParseDate(text)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{
		year:  year,
		month: month,
		day:   day,
		guard: guard.NewConstructorGuard(),
	}
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() time.Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// AddDays returns the date n days later (earlier for negative n), crossing month and year ends.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.year, d.month, d.day+n, 0, 0, 0, 0, time.UTC))
}

// At combines the date with a clock time in loc. Seconds and sub-seconds are zero.
// A nil loc means time.Local.
func (d Date) At(clock TimeOfDay, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.year, d.month, d.day, clock.Hour(), clock.Minute(), 0, 0, loc)
}

func (d Date) IsEqual(other Date) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Validate rejects the zero value.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
