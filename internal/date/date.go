// Package date defines the calendar value type used to key journal entries.
package date

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse errors. Callers should use errors.Is to match these values.
var (
	// ErrBadTodayOffset indicates a malformed "today-N" form.
	ErrBadTodayOffset = errors.New("malformed today offset")

	// ErrBadFieldCount indicates the value does not split into year, month
	// and day.
	ErrBadFieldCount = errors.New("expected year-month-day")

	// ErrNotNumeric indicates one of the fields is not a number.
	ErrNotNumeric = errors.New("field is not numeric")

	// ErrInvalidDate indicates the fields do not form a real calendar date.
	ErrInvalidDate = errors.New("no such calendar date")
)

// Date is a plain calendar date. It carries no time zone or clock component;
// two entries written on the same calendar day share the same Date.
type Date struct {
	Year  int // may be negative
	Month int
	Day   int
}

// Today returns the current date from the local clock.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// String renders the date as YYYY-MM-DD (month and day zero-padded).
func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare orders dates lexicographically by (year, month, day). It returns
// -1 if d is before other, 0 if equal, +1 if after.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Parse converts a textual date into a Date.
//
// Two forms are accepted:
//
//	2024-01-31     an absolute date
//	today          the current date
//	today-3        three days before the current date
//
// The offset in the relative form must be a non-negative integer number of
// days. The absolute form must name a date that actually exists on the
// calendar (so 2023-02-29 is rejected).
func Parse(s string) (Date, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if strings.HasPrefix(s, "today") {
		return parseRelative(strings.TrimSpace(s[len("today"):]))
	}

	items := strings.Split(s, "-")
	if len(items) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrBadFieldCount, s)
	}

	year, errY := strconv.Atoi(items[0])
	month, errM := strconv.Atoi(items[1])
	day, errD := strconv.Atoi(items[2])
	if errY != nil || errM != nil || errD != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}

	d := Date{Year: year, Month: month, Day: day}
	if !d.valid() {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// parseRelative handles the remainder after the "today" prefix: either
// nothing, or "-N".
func parseRelative(rest string) (Date, error) {
	if rest == "" {
		return Today(), nil
	}
	if !strings.HasPrefix(rest, "-") {
		return Date{}, fmt.Errorf("%w: expected today-N, got trailing %q", ErrBadTodayOffset, rest)
	}

	days, err := strconv.Atoi(strings.TrimSpace(rest[1:]))
	if err != nil || days < 0 {
		return Date{}, fmt.Errorf("%w: %q", ErrBadTodayOffset, rest)
	}

	t := time.Now().AddDate(0, 0, -days)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// valid reports whether the year/month/day combination exists on the
// calendar. time.Date normalizes out-of-range components, so a value is real
// exactly when the round trip preserves it.
func (d Date) valid() bool {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && int(t.Month()) == d.Month && t.Day() == d.Day
}

// MarshalJSON encodes the date as its YYYY-MM-DD string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON decodes a JSON string through Parse.
func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date must be a JSON string: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
