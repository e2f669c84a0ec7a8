// Package localtime converts between local calendar dates, clock times and
// combined wall-clock instants. Instants are carried as strings of the form
// "2006-01-02T15:04:05" and are never shifted to or from UTC; scheduling math
// throughout the app happens in local wall-clock time.
package localtime

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	ClockLayout   = "15:04"
	InstantLayout = "2006-01-02T15:04:05"
)

var ErrInvalidDate = errors.New("localtime: invalid date")

// CombineLocal builds a local instant string from a YYYY-MM-DD date and an
// optional HH:MM clock time (empty defaults to midnight).
func CombineLocal(date, clock string) (string, error) {
	if _, err := time.ParseInLocation(DateLayout, date, time.Local); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if clock == "" {
		clock = "00:00"
	}
	if _, err := time.ParseInLocation(ClockLayout, clock, time.Local); err != nil {
		return "", fmt.Errorf("%w: bad clock time %q", ErrInvalidDate, clock)
	}
	return date + "T" + clock + ":00", nil
}

// SplitLocal is the inverse of CombineLocal: pure slicing, no parsing and no
// timezone conversion. Inputs too short to carry the requested part yield "".
func SplitLocal(instant string) (date, clock string) {
	if len(instant) >= len(DateLayout) {
		date = instant[:len(DateLayout)]
	}
	if len(instant) >= 16 && instant[10] == 'T' {
		clock = instant[11:16]
	}
	return date, clock
}

// ParseLocal interprets an instant string in the local location. It accepts
// both the full seconds form and the shorter "2006-01-02T15:04".
func ParseLocal(instant string) (time.Time, error) {
	if t, err := time.ParseInLocation(InstantLayout, instant, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", instant, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, instant)
	}
	return t, nil
}

// FormatLocal renders t back into the instant string form, dropping any
// sub-minute precision beyond seconds.
func FormatLocal(t time.Time) string {
	return t.Format(InstantLayout)
}

// DisplayDate renders a calendar date for humans. Fails soft: unparseable
// input is returned as-is.
func DisplayDate(date string) string {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return date
	}
	return t.Format("2 Jan 2006")
}

// DisplayDateTime renders an instant for humans, falling back to the raw
// input when it does not parse.
func DisplayDateTime(instant string) string {
	t, err := ParseLocal(instant)
	if err != nil {
		return instant
	}
	return t.Format("2 Jan 2006 15:04")
}
