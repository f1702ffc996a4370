// Package slots owns the daily booking grid: a fixed list of same-length
// slots shared by all services, bookable on business days inside a
// rolling window. The grid is derived, never stored; availability is the
// grid minus bookings that still hold their slot.
package slots

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Grid is the fixed slot list per business day.
var Grid = []string{
	"08:00-10:00",
	"10:00-12:00",
	"12:00-14:00",
	"14:00-16:00",
	"16:00-18:00",
}

// Valid reports whether slot is one of the grid entries.
func Valid(slot string) bool {
	for _, s := range Grid {
		if s == slot {
			return true
		}
	}
	return false
}

// BusinessDay reports whether the date falls on a bookable weekday.
func BusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// ParseDate parses a calendar date in the given location.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking date %q: expected YYYY-MM-DD", date)
	}
	return t, nil
}

// ValidateBookable checks the full grid rules: a known slot, on a
// business day, from today up to windowDays ahead.
func ValidateBookable(date, slot string, now time.Time, windowDays int, loc *time.Location) error {
	if !Valid(slot) {
		return fmt.Errorf("unknown time slot %q", slot)
	}

	day, err := ParseDate(date, loc)
	if err != nil {
		return err
	}
	if !BusinessDay(day) {
		return fmt.Errorf("bookings are not taken on weekends")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if day.Before(today) {
		return fmt.Errorf("booking date %s is in the past", date)
	}
	if day.After(today.AddDate(0, 0, windowDays)) {
		return fmt.Errorf("booking date %s is more than %d days ahead", date, windowDays)
	}

	return nil
}

// StartTime resolves the wall-clock start of a slot on a date, minutes
// included, in the given location. Used by the cancellation policy so the
// window boundary is exact rather than hour-granular.
func StartTime(date, slot string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}

	start, _, found := strings.Cut(slot, "-")
	if !found {
		return time.Time{}, fmt.Errorf("malformed time slot %q", slot)
	}
	t, err := time.Parse("15:04", start)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed slot start %q", start)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
