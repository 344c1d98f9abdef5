package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates in the spreadsheet.
const DateLayout = "2006-01-02"

var parseLayouts = []string{DateLayout, "02/01/2006", "02-01-2006"}

// Today returns the current calendar date, truncated to midnight.
func Today() time.Time {
	return Midnight(time.Now())
}

// Tomorrow returns tomorrow's calendar date.
func Tomorrow() time.Time {
	return Today().AddDate(0, 0, 1)
}

// Yesterday returns yesterday's calendar date.
func Yesterday() time.Time {
	return Today().AddDate(0, 0, -1)
}

// Midnight truncates t to its calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ParseDate parses a date string. Supported formats: YYYY-MM-DD, DD/MM/YYYY,
// DD-MM-YYYY.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// FormatDate formats a date as "28 Oct 2025".
func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// DateRange returns every calendar day between start and end, inclusive.
func DateRange(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := Midnight(start); !d.After(Midnight(end)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// WeekRange returns the Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	d := Midnight(t)
	// time.Weekday numbers Sunday as 0; shift so the week starts on Monday.
	offset := (int(d.Weekday()) + 6) % 7
	start := d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthRange returns the first and last calendar day of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	d := Midnight(t)
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}

// Nights returns the number of nights between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(Midnight(checkOut).Sub(Midnight(checkIn)).Hours() / 24)
}

// DaysUntil returns the number of days from today until the target date.
func DaysUntil(target time.Time) int {
	return int(Midnight(target).Sub(Today()).Hours() / 24)
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
