// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const minutesInAnHour = 60

// DateLayout is the calendar-day key used by reading statistics.
const DateLayout = "2006-01-02"

// ClockLayout is the 24-hour clock shown next to bookmarks and last-read
// entries.
const ClockLayout = "15:04"

// Clock returns the current time. Services take a Clock so tests can simulate
// "today".
type Clock func() time.Time

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// DateKey returns the YYYY-MM-DD representation of t in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DateKeyFromMillis converts an epoch millisecond timestamp into a local
// calendar-day key.
func DateKeyFromMillis(ms int64) string {
	return DateKey(time.UnixMilli(ms).In(time.Local))
}

// ParseDate parses a YYYY-MM-DD key as midnight local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// Midday returns 12:00:00 local time on the given calendar day. Manual
// sessions are anchored here so a timezone shift cannot move them to another
// day.
func Midday(date string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}

	//nolint:gomnd // noon
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local), nil
}

// AddDays moves a date key by n calendar days.
func AddDays(date string, n int) (string, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}

	return DateKey(d.AddDate(0, 0, n)), nil
}

var monthNames = [...]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// DisplayDate returns the short "2 january" form kept on bookmarks and
// last-read records.
func DisplayDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), monthNames[t.Month()-1])
}

// DisplayClock returns the HH:MM form kept on bookmarks and last-read records.
func DisplayClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FromStr parses a user supplied date such as "2024-01-05", "yesterday" or
// "3 days ago" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := ParseDate(s); err == nil {
		return t, nil
	}

	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognised date %q: %w", s, err)
	}

	return dt.Time.In(time.Local), nil
}
