package stats

import (
	"slices"
	"time"

	"github.com/omahapp/mushaf/internal/timeutil"
)

// streaks returns the current and longest runs of consecutive reading days.
//
// The longest run is found over every active day. The current run counts
// backwards from today, or from yesterday when nothing has been read yet
// today; if neither day is active there is no current streak. The longest
// streak is never shorter than the current one.
func streaks(days map[string]DailyStats, now time.Time) (current, longest int) {
	active := make([]string, 0, len(days))

	for date, d := range days {
		if d.SessionCount > 0 {
			active = append(active, date)
		}
	}

	if len(active) == 0 {
		return 0, 0
	}

	slices.Sort(active)

	longest, run := 1, 1

	for i := 1; i < len(active); i++ {
		if daysBetween(active[i-1], active[i]) == 1 {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}

	isActive := func(date string) bool {
		return days[date].SessionCount > 0
	}

	anchor := now
	if !isActive(timeutil.DateKey(anchor)) {
		anchor = now.AddDate(0, 0, -1)
		if !isActive(timeutil.DateKey(anchor)) {
			return 0, longest
		}
	}

	for d := anchor; isActive(timeutil.DateKey(d)); d = d.AddDate(0, 0, -1) {
		current++
	}

	return current, max(longest, current)
}

// daysBetween returns the number of calendar days from a to b. Unparsable
// keys are treated as not adjacent.
func daysBetween(a, b string) int {
	ta, errA := time.Parse(timeutil.DateLayout, a)
	tb, errB := time.Parse(timeutil.DateLayout, b)

	if errA != nil || errB != nil {
		return 0
	}

	return int(tb.Sub(ta).Hours() / 24) //nolint:gomnd // hours in a day
}
