// Package stats records reading sessions and reports daily, monthly and
// all-time reading statistics
package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/omahapp/mushaf/internal/timeutil"
	"github.com/omahapp/mushaf/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No reading sessions found"
)

func formatMinutes(m int) string {
	hrs, mins := timeutil.MinsToHoursAndMins(m)
	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %dm", hrs, mins)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}

// getSummary renders today's totals and the streaks.
func getSummary(s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", ui.Blue("Today"))
	fmt.Fprintln(&b, "Time read:", ui.Green(formatMinutes(s.TodayMinutes)))
	fmt.Fprintln(&b, "Pages read:", ui.Green(s.TodayPages))
	fmt.Fprintln(&b, "Sessions:", ui.Green(s.TodaySessions))

	fmt.Fprintf(&b, "\n%s\n", ui.Blue("Streaks"))
	fmt.Fprintln(&b, "Current streak:", ui.Green(plural(s.CurrentStreak, "day")))
	fmt.Fprintln(&b, "Longest streak:", ui.Green(plural(s.LongestStreak, "day")))

	fmt.Fprintf(&b, "\n%s\n", ui.Blue("All time"))
	fmt.Fprintln(&b, "Time read:", ui.Green(formatMinutes(s.TotalMinutes)))
	fmt.Fprintln(&b, "Pages read:", ui.Green(s.TotalPages))
	fmt.Fprintln(&b, "Sessions:", ui.Green(s.TotalSessions))
	fmt.Fprintln(&b, "Days read:", ui.Green(s.TotalDaysRead))

	return b.String()
}

// getMonth renders the month totals.
func getMonth(md MonthData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", ui.Blue(fmt.Sprintf("%s %d", md.Month, md.Year)))
	fmt.Fprintln(&b, "Time read:", ui.Green(formatMinutes(md.TotalMinutes)))
	fmt.Fprintln(&b, "Pages read:", ui.Green(md.TotalPages))
	fmt.Fprintln(&b, "Sessions:", ui.Green(md.TotalSessions))
	fmt.Fprintln(&b, "Active days:", ui.Green(md.ActiveDays))

	return b.String()
}

// getBarChart renders the minutes read on each active day of the month.
func getBarChart(md MonthData) string {
	if len(md.DailyStats) == 0 {
		return ""
	}

	header := ui.Blue("\nDaily breakdown (minutes)")

	var bars pterm.Bars

	days := timeutil.DaysIn(md.Year, md.Month)

	for day := 1; day <= days; day++ {
		date := time.Date(md.Year, md.Month, day, 0, 0, 0, 0, time.UTC)

		stats, ok := md.DailyStats[timeutil.DateKey(date)]
		if !ok {
			continue
		}

		bars = append(bars, pterm.Bar{
			Value: stats.TotalMinutes,
			Label: fmt.Sprintf("%s %02d", md.Month.String()[:3], day),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// Show writes the reading summary and the breakdown of md to w.
func Show(w io.Writer, s Summary, md MonthData) {
	output := fmt.Sprint(
		getSummary(s),
		getMonth(md),
		getBarChart(md),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}
