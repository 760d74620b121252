package app

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/omahapp/mushaf/internal/timeutil"
	"github.com/omahapp/mushaf/stats"
)

// monthFromFlag returns the month selected with --month, or the current one.
func monthFromFlag(ctx *cli.Context, now time.Time) (int, time.Month, error) {
	s := ctx.String("month")
	if s == "" {
		return now.Year(), now.Month(), nil
	}

	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return 0, 0, errInvalidMonth.Fmt(s)
	}

	return t.Year(), t.Month(), nil
}

// dateFromFlag resolves --date to a YYYY-MM-DD key. An unset flag means
// today.
func dateFromFlag(ctx *cli.Context, now time.Time) (string, error) {
	s := ctx.String("date")
	if s == "" {
		return timeutil.DateKey(now), nil
	}

	t, err := timeutil.FromStr(s, now)
	if err != nil {
		return "", err
	}

	return timeutil.DateKey(t), nil
}

// statsAction prints the reading summary and the selected month.
func statsAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	year, month, err := monthFromFlag(ctx, time.Now())
	if err != nil {
		return err
	}

	summary := svc.stats.Summary()
	md := svc.stats.MonthData(year, month)

	if ctx.Bool("json") {
		return writeJSON(ctx.App.Writer, struct {
			Summary stats.Summary   `json:"summary"`
			Month   stats.MonthData `json:"month"`
		}{summary, md})
	}

	stats.Show(ctx.App.Writer, summary, md)

	return nil
}

// listSessionsAction prints all sessions, or those of --date.
func listSessionsAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	sessions := svc.stats.Sessions()

	if ctx.IsSet("date") {
		date, err := dateFromFlag(ctx, time.Now())
		if err != nil {
			return err
		}

		sessions = svc.stats.SessionsForDate(date)
	}

	if ctx.Bool("json") {
		return writeJSON(ctx.App.Writer, sessions)
	}

	stats.List(ctx.App.Writer, sessions)

	return nil
}

// addSessionAction records a session that was read away from the app.
func addSessionAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	date, err := dateFromFlag(ctx, time.Now())
	if err != nil {
		return err
	}

	sess, err := svc.stats.AddManualSession(date, stats.ManualSession{
		Surah:           ctx.String("surah"),
		DurationMinutes: ctx.Int("duration"),
		StartPage:       ctx.Int("start"),
		EndPage:         ctx.Int("end"),
	})
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Session %s added on %s", sess.ID, sess.Date)

	return nil
}

// editSessionAction changes the fields of a session given on the command
// line.
func editSessionAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	id := ctx.Args().First()
	if id == "" {
		return errMissingArg.Fmt("session id")
	}

	var u stats.SessionUpdate

	if ctx.IsSet("surah") {
		v := ctx.String("surah")
		u.Surah = &v
	}

	intFlags := map[string]**int{
		"duration":   &u.DurationMinutes,
		"pages-read": &u.PagesRead,
		"start":      &u.StartPage,
		"end":        &u.EndPage,
	}

	for name, field := range intFlags {
		if ctx.IsSet(name) {
			v := ctx.Int(name)
			*field = &v
		}
	}

	ok, err := svc.stats.UpdateSession(id, u)
	if err != nil {
		return err
	}

	if !ok {
		return stats.ErrSessionNotFound.Fmt(id)
	}

	pterm.Success.Printfln("Session %s updated", id)

	return nil
}

// deleteSessionAction removes a session after confirmation.
func deleteSessionAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	id := ctx.Args().First()
	if id == "" {
		return errMissingArg.Fmt("session id")
	}

	sess, ok := svc.stats.Session(id)
	if !ok {
		return stats.ErrSessionNotFound.Fmt(id)
	}

	if !ctx.Bool("yes") {
		stats.List(ctx.App.Writer, []stats.Session{sess})

		confirm(
			ctx,
			"The above session will be deleted permanently. Press ENTER to proceed",
		)
	}

	svc.stats.DeleteSession(id)

	return nil
}
