package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/omahapp/mushaf/internal/ui"
)

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []Session) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		row := []string{
			sess.ID,
			time.UnixMilli(sess.Timestamp).Format("Jan 02, 2006 03:04 PM"),
			formatMinutes(sess.DurationMinutes),
			fmt.Sprintf("%d → %d", sess.StartPage, sess.EndPage),
			fmt.Sprintf("%d", sess.PagesRead),
			ui.Green(sess.Surah),
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"ID", "DATE", "DURATION", "PAGES", "READ", "SURAH"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// List prints out a table of the given sessions.
func List(w io.Writer, sessions []Session) {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	printSessionsTable(w, sessions)
}
