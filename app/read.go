package app

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/omahapp/mushaf/bookmark"
	"github.com/omahapp/mushaf/internal/quran"
	"github.com/omahapp/mushaf/internal/ui"
)

const readHelp = `Enter a page number to jump to it, n for the next page, p for the
previous page, r N to highlight row N, or q (or an empty line) to finish.`

// notify sends a desktop notification.
func (s *services) notify(title, msg string) {
	if !s.cfg.Notifications.Enabled {
		return
	}

	err := beeep.Notify(title, msg, "")
	if err != nil {
		pterm.Error.Printfln("unable to display notification: %v", err)
	}
}

// printPage prints the location of page and the path of its image when the
// pages are installed.
func printPage(ctx *cli.Context, svc *services, page, row int) {
	line := fmt.Sprintf(
		"%s · page %d · juz %d",
		ui.Green(strings.Join(quran.SurahNamesOnPage(page), ", ")),
		page,
		quran.JuzNumber(page),
	)

	if row > 0 {
		line += fmt.Sprintf(" · row %d", row)
	}

	fmt.Fprintln(ctx.App.Writer, line)

	if uri, ok := svc.assets.LocalPageURI(quran.PageKey(page)); ok {
		fmt.Fprintln(ctx.App.Writer, ui.Blue(uri))
	}
}

// readCommand is one instruction typed during a reading session.
type readCommand struct {
	page   int
	row    int
	finish bool
}

// parseReadCommand interprets line relative to the current page and row.
func parseReadCommand(line string, page, row int) (readCommand, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return readCommand{finish: true}, nil
	}

	cmd := readCommand{page: page, row: row}

	switch fields[0] {
	case "q", "quit", "done":
		cmd.finish = true
	case "n", "next":
		cmd.page, cmd.row = page+1, 0
	case "p", "prev", "previous":
		cmd.page, cmd.row = page-1, 0
	case "r", "row":
		if len(fields) != 2 {
			return cmd, fmt.Errorf("usage: r N")
		}

		n, err := strconv.Atoi(fields[1])
		if err != nil || !quran.ValidRow(n) {
			return cmd, fmt.Errorf("row must be between 0 and %d", quran.Rows-1)
		}

		cmd.row = n
	default:
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return cmd, fmt.Errorf("unknown command %q", fields[0])
		}

		cmd.page, cmd.row = n, 0
	}

	if !cmd.finish && !quran.ValidPage(cmd.page) {
		return readCommand{page: page, row: row}, bookmark.ErrInvalidPage.Fmt(
			cmd.page,
			quran.PhysicalPages,
		)
	}

	return cmd, nil
}

// readAction runs an interactive reading session. Each page visited is fed to
// the tracker, which records the session when the reader finishes.
func readAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	if svc.provisioningRequired(ctx.Context) {
		pterm.Warning.Println(errNotDownloaded.Error())
	}

	tracker := svc.tracker()

	page, row := 2, 0
	if lr, ok := svc.bookmarks.LastRead(); ok {
		page = lr.Page
	}

	if id := ctx.String("bookmark"); id != "" {
		b, ok := svc.bookmarks.Bookmark(id)
		if !ok {
			return bookmark.ErrNotFound.Fmt(id)
		}

		tracker.Open(id)

		page, row = b.AnchorPage(), b.ActiveRow()
	}

	if ctx.IsSet("page") {
		page = ctx.Int("page")
	}

	if !quran.ValidPage(page) {
		return bookmark.ErrInvalidPage.Fmt(page, quran.PhysicalPages)
	}

	pterm.Info.Println(readHelp)

	tracker.Visit(page, row)
	printPage(ctx, svc, page, row)

	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(ctx.App.Reader)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

loop:
	for {
		select {
		case <-ctx.Context.Done():
			break loop
		case line, ok := <-lines:
			if !ok {
				break loop
			}

			cmd, err := parseReadCommand(line, page, row)
			if err != nil {
				pterm.Warning.Println(err)
				continue
			}

			if cmd.finish {
				break loop
			}

			page, row = cmd.page, cmd.row

			tracker.Visit(page, row)
			printPage(ctx, svc, page, row)
		}
	}

	res, ok := tracker.Finish(ctx.Context)
	if !ok {
		pterm.Info.Printfln(
			"Sessions shorter than %s are not recorded",
			svc.cfg.Reading.MinSession,
		)

		return nil
	}

	summary := fmt.Sprintf(
		"Read %s for %d %s up to page %d",
		res.Session.Surah,
		res.Session.DurationMinutes,
		pluralize(res.Session.DurationMinutes, "minute"),
		res.Session.EndPage,
	)

	pterm.Success.Println(summary)

	if res.BookmarkUpdated {
		pterm.Info.Println("Bookmark moved to page " + strconv.Itoa(res.LastRead.Page))
	}

	svc.notify("Reading session saved", summary)

	return nil
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
