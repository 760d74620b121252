package bookmark

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/omahapp/mushaf/internal/ui"
)

const noBookmarksMsg = "No bookmarks saved yet"

// printBookmarksTable prints a bookmark table to the command-line.
func printBookmarksTable(w io.Writer, bookmarks []Bookmark) {
	tableBody := make([][]string, len(bookmarks))

	for i := range bookmarks {
		b := bookmarks[i]

		row := "-"
		if b.Row != nil {
			row = strconv.Itoa(*b.Row)
		}

		tableBody[i] = []string{
			b.ID,
			ui.Highlight(b.Name),
			strconv.Itoa(b.Page),
			row,
			ui.Green(b.Sura),
			b.Target().String(),
			fmt.Sprintf("%s %s", b.Date, b.Time),
		}
	}

	tableBody = append([][]string{
		{"ID", "NAME", "PAGE", "ROW", "SURAH", "TARGET", "SAVED"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// List prints out a table of the given bookmarks.
func List(w io.Writer, bookmarks []Bookmark) {
	if len(bookmarks) == 0 {
		pterm.Info.Println(noBookmarksMsg)
		return
	}

	printBookmarksTable(w, bookmarks)
}

// ShowLastRead writes the last-read position to w.
func ShowLastRead(w io.Writer, lr LastRead) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s page %d", ui.Green(lr.Sura), lr.Page)

	if lr.Row != nil {
		fmt.Fprintf(&b, ", row %d", *lr.Row)
	}

	fmt.Fprintf(&b, "\nRead on %s at %s", lr.Date, lr.Time)

	if lr.Duration != "" {
		fmt.Fprintf(&b, " for %s", lr.Duration)
	}

	if lr.Pages > 0 {
		fmt.Fprintf(&b, " (%d pages)", lr.Pages)
	}

	if len(lr.Surahs) > 0 {
		fmt.Fprintf(&b, "\nSurahs on this page: %s", strings.Join(lr.Surahs, ", "))
	}

	fmt.Fprintln(w, b.String())
}
