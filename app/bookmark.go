package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/omahapp/mushaf/bookmark"
)

// parseRange parses a START-END pair such as "294-305".
func parseRange(s string) (start, end int, err error) {
	before, after, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return 0, 0, errInvalidRange.Fmt(s)
	}

	start, err = strconv.Atoi(strings.TrimSpace(before))
	if err != nil {
		return 0, 0, errInvalidRange.Fmt(s)
	}

	end, err = strconv.Atoi(strings.TrimSpace(after))
	if err != nil {
		return 0, 0, errInvalidRange.Fmt(s)
	}

	return start, end, nil
}

// targetFromFlags builds the reading target selected with --pages or --juz.
// ok is false when neither flag is set.
func targetFromFlags(ctx *cli.Context) (target bookmark.Target, ok bool, err error) {
	pages, juz := ctx.String("pages"), ctx.String("juz")

	switch {
	case pages != "" && juz != "":
		return target, false, errConflictingTargets
	case pages != "":
		target.Kind = bookmark.PageTarget
	case juz != "":
		target.Kind = bookmark.JuzTarget
	default:
		return target, false, nil
	}

	target.Start, target.End, err = parseRange(pages + juz)
	if err != nil {
		return target, false, err
	}

	return target, true, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// listBookmarksAction prints the saved bookmarks.
func listBookmarksAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	bookmarks := svc.bookmarks.Bookmarks()

	if ctx.Bool("json") {
		return writeJSON(ctx.App.Writer, bookmarks)
	}

	bookmark.List(ctx.App.Writer, bookmarks)

	return nil
}

// addBookmarkAction saves a new bookmark at --page or at the start of the
// target range.
func addBookmarkAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	target, _, err := targetFromFlags(ctx)
	if err != nil {
		return err
	}

	page := ctx.Int("page")
	if page == 0 && target.Kind == bookmark.NoTarget {
		if lr, ok := svc.bookmarks.LastRead(); ok {
			page = lr.Page
		}
	}

	b, err := bookmark.New(ctx.String("name"), target, page, time.Now())
	if err != nil {
		return err
	}

	svc.bookmarks.Add(b)

	pterm.Success.Printfln("Bookmark %q saved on page %d (%s)", b.Name, b.Page, b.Sura)

	return nil
}

// editBookmarkAction changes the name, page or target of a bookmark.
func editBookmarkAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	id := ctx.Args().First()
	if id == "" {
		return errMissingArg.Fmt("bookmark id")
	}

	b, ok := svc.bookmarks.Bookmark(id)
	if !ok {
		return bookmark.ErrNotFound.Fmt(id)
	}

	name := b.Name
	if ctx.IsSet("name") {
		name = ctx.String("name")
	}

	page := b.Page
	if ctx.IsSet("page") {
		page = ctx.Int("page")
	}

	target, changed, err := targetFromFlags(ctx)
	if err != nil {
		return err
	}

	switch {
	case ctx.Bool("no-target"):
		target = bookmark.Target{}
	case !changed && !ctx.IsSet("page"):
		target = b.Target()
	}

	edited, err := bookmark.Edit(b, name, target, page)
	if err != nil {
		return err
	}

	svc.bookmarks.Update(edited)

	pterm.Success.Printfln("Bookmark %q updated", edited.Name)

	return nil
}

// deleteBookmarkAction removes a bookmark after confirmation.
func deleteBookmarkAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	id := ctx.Args().First()
	if id == "" {
		return errMissingArg.Fmt("bookmark id")
	}

	b, ok := svc.bookmarks.Bookmark(id)
	if !ok {
		return bookmark.ErrNotFound.Fmt(id)
	}

	if !ctx.Bool("yes") {
		bookmark.List(ctx.App.Writer, []bookmark.Bookmark{b})

		confirm(
			ctx,
			"The above bookmark will be deleted permanently. Press ENTER to proceed",
		)
	}

	svc.bookmarks.Delete(id)

	return nil
}

// openBookmarkAction prints where a bookmark opens the reader.
func openBookmarkAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	id := ctx.Args().First()
	if id == "" {
		return errMissingArg.Fmt("bookmark id")
	}

	b, ok := svc.bookmarks.Bookmark(id)
	if !ok {
		return bookmark.ErrNotFound.Fmt(id)
	}

	printPage(ctx, svc, b.AnchorPage(), b.ActiveRow())

	return nil
}

// lastReadAction prints the last-read position.
func lastReadAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	lr, ok := svc.bookmarks.LastRead()
	if !ok {
		return errNoLastRead
	}

	if ctx.Bool("json") {
		return writeJSON(ctx.App.Writer, lr)
	}

	bookmark.ShowLastRead(ctx.App.Writer, lr)

	return nil
}
