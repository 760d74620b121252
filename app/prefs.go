package app

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/omahapp/mushaf/internal/ui"
	"github.com/omahapp/mushaf/store"
)

// pref is a reader preference shared with the mobile app through the store.
type pref struct {
	name    string
	key     string
	boolean bool
}

var prefs = []pref{
	{name: "row-highlighter", key: store.KeyRowHighlighter, boolean: true},
	{name: "dark-mode", key: store.KeyDarkMode, boolean: true},
	{name: "language", key: store.KeyLanguage},
}

func findPref(name string) (pref, error) {
	i := slices.IndexFunc(prefs, func(p pref) bool {
		return p.name == name || p.key == name
	})
	if i < 0 {
		names := make([]string, len(prefs))
		for j := range prefs {
			names[j] = prefs[j].name
		}

		return pref{}, errUnknownPref.Fmt(name, strings.Join(names, ", "))
	}

	return prefs[i], nil
}

// setPref validates and stores value for p.
func setPref(db store.KV, p pref, value string) error {
	if p.boolean {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errInvalidPrefValue.Fmt(p.name, value)
		}

		value = strconv.FormatBool(b)
	}

	return db.Set(p.key, value)
}

// prefsAction lists, prints or sets reader preferences.
func prefsAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	args := ctx.Args().Slice()

	if len(args) == 0 {
		body := [][]string{{"PREFERENCE", "VALUE"}}

		for _, p := range prefs {
			v, _, err := svc.db.Get(p.key)
			if err != nil {
				return err
			}

			body = append(body, []string{p.name, v})
		}

		ui.PrintTable(body, ctx.App.Writer)

		return nil
	}

	p, err := findPref(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		v, _, err := svc.db.Get(p.key)
		if err != nil {
			return err
		}

		fmt.Fprintln(ctx.App.Writer, v)

		return nil
	}

	if err := setPref(svc.db, p, args[1]); err != nil {
		return err
	}

	pterm.Success.Printfln("%s set to %s", p.name, args[1])

	return nil
}
