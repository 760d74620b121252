// Package app wires the mushaf services into the command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/omahapp/mushaf/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func bookmarksCommand() *cli.Command {
	return &cli.Command{
		Name:    "bookmarks",
		Aliases: []string{"bm"},
		Usage:   "Manage saved bookmarks and reading targets",
		Action:  listBookmarksAction,
		Flags:   []cli.Flag{jsonFlag},
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all bookmarks",
				Flags:  []cli.Flag{jsonFlag},
				Action: listBookmarksAction,
			},
			{
				Name:   "add",
				Usage:  "Save a bookmark at a page or for a page or juz range",
				Flags:  []cli.Flag{nameFlag, pageFlag, pagesFlag, juzFlag},
				Action: addBookmarkAction,
			},
			{
				Name:      "edit",
				Usage:     "Rename a bookmark or change its page or target",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					nameFlag,
					pageFlag,
					pagesFlag,
					juzFlag,
					noTargetFlag,
				},
				Action: editBookmarkAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a bookmark",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteBookmarkAction,
			},
			{
				Name:      "open",
				Usage:     "Show the page a bookmark opens on",
				ArgsUsage: "<id>",
				Action:    openBookmarkAction,
			},
		},
	}
}

func sessionsCommand() *cli.Command {
	editFlags := []cli.Flag{
		durationFlag,
		startPageFlag,
		endPageFlag,
		pagesReadFlag,
		surahFlag,
	}

	return &cli.Command{
		Name:   "sessions",
		Usage:  "Manage recorded reading sessions",
		Action: listSessionsAction,
		Flags:  []cli.Flag{dateFlag, jsonFlag},
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List reading sessions, most recent first",
				Flags:  []cli.Flag{dateFlag, jsonFlag},
				Action: listSessionsAction,
			},
			{
				Name:   "add",
				Usage:  "Record a session read away from mushaf",
				Flags:  append([]cli.Flag{dateFlag}, editFlags...),
				Action: addSessionAction,
			},
			{
				Name:      "edit",
				Usage:     "Change the duration, pages or surah of a session",
				ArgsUsage: "<id>",
				Flags:     editFlags,
				Action:    editSessionAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a session",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteSessionAction,
			},
		},
	}
}

// Get retrieves the mushaf app instance.
func Get() *cli.App {
	mushafApp := &cli.App{
		Name: "mushaf",
		Usage: `
		Mushaf keeps your place in the Quran from the command-line. It tracks 
		bookmarks and reading targets, records reading sessions and streaks, 
		and manages the offline page images.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			bookmarksCommand(),
			{
				Name:   "last-read",
				Usage:  "Print the last-read position",
				Flags:  []cli.Flag{jsonFlag},
				Action: lastReadAction,
			},
			{
				Name:   "read",
				Usage:  "Start a reading session",
				Flags:  []cli.Flag{bookmarkFlag, pageFlag},
				Action: readAction,
			},
			{
				Name:   "stats",
				Usage:  "Show reading statistics for a month",
				Flags:  []cli.Flag{monthFlag, jsonFlag},
				Action: statsAction,
			},
			sessionsCommand(),
			{
				Name:   "download",
				Usage:  "Download the Quran page images",
				Flags:  []cli.Flag{qualityFlag, fontFlag, yesFlag},
				Action: downloadAction,
			},
			{
				Name:   "clear-pages",
				Usage:  "Delete the downloaded page images",
				Flags:  []cli.Flag{yesFlag},
				Action: clearPagesAction,
			},
			{
				Name:   "status",
				Usage:  "Print the state of the downloaded pages",
				Action: statusAction,
			},
			{
				Name:      "prefs",
				Usage:     "List, print or set reader preferences",
				ArgsUsage: "[name] [value]",
				Action:    prefsAction,
			},
			{
				Name:      "export",
				Usage:     "Export all stored data as JSON",
				ArgsUsage: "[file]",
				Action:    exportAction,
			},
			{
				Name:      "import",
				Usage:     "Import data exported by mushaf or the mobile app",
				ArgsUsage: "<file>",
				Action:    importAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			qualityFlag,
			fontFlag,
			afterSessionCmdFlag,
			minSessionFlag,
			disableNotificationFlag,
			logLevelFlag,
			noColorFlag,
		},
		Action: lastReadAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return mushafApp
}
