package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a download or reading session",
	}

	qualityFlag = &cli.StringFlag{
		Name:    "quality",
		Aliases: []string{"q"},
		Usage:   "Page image quality: low, mid or high",
	}

	fontFlag = &cli.StringFlag{
		Name:  "font",
		Usage: "Glyph style of the page images (default: madani)",
	}

	afterSessionCmdFlag = &cli.StringFlag{
		Name:    "after-session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each recorded reading session",
	}

	minSessionFlag = &cli.StringFlag{
		Name:  "min-session",
		Usage: "Shortest reading session that is recorded (e.g. 5s, 1m)",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log verbosity: debug, info, warn or error",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Output the data as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Bookmark name",
	}

	pageFlag = &cli.IntFlag{
		Name:    "page",
		Aliases: []string{"p"},
		Usage:   "Page number",
	}

	pagesFlag = &cli.StringFlag{
		Name:  "pages",
		Usage: "Page range to read, as START-END (e.g. 294-305)",
	}

	juzFlag = &cli.StringFlag{
		Name:  "juz",
		Usage: "Juz range to read, as START-END (e.g. 2-3)",
	}

	noTargetFlag = &cli.BoolFlag{
		Name:  "no-target",
		Usage: "Remove the bookmark's reading target",
	}

	bookmarkFlag = &cli.StringFlag{
		Name:    "bookmark",
		Aliases: []string{"b"},
		Usage:   "Read from the bookmark with this id. Its position follows the reader",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Date of the session (e.g. 2024-01-05, yesterday, '3 days ago')",
	}

	monthFlag = &cli.StringFlag{
		Name:  "month",
		Usage: "Month to report on, as YYYY-MM (default: the current month)",
	}

	durationFlag = &cli.IntFlag{
		Name:  "duration",
		Usage: "Session length in minutes",
	}

	startPageFlag = &cli.IntFlag{
		Name:  "start",
		Usage: "First page read",
	}

	endPageFlag = &cli.IntFlag{
		Name:  "end",
		Usage: "Last page read",
	}

	pagesReadFlag = &cli.IntFlag{
		Name:  "pages-read",
		Usage: "Number of pages read (default: the distance between start and end)",
	}

	surahFlag = &cli.StringFlag{
		Name:  "surah",
		Usage: "Surah name (default: the surah on the last page read)",
	}
)
