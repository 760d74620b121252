package app

import (
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/omahapp/mushaf/internal/osutil"
)

// exportAction writes every stored value as JSON to the given file, or to
// standard output.
func exportAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	var w io.Writer = ctx.App.Writer

	if path := ctx.Args().First(); path != "" {
		f, err := os.OpenFile(
			path,
			os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
			osutil.FilePermission,
		)
		if err != nil {
			return err
		}

		defer f.Close()

		w = f
	}

	return svc.db.WriteSnapshot(w)
}

// importAction loads a snapshot produced by export, or by the mobile app,
// into the store.
func importAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	path := ctx.Args().First()
	if path == "" {
		return errMissingArg.Fmt("snapshot file")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	n, err := svc.db.ReadSnapshot(f)
	if err != nil {
		return err
	}

	svc.bookmarks.Refresh()
	svc.stats.Refresh()

	pterm.Success.Printfln("Imported %d keys from %s", n, path)

	return nil
}
