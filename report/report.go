// Package report prints user-facing errors and exits
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/omahapp/mushaf/internal/osutil"
)

// Error prints err without exiting.
func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a failure status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
