package app

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/omahapp/mushaf/internal/osutil"
	"github.com/omahapp/mushaf/internal/pathutil"
)

const (
	envUpdateNotifier = "MUSHAF_UPDATE_NOTIFIER"
	envNoColor        = "NO_COLOR"
	envMushafNoColor  = "MUSHAF_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// confirm prints msg and waits for the user to press ENTER.
func confirm(ctx *cli.Context, msg string) {
	fmt.Fprint(ctx.App.Writer, pterm.Warning.Sprint(msg))

	reader := bufio.NewReader(ctx.App.Reader)

	_, _ = reader.ReadString('\n')
}

// editConfigAction handles the edit-config command which opens the mushaf
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// loading the config writes the defaults on first run
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, svc.cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/omahapp/mushaf/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.Context, c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if MUSHAF_NO_COLOR is set
	if _, exists := os.LookupEnv(envMushafNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	svc, ok := ctx.App.Metadata[servicesKey].(*services)
	if !ok {
		return nil
	}

	svc.logger.InfoContext(ctx.Context, "exiting mushaf")

	delete(ctx.App.Metadata, servicesKey)

	return svc.Close()
}
