package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/omahapp/mushaf/internal/apperr"
)

const releaseTagPath = "/releases/tag/"

// latestReleaseURL redirects to the page of the newest release.
var latestReleaseURL = "https://github.com/omahapp/mushaf/releases/latest"

var errUpdateCheck = &apperr.Error{
	Message: "checking for a newer release failed",
}

// latestRelease follows the latest release redirect at url and returns the
// tag it lands on, without any leading "v".
func latestRelease(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		return "", errUpdateCheck.Wrap(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", errUpdateCheck.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errUpdateCheck.Wrap(fmt.Errorf("server responded with %s", resp.Status))
	}

	_, tag, found := strings.Cut(resp.Request.URL.Path, releaseTagPath)
	if !found || tag == "" || strings.Contains(tag, "/") {
		return "", errUpdateCheck.Wrap(
			fmt.Errorf("no release tag in %s", resp.Request.URL),
		)
	}

	return strings.TrimPrefix(tag, "v"), nil
}

// checkForUpdates tells the user whether a release newer than the running
// binary has been published.
func checkForUpdates(ctx context.Context, app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")

	client := &http.Client{Timeout: 10 * time.Second}

	version, err := latestRelease(ctx, client, latestReleaseURL)
	if err != nil {
		spinner.Fail(err.Error())
		return
	}

	if version == strings.TrimPrefix(app.Version, "v") {
		spinner.Success(
			pterm.Sprintf("%s %s is the latest release", app.Name, app.Version),
		)

		return
	}

	spinner.Warning(
		pterm.Sprintf(
			"%s %s is available (you have %s): %s",
			app.Name,
			version,
			app.Version,
			strings.TrimSuffix(latestReleaseURL, "latest")+"tag/v"+version,
		),
	)
}
