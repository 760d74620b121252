package app

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/omahapp/mushaf/assets"
	"github.com/omahapp/mushaf/internal/config"
	"github.com/omahapp/mushaf/internal/ui"
)

// progressBar adapts a pterm progress bar to the pipeline's progress
// callback.
type progressBar struct {
	bar     *pterm.ProgressbarPrinter
	percent int
	state   assets.State
}

func newProgressBar() (*progressBar, error) {
	bar, err := pterm.DefaultProgressbar.
		WithTotal(100).
		WithTitle(assets.Downloading.String()).
		Start()
	if err != nil {
		return nil, err
	}

	return &progressBar{bar: bar, state: assets.Downloading}, nil
}

func (p *progressBar) update(fraction float64, state assets.State) {
	if state != p.state {
		p.state = state
		p.bar.UpdateTitle(state.String())
	}

	percent := int(fraction * 100)
	if percent > p.percent {
		p.bar.Add(percent - p.percent)
		p.percent = percent
	}
}

func (p *progressBar) stop() {
	_, _ = p.bar.Stop()
}

// downloadAction replaces the installed pages with the selected variant.
func downloadAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	svc.provisioningRequired(ctx.Context)

	quality := svc.cfg.Download.Quality
	font := svc.cfg.Download.Font

	if !ctx.IsSet("quality") && !ctx.Bool("yes") {
		quality, err = config.SelectQuality(svc.assets.Sources(), quality)
		if err != nil {
			return err
		}
	}

	size, err := svc.assets.DownloadSize(quality, font)
	if err != nil {
		return err
	}

	roomy, err := svc.assets.HasRoomFor(quality, font)
	if err != nil {
		return err
	}

	if !roomy {
		free, _ := svc.assets.FreeDiskSpace()
		return errNotEnoughSpace.Fmt(size, humanize.Bytes(free))
	}

	pterm.Info.Printfln("Downloading %s quality pages (%s)", quality, size)

	bar, err := newProgressBar()
	if err != nil {
		return err
	}

	err = svc.assets.DownloadAndUnzip(ctx.Context, quality, font, bar.update)

	bar.stop()

	if err != nil {
		return err
	}

	pterm.Success.Printfln("Pages installed in %s", svc.assets.PagesDir())

	svc.notify("Quran pages ready", fmt.Sprintf("%s quality pages installed", quality))

	return nil
}

// clearPagesAction deletes the installed pages.
func clearPagesAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		confirm(
			ctx,
			fmt.Sprintf(
				"All pages in %s will be deleted. Press ENTER to proceed",
				svc.assets.PagesDir(),
			),
		)
	}

	return svc.assets.ClearPagesDirectory()
}

// statusAction prints the state of the installed pages.
func statusAction(ctx *cli.Context) error {
	svc, err := getServices(ctx)
	if err != nil {
		return err
	}

	required := svc.provisioningRequired(ctx.Context)

	quality, _ := svc.assets.Quality()
	font, _ := svc.assets.Font()

	pages, err := svc.assets.Pages()
	if err != nil {
		return err
	}

	free := "unknown"
	if n, err := svc.assets.FreeDiskSpace(); err == nil {
		free = humanize.Bytes(n)
	}

	body := [][]string{
		{"SETTING", "VALUE"},
		{"Pages installed", ui.YesNo(!required)},
		{"Quality", quality},
		{"Font", font},
		{"Page files", strconv.Itoa(len(pages))},
		{"Pages directory", svc.assets.PagesDir()},
		{"Free disk space", free},
	}

	ui.PrintTable(body, ctx.App.Writer)

	sources := [][]string{{"AVAILABLE", "SIZE", "URL"}}
	for _, s := range svc.assets.Sources() {
		sources = append(sources, []string{
			s.Quality + " / " + s.Font,
			humanize.Bytes(uint64(s.Size)),
			s.URL,
		})
	}

	ui.PrintTable(sources, ctx.App.Writer)

	return nil
}
