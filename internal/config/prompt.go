package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/omahapp/mushaf/assets"
)

const asciiLogo = `
███╗   ███╗██╗   ██╗███████╗██╗  ██╗ █████╗ ███████╗
████╗ ████║██║   ██║██╔════╝██║  ██║██╔══██╗██╔════╝
██╔████╔██║██║   ██║███████╗███████║███████║█████╗
██║╚██╔╝██║██║   ██║╚════██║██╔══██║██╔══██║██╔══╝
██║ ╚═╝ ██║╚██████╔╝███████║██║  ██║██║  ██║██║
╚═╝     ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Quality       string
	Notifications bool
}

// WithPromptConfig returns an Option that asks for the preferred page quality
// when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		c.Download.Quality = opts.Quality
		c.Notifications.Enabled = opts.Notifications
		c.prompted = true

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{Notifications: true}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Mushaf for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'mushaf edit-config' to change any settings.`, " ").
		Render()

	quality, err := SelectQuality(assets.DefaultSources(), assets.QualityMid)
	if err != nil {
		return opts, err
	}

	opts.Quality = quality

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification when a download completes?").
				Value(&opts.Notifications),
		),
	)

	if err := form.Run(); err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// SelectQuality asks the user to pick one of the available page qualities.
// The option matching current is preselected.
func SelectQuality(sources []assets.Source, current string) (string, error) {
	var quality string

	options := make([]huh.Option[string], 0, len(sources))
	seen := make(map[string]bool)

	for _, s := range sources {
		if seen[s.Quality] {
			continue
		}

		seen[s.Quality] = true

		options = append(
			options,
			huh.NewOption(s.String(), s.Quality).Selected(s.Quality == current),
		)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Page image quality").
				Description("Higher quality pages take more disk space").
				Options(options...).
				Value(&quality),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("form interaction failed: %w", err)
	}

	return quality, nil
}
