package config

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Quality         string
	Font            string
	AfterSessionCmd string
	MinSession      string
	LogLevel        string
	DisableNotify   bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Quality:         ctx.String("quality"),
			Font:            ctx.String("font"),
			AfterSessionCmd: ctx.String("after-session-cmd"),
			MinSession:      ctx.String("min-session"),
			LogLevel:        ctx.String("log-level"),
			DisableNotify:   ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Quality != "" {
		c.Download.Quality = opts.Quality
	}

	if opts.Font != "" {
		c.Download.Font = opts.Font
	}

	if opts.AfterSessionCmd != "" {
		c.Reading.AfterSessionCmd = opts.AfterSessionCmd
	}

	if opts.MinSession != "" {
		dur, err := time.ParseDuration(opts.MinSession)
		if err != nil {
			return fmt.Errorf("applying CLI options: %w", errInvalidCLIDuration.Fmt("minimum session", err))
		}

		c.Reading.MinSession = dur
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	return nil
}
