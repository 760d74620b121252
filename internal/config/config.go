// Package config loads mushaf settings from the config file and command-line
// flags
package config

import (
	"time"

	"github.com/omahapp/mushaf/assets"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Download      DownloadConfig     `mapstructure:"download"`
		Reading       ReadingConfig      `mapstructure:"reading"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
		System        SystemConfig       `mapstructure:"-"`

		prompted bool
	}

	// DownloadConfig holds the page bundle sources.
	DownloadConfig struct {
		Quality string          `mapstructure:"quality"`
		Font    string          `mapstructure:"font"`
		Sources []assets.Source `mapstructure:"sources"`
		// Timeout bounds connecting and waiting for the server to respond, not
		// the transfer of the bundle.
		Timeout time.Duration `mapstructure:"timeout"`
	}

	// ReadingConfig holds reading session settings.
	ReadingConfig struct {
		AfterSessionCmd string        `mapstructure:"after_session_cmd"`
		MinSession      time.Duration `mapstructure:"min_session"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// LogConfig holds log file settings.
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAgeDays int    `mapstructure:"max_age_days"`
	}

	// SystemConfig holds file locations. They are not read from the config
	// file.
	SystemConfig struct {
		ConfigPath  string
		DBPath      string
		LogPath     string
		PagesDir    string
		ArchivePath string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.0.0"

// New creates a new Config and applies opts in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithSystemPaths returns an Option that records the file locations.
func WithSystemPaths(paths SystemConfig) Option {
	return func(c *Config) error {
		c.System = paths
		return nil
	}
}

// Source returns the configured source for quality and font.
func (c *Config) Source(quality, font string) (assets.Source, error) {
	if font == "" {
		font = assets.DefaultFont
	}

	for _, s := range c.Download.Sources {
		if s.Quality == quality && s.Font == font {
			return s, nil
		}
	}

	return assets.Source{}, assets.ErrUnknownVariant.Fmt(quality, font)
}
