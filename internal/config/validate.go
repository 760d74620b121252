package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/omahapp/mushaf/assets"
)

var (
	minSessionFloor   = 0 * time.Second
	minSessionCeiling = 10 * time.Minute

	minDownloadTimeout = 5 * time.Second
	maxDownloadTimeout = 1 * time.Hour

	logLevels = []string{"debug", "info", "warn", "warning", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateDownload(); err != nil {
		return err
	}

	if err := c.validateReading(); err != nil {
		return err
	}

	return c.validateLog()
}

func (c *Config) validateDownload() error {
	switch c.Download.Quality {
	case assets.QualityLow, assets.QualityMid, assets.QualityHigh:
	default:
		return errInvalidQuality.Fmt(c.Download.Quality)
	}

	if len(c.Download.Sources) == 0 {
		return errNoSources
	}

	for i, s := range c.Download.Sources {
		if strings.TrimSpace(s.Quality) == "" || strings.TrimSpace(s.Font) == "" {
			return errInvalidSource.Fmt(i+1, "quality and font are required")
		}

		u, err := url.Parse(s.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return errInvalidSource.Fmt(i+1, fmt.Sprintf("invalid url %q", s.URL))
		}

		if s.Size < 0 {
			return errInvalidSource.Fmt(i+1, "size cannot be negative")
		}
	}

	if _, err := c.Source(c.Download.Quality, c.Download.Font); err != nil {
		return errUnknownQuality.Fmt(c.Download.Quality, c.Download.Font)
	}

	if c.Download.Timeout < minDownloadTimeout ||
		c.Download.Timeout > maxDownloadTimeout {
		return errInvalidDuration.Fmt(
			"download timeout",
			minDownloadTimeout,
			maxDownloadTimeout,
		)
	}

	return nil
}

func (c *Config) validateReading() error {
	if c.Reading.MinSession < minSessionFloor ||
		c.Reading.MinSession > minSessionCeiling {
		return errInvalidDuration.Fmt(
			"minimum session",
			minSessionFloor,
			minSessionCeiling,
		)
	}

	return nil
}

func (c *Config) validateLog() error {
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if !slices.Contains(logLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Log.MaxSizeMB < 0 {
		return errNegativeLogSetting.Fmt("max_size_mb")
	}

	if c.Log.MaxBackups < 0 {
		return errNegativeLogSetting.Fmt("max_backups")
	}

	if c.Log.MaxAgeDays < 0 {
		return errNegativeLogSetting.Fmt("max_age_days")
	}

	return nil
}
