package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/omahapp/mushaf/assets"
)

const (
	keyDownloadQuality      = "download.quality"
	keyDownloadFont         = "download.font"
	keyDownloadSources      = "download.sources"
	keyDownloadTimeout      = "download.timeout"
	keyMinSession           = "reading.min_session"
	keyAfterSessionCmd      = "reading.after_session_cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyLogLevel             = "log.level"
	keyLogMaxSize           = "log.max_size_mb"
	keyLogMaxBackups        = "log.max_backups"
	keyLogMaxAge            = "log.max_age_days"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there first if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if c.prompted {
			v.Set(keyDownloadQuality, c.Download.Quality)
			v.Set(keyNotificationsEnabled, c.Notifications.Enabled)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	sources := assets.DefaultSources()

	defaults := make([]map[string]any, len(sources))
	for i, s := range sources {
		defaults[i] = map[string]any{
			"quality": s.Quality,
			"font":    s.Font,
			"url":     s.URL,
			"size":    s.Size,
		}
	}

	v.SetDefault(keyDownloadQuality, assets.QualityMid)
	v.SetDefault(keyDownloadFont, assets.DefaultFont)
	v.SetDefault(keyDownloadSources, defaults)
	v.SetDefault(keyDownloadTimeout, "1m")
	v.SetDefault(keyMinSession, "5s")
	v.SetDefault(keyAfterSessionCmd, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 3)
	v.SetDefault(keyLogMaxAge, 28)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
