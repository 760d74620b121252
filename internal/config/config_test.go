package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omahapp/mushaf/assets"
	"github.com/omahapp/mushaf/internal/config"
	"github.com/omahapp/mushaf/internal/testutil"
)

func TestDefaultsAreWrittenOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(path))
	require.NoError(t, err)

	assert.FileExists(t, path)

	assert.Equal(t, assets.QualityMid, cfg.Download.Quality)
	assert.Equal(t, assets.DefaultFont, cfg.Download.Font)
	assert.Equal(t, time.Minute, cfg.Download.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Reading.MinSession)
	assert.True(t, cfg.Notifications.Enabled)
	assert.True(t, cfg.Display.DarkTheme)
	assert.Equal(t, "info", cfg.Log.Level)

	if diff := cmp.Diff(assets.DefaultSources(), cfg.Download.Sources); diff != "" {
		t.Errorf("default sources mismatch (-want +got):\n%s", diff)
	}

	reread, err := config.New(config.WithViperConfig(path))
	require.NoError(t, err)

	if diff := cmp.Diff(cfg, reread, cmp.AllowUnexported(config.Config{})); diff != "" {
		t.Errorf("config changed after reload (-first +second):\n%s", diff)
	}
}

func TestReadModifiedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, testutil.CopyFile(filepath.Join("testdata", "modified.yml"), path))

	cfg, err := config.New(config.WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, assets.QualityHigh, cfg.Download.Quality)
	assert.Equal(t, 2*time.Minute, cfg.Download.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Reading.MinSession)
	assert.Equal(t, `notify-send "Session saved"`, cfg.Reading.AfterSessionCmd)
	assert.False(t, cfg.Notifications.Enabled)
	assert.False(t, cfg.Display.DarkTheme)
	assert.Equal(t, config.LogConfig{
		Level:      "debug",
		MaxSizeMB:  10,
		MaxBackups: 1,
		MaxAgeDays: 7,
	}, cfg.Log)

	want := []assets.Source{
		{
			Quality: assets.QualityHigh,
			Font:    assets.DefaultFont,
			URL:     "https://mirror.example.org/pages/high.zip",
			Size:    1_000_000_000,
		},
		{
			Quality: assets.QualityLow,
			Font:    "indopak",
			URL:     "https://mirror.example.org/pages/indopak-low.zip",
			Size:    120_000_000,
		},
	}

	if diff := cmp.Diff(want, cfg.Download.Sources); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}

	src, err := cfg.Source(assets.QualityLow, "indopak")
	require.NoError(t, err)
	assert.Equal(t, want[1], src)

	_, err = cfg.Source(assets.QualityMid, "")
	assert.ErrorIs(t, err, assets.ErrUnknownVariant)
}

func TestInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown quality",
			yaml: "download:\n  quality: ultra\n",
		},
		{
			name: "quality without a source",
			yaml: "download:\n  font: indopak\n",
		},
		{
			name: "bad log level",
			yaml: "log:\n  level: loud\n",
		},
		{
			name: "minimum session too long",
			yaml: "reading:\n  min_session: 1h\n",
		},
		{
			name: "source without url scheme",
			yaml: "download:\n  sources:\n    - quality: mid\n      font: madani\n      url: example.org/mid.zip\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))

			_, err := config.New(config.WithViperConfig(path))
			assert.Error(t, err)
		})
	}
}

func TestSystemPaths(t *testing.T) {
	paths := config.SystemConfig{
		ConfigPath: "/tmp/mushaf/config.yml",
		DBPath:     "/tmp/mushaf/mushaf.db",
		PagesDir:   "/tmp/mushaf/pages",
	}

	cfg, err := config.New(
		config.WithViperConfig(filepath.Join(t.TempDir(), "config.yml")),
		config.WithSystemPaths(paths),
	)
	require.NoError(t, err)

	assert.Equal(t, paths, cfg.System)
}
