package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/omahapp/mushaf/assets"
	"github.com/omahapp/mushaf/bookmark"
	"github.com/omahapp/mushaf/internal/config"
	"github.com/omahapp/mushaf/internal/logging"
	"github.com/omahapp/mushaf/internal/pathutil"
	"github.com/omahapp/mushaf/internal/ui"
	"github.com/omahapp/mushaf/migration"
	"github.com/omahapp/mushaf/reading"
	"github.com/omahapp/mushaf/stats"
	"github.com/omahapp/mushaf/store"
)

const servicesKey = "services"

// services are the long-lived components shared by every command. They are
// built once per invocation and closed in the After hook.
type services struct {
	cfg       *config.Config
	db        *store.Client
	logger    *slog.Logger
	logCloser io.Closer
	bookmarks *bookmark.Cache
	stats     *stats.Engine
	assets    *assets.Pipeline
	gate      *migration.Gate
}

// loadConfig reads the config file and applies any flag overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	return config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
		config.WithSystemPaths(config.SystemConfig{
			ConfigPath:  configPath,
			DBPath:      pathutil.DBFilePath(),
			LogPath:     pathutil.LogFilePath(),
			PagesDir:    pathutil.PagesDir(),
			ArchivePath: pathutil.ArchivePath(),
		}),
	)
}

// newServices opens the store and wires the services on top of it.
func newServices(cfg *config.Config, logger *slog.Logger, logCloser io.Closer) (*services, error) {
	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return nil, err
	}

	svc := &services{
		cfg:       cfg,
		db:        db,
		logger:    logger,
		logCloser: logCloser,
	}

	svc.bookmarks = bookmark.NewCache(db, logger, nil)
	svc.stats = stats.NewEngine(db, logger, nil)
	svc.assets = assets.New(db, assets.Options{
		Client:      assets.NewHTTPClient(cfg.Download.Timeout),
		Logger:      logger,
		PagesDir:    cfg.System.PagesDir,
		ArchivePath: cfg.System.ArchivePath,
		Sources:     cfg.Download.Sources,
	})
	svc.gate = migration.NewGate(db, svc.assets, logger)

	return svc, nil
}

// tracker returns a reading tracker for a single session.
func (s *services) tracker() *reading.Tracker {
	return reading.NewTracker(s.bookmarks, s.stats, s.logger, reading.Options{
		AfterSessionCmd: s.cfg.Reading.AfterSessionCmd,
		MinSession:      s.cfg.Reading.MinSession,
	})
}

// provisioningRequired runs the migration gate and reports whether the pages
// must be downloaded before reading.
func (s *services) provisioningRequired(ctx context.Context) bool {
	required, err := s.gate.Run(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "migration check failed", slog.Any("error", err))
		return !s.assets.IsDownloaded()
	}

	return required
}

func (s *services) Close() error {
	var err error

	if s.db != nil {
		err = s.db.Close()
	}

	if s.logCloser != nil {
		_ = s.logCloser.Close()
	}

	return err
}

// getServices returns the services for this invocation, building them on
// first use.
func getServices(ctx *cli.Context) (*services, error) {
	if svc, ok := ctx.App.Metadata[servicesKey].(*services); ok {
		return svc, nil
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	logger, closer := logging.New(logging.Options{
		Path:       cfg.System.LogPath,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})

	svc, err := newServices(cfg, logger, closer)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]any)
	}

	ctx.App.Metadata[servicesKey] = svc

	return svc, nil
}
