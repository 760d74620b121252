// Package migration runs one-off upgrade steps that must happen at most once
// per install
package migration

import (
	"context"
	"log/slog"

	"github.com/omahapp/mushaf/store"
)

// Provisioner is the part of the asset pipeline the gate needs.
type Provisioner interface {
	ClearPagesDirectory() error
	IsDownloaded() bool
}

// Gate forces the v2 page bundles to be downloaded again on the first run
// after upgrading.
type Gate struct {
	db     store.KV
	assets Provisioner
	logger *slog.Logger
}

// NewGate returns a gate that records its flag in db.
func NewGate(db store.KV, assets Provisioner, logger *slog.Logger) *Gate {
	return &Gate{
		db:     db,
		assets: assets,
		logger: logger,
	}
}

// Run reports whether the pages must be (re)downloaded. The first time it
// runs it clears the installed pages and sets the migration flag; after that
// it only checks whether a complete page set is installed.
func (g *Gate) Run(ctx context.Context) (provisioningRequired bool, err error) {
	v, ok, err := g.db.Get(store.KeyMigrationV2)
	if err != nil {
		return false, err
	}

	if ok && v == store.True {
		return !g.assets.IsDownloaded(), nil
	}

	g.logger.InfoContext(ctx, "clearing pages for the v2 page bundles")

	err = g.assets.ClearPagesDirectory()
	if err != nil {
		return false, err
	}

	err = g.db.Set(store.KeyMigrationV2, store.True)
	if err != nil {
		return false, err
	}

	return true, nil
}
