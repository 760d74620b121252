// Package assets downloads, extracts and tracks the page image bundle
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/maruel/natural"

	"github.com/omahapp/mushaf/internal/osutil"
	"github.com/omahapp/mushaf/store"
)

// PageExt is the file extension of the page images.
const PageExt = ".jpg"

const (
	downloadShare = 0.5
	extractShare  = 0.4

	// macOSMetadataDir is added by the macOS archiver and never holds pages.
	macOSMetadataDir = "__MACOSX"
)

// State is the stage the pipeline is in.
type State int32

const (
	Idle State = iota
	Downloading
	Extracting
	Finalizing
	Complete
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Downloading:
		return "downloading"
	case Extracting:
		return "extracting"
	case Finalizing:
		return "finalizing"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	}

	return fmt.Sprintf("State(%d)", s)
}

// ProgressFunc receives the overall progress, between 0 and 1, and the
// current stage. It is called on the downloading goroutine and must not block.
type ProgressFunc func(fraction float64, state State)

// Options configures a Pipeline.
type Options struct {
	Client      *http.Client
	Logger      *slog.Logger
	PagesDir    string
	ArchivePath string
	Sources     []Source
}

// Pipeline provisions the page images. Only one download runs at a time;
// failures are returned to the caller and never recorded as success.
type Pipeline struct {
	db          store.KV
	client      *http.Client
	logger      *slog.Logger
	pagesDir    string
	archivePath string
	sources     []Source
	state       atomic.Int32
	running     atomic.Bool
}

// New returns a pipeline that records its progress in db.
func New(db store.KV, opts Options) *Pipeline {
	p := &Pipeline{
		db:          db,
		client:      opts.Client,
		logger:      opts.Logger,
		pagesDir:    opts.PagesDir,
		archivePath: opts.ArchivePath,
		sources:     opts.Sources,
	}

	if p.client == nil {
		p.client = http.DefaultClient
	}

	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}

	if len(p.sources) == 0 {
		p.sources = DefaultSources()
	}

	return p
}

// PagesDir returns the directory the pages are extracted to.
func (p *Pipeline) PagesDir() string {
	return p.pagesDir
}

// Sources returns the configured download sources.
func (p *Pipeline) Sources() []Source {
	return append([]Source(nil), p.sources...)
}

// State returns the stage of the current or last download.
func (p *Pipeline) State() State {
	return State(p.state.Load())
}

// ClearPagesDirectory deletes every page image, leaves an empty pages
// directory behind, and forgets the installed variant.
func (p *Pipeline) ClearPagesDirectory() error {
	err := os.RemoveAll(p.pagesDir)
	if err != nil {
		return fmt.Errorf("removing pages directory: %w", err)
	}

	err = os.MkdirAll(p.pagesDir, osutil.DirPermission)
	if err != nil {
		return fmt.Errorf("creating pages directory: %w", err)
	}

	return p.db.Remove(store.KeyQuality, store.KeyFont, store.KeyDownloaded)
}

// DownloadAndUnzip replaces the installed pages with the bundle for quality
// and font. An empty font selects the default font. Progress is reported as
// 0-0.5 while downloading, 0.5-0.9 while extracting, 0.9 while tidying up and
// 1 once the new variant is recorded.
func (p *Pipeline) DownloadAndUnzip(
	ctx context.Context,
	quality, font string,
	onProgress ProgressFunc,
) (err error) {
	src, err := lookup(p.sources, quality, font)
	if err != nil {
		return err
	}

	if !p.running.CompareAndSwap(false, true) {
		return ErrDownloadInProgress
	}
	defer p.running.Store(false)

	if onProgress == nil {
		onProgress = func(float64, State) {}
	}

	report := func(fraction float64, state State) {
		p.state.Store(int32(state))
		onProgress(fraction, state)
	}

	started := time.Now()

	defer func() {
		if err != nil {
			p.state.Store(int32(Failed))
			p.logger.Error(
				"page download failed",
				slog.String("quality", src.Quality),
				slog.String("font", src.Font),
				slog.Any("error", err),
			)
		}
	}()

	err = p.ClearPagesDirectory()
	if err != nil {
		return err
	}

	report(0, Downloading)

	err = p.download(ctx, src, func(f float64) {
		report(f*downloadShare, Downloading)
	})
	if err != nil {
		return err
	}

	report(downloadShare, Extracting)

	err = p.extract(ctx, func(f float64) {
		report(downloadShare+f*extractShare, Extracting)
	})
	if err != nil {
		// an archive that cannot be extracted is not worth resuming
		p.discardArchive()
		return ErrExtractFailed.Wrap(err)
	}

	report(downloadShare+extractShare, Finalizing)

	err = p.flatten()
	if err != nil {
		p.discardArchive()
		return fmt.Errorf("flattening pages directory: %w", err)
	}

	p.discardArchive()

	err = p.db.Set(store.KeyQuality, src.Quality)
	if err != nil {
		return err
	}

	err = p.db.Set(store.KeyFont, src.Font)
	if err != nil {
		return err
	}

	err = p.db.Set(store.KeyDownloaded, store.True)
	if err != nil {
		return err
	}

	report(1, Complete)

	p.logger.Info(
		"pages installed",
		slog.String("quality", src.Quality),
		slog.String("font", src.Font),
		slog.Duration("took", time.Since(started)),
	)

	return nil
}

// IsDownloaded reports whether a complete page set is installed.
func (p *Pipeline) IsDownloaded() bool {
	v, ok := p.get(store.KeyDownloaded)
	return ok && v == store.True
}

// Quality returns the quality of the installed pages.
func (p *Pipeline) Quality() (string, bool) {
	return p.get(store.KeyQuality)
}

// Font returns the font variant of the installed pages.
func (p *Pipeline) Font() (string, bool) {
	return p.get(store.KeyFont)
}

// DownloadSize returns the human readable archive size of a variant.
func (p *Pipeline) DownloadSize(quality, font string) (string, error) {
	src, err := lookup(p.sources, quality, font)
	if err != nil {
		return "", err
	}

	return humanSize(src.Size), nil
}

// FreeDiskSpace returns the bytes available to the user on the volume that
// holds the pages directory.
func (p *Pipeline) FreeDiskSpace() (uint64, error) {
	return freeDiskSpace(existingAncestor(p.pagesDir))
}

// HasRoomFor reports whether the volume can hold both the archive and the
// extracted pages of a variant.
func (p *Pipeline) HasRoomFor(quality, font string) (bool, error) {
	src, err := lookup(p.sources, quality, font)
	if err != nil {
		return false, err
	}

	free, err := p.FreeDiskSpace()
	if err != nil {
		return false, err
	}

	//nolint:gosec // sizes are positive
	return free >= 2*uint64(src.Size), nil
}

// LocalPageURI returns the path of an installed page image with the installed
// quality appended as a cache-busting query. It reports false when the pages
// are not installed or the page is missing.
func (p *Pipeline) LocalPageURI(pageKey string) (string, bool) {
	if !p.IsDownloaded() {
		return "", false
	}

	path := filepath.Join(p.pagesDir, pageKey+PageExt)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}

	quality, _ := p.Quality()

	return path + "?q=" + quality, true
}

// Pages lists the installed page files in natural order.
func (p *Pipeline) Pages() ([]string, error) {
	entries, err := os.ReadDir(p.pagesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}

	sort.Sort(natural.StringSlice(names))

	return names, nil
}

func (p *Pipeline) get(key string) (string, bool) {
	v, ok, err := p.db.Get(key)
	if err != nil {
		p.logger.Error("reading from store failed", slog.String("key", key), slog.Any("error", err))
		return "", false
	}

	return v, ok
}

// flatten moves the files of every wrapper directory in the pages directory
// to the top level and removes the wrappers. Two files with the same name
// are an error rather than one silently replacing the other.
func (p *Pipeline) flatten() error {
	entries, err := os.ReadDir(p.pagesDir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		wrapper := filepath.Join(p.pagesDir, e.Name())

		if e.Name() != macOSMetadataDir {
			err = filepath.WalkDir(wrapper, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}

				if d.IsDir() {
					if d.Name() == macOSMetadataDir {
						return filepath.SkipDir
					}

					return nil
				}

				dst := filepath.Join(p.pagesDir, d.Name())

				_, err = os.Lstat(dst)
				if err == nil {
					return ErrDuplicatePage.Fmt(d.Name())
				}

				if !errors.Is(err, fs.ErrNotExist) {
					return err
				}

				return os.Rename(path, dst)
			})
			if err != nil {
				return err
			}
		}

		err = os.RemoveAll(wrapper)
		if err != nil {
			return err
		}
	}

	return nil
}

// existingAncestor returns dir or its closest parent that exists.
func existingAncestor(dir string) string {
	for {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}

		dir = parent
	}
}

// withinDir reports whether path is root or lies below it.
func withinDir(root, path string) bool {
	return path == root || strings.HasPrefix(path, root+string(os.PathSeparator))
}

type progressWriter struct {
	w       io.Writer
	report  func(float64)
	written int64
	total   int64
}

func (pw *progressWriter) Write(b []byte) (int, error) {
	n, err := pw.w.Write(b)
	pw.written += int64(n)

	if pw.total > 0 {
		pw.report(min(1, float64(pw.written)/float64(pw.total)))
	}

	return n, err
}
