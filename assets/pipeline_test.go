package assets_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omahapp/mushaf/assets"
	"github.com/omahapp/mushaf/internal/testutil"
	"github.com/omahapp/mushaf/store"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)

	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)

		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, zw.Close())

	return buf.Bytes()
}

var wrappedPages = map[string]string{
	"mid/":                   "",
	"mid/001.jpg":            "cover",
	"mid/002.jpg":            "fatiha",
	"mid/010.jpg":            "baqarah",
	"__MACOSX/mid/._001.jpg": "resource fork",
}

type fixture struct {
	db       *store.Client
	pipeline *assets.Pipeline
	pagesDir string
	archive  string
}

func newFixture(t *testing.T, url string) *fixture {
	t.Helper()

	return newFixtureWithClient(t, url, nil)
}

func newFixtureWithClient(t *testing.T, url string, client *http.Client) *fixture {
	t.Helper()

	dir := t.TempDir()

	f := &fixture{
		db:       testutil.OpenStore(t),
		pagesDir: filepath.Join(dir, "data", "quran_pages"),
		archive:  filepath.Join(dir, "cache", "quran_pages.zip"),
	}

	f.pipeline = assets.New(f.db, assets.Options{
		Client:      client,
		PagesDir:    f.pagesDir,
		ArchivePath: f.archive,
		Sources: []assets.Source{
			{Quality: assets.QualityMid, Font: assets.DefaultFont, URL: url + "/mid.zip", Size: 1000},
			{Quality: assets.QualityHigh, Font: "indopak", URL: url + "/high-indopak.zip", Size: 2_500_000_000},
		},
	})

	return f
}

type progressLog struct {
	mu     sync.Mutex
	points []float64
	states []assets.State
}

func (p *progressLog) record(fraction float64, state assets.State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.points = append(p.points, fraction)
	p.states = append(p.states, state)
}

func TestUnknownVariantLeavesDirectoryUntouched(t *testing.T) {
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	require.NoError(t, os.MkdirAll(f.pagesDir, 0o755))
	existing := filepath.Join(f.pagesDir, "001.jpg")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))
	require.NoError(t, f.db.Set(store.KeyDownloaded, store.True))

	err := f.pipeline.DownloadAndUnzip(context.Background(), "ultra", "", nil)
	require.ErrorIs(t, err, assets.ErrUnknownVariant)

	assert.FileExists(t, existing)
	assert.True(t, f.pipeline.IsDownloaded())
	assert.Zero(t, hits.Load())
	assert.Equal(t, assets.Idle, f.pipeline.State())
}

func TestFailedExtractionThenRetry(t *testing.T) {
	valid := buildZip(t, wrappedPages)

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte("this is not a zip archive"))
			return
		}

		_, _ = w.Write(valid)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	err := f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", nil)
	require.ErrorIs(t, err, assets.ErrExtractFailed)
	assert.False(t, f.pipeline.IsDownloaded())
	assert.Equal(t, assets.Failed, f.pipeline.State())

	var progress progressLog

	err = f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", progress.record)
	require.NoError(t, err)

	assert.True(t, f.pipeline.IsDownloaded())
	assert.Equal(t, assets.Complete, f.pipeline.State())

	quality, ok := f.pipeline.Quality()
	assert.True(t, ok)
	assert.Equal(t, assets.QualityMid, quality)

	font, ok := f.pipeline.Font()
	assert.True(t, ok)
	assert.Equal(t, assets.DefaultFont, font)

	entries, err := os.ReadDir(f.pagesDir)
	require.NoError(t, err)

	for _, e := range entries {
		assert.False(t, e.IsDir(), "unexpected directory %s", e.Name())
	}

	pages, err := f.pipeline.Pages()
	require.NoError(t, err)
	assert.Equal(t, []string{"001.jpg", "002.jpg", "010.jpg"}, pages)

	assert.NoFileExists(t, f.archive)

	require.NotEmpty(t, progress.points)
	assert.Equal(t, 1.0, progress.points[len(progress.points)-1])
	assert.Equal(t, assets.Complete, progress.states[len(progress.states)-1])
	assert.Contains(t, progress.states, assets.Extracting)
	assert.Contains(t, progress.states, assets.Finalizing)

	for i := 1; i < len(progress.points); i++ {
		assert.GreaterOrEqual(t, progress.points[i], progress.points[i-1])
	}
}

func TestBadStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	err := f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", nil)
	require.ErrorIs(t, err, assets.ErrDownloadFailed)
	assert.Contains(t, err.Error(), "403")
	assert.False(t, f.pipeline.IsDownloaded())
	assert.DirExists(t, f.pagesDir)
}

func TestSlowTransferOutlastsHeaderTimeout(t *testing.T) {
	valid := buildZip(t, wrappedPages)

	const chunks = 8

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(valid)))
		w.WriteHeader(http.StatusOK)

		step := (len(valid) + chunks - 1) / chunks

		for start := 0; start < len(valid); start += step {
			end := min(start+step, len(valid))

			_, _ = w.Write(valid[start:end])
			w.(http.Flusher).Flush()

			time.Sleep(60 * time.Millisecond)
		}
	}))
	defer srv.Close()

	f := newFixtureWithClient(t, srv.URL, assets.NewHTTPClient(200*time.Millisecond))

	started := time.Now()

	err := f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", nil)
	require.NoError(t, err)

	assert.Greater(t, time.Since(started), 200*time.Millisecond)
	assert.True(t, f.pipeline.IsDownloaded())

	pages, err := f.pipeline.Pages()
	require.NoError(t, err)
	assert.Equal(t, []string{"001.jpg", "002.jpg", "010.jpg"}, pages)
}

func TestUnresponsiveServerTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	f := newFixtureWithClient(t, srv.URL, assets.NewHTTPClient(100*time.Millisecond))

	err := f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", nil)
	require.ErrorIs(t, err, assets.ErrDownloadFailed)
	assert.Contains(t, err.Error(), "timeout")
	assert.False(t, f.pipeline.IsDownloaded())
}

func TestDuplicatePageNamesFail(t *testing.T) {
	archive := buildZip(t, map[string]string{
		"mid/001.jpg":   "cover",
		"mid/002.jpg":   "fatiha",
		"extra/001.jpg": "another cover",
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	err := f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", nil)
	require.ErrorIs(t, err, assets.ErrDuplicatePage)
	assert.Contains(t, err.Error(), `"001.jpg"`)

	assert.False(t, f.pipeline.IsDownloaded())
	assert.Equal(t, assets.Failed, f.pipeline.State())
	assert.NoFileExists(t, f.archive)
}

func TestConcurrentDownloadIsRejected(t *testing.T) {
	valid := buildZip(t, wrappedPages)
	entered := make(chan struct{})
	release := make(chan struct{})

	var once sync.Once

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() { close(entered) })
		<-release

		_, _ = w.Write(valid)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	done := make(chan error, 1)

	go func() {
		done <- f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", nil)
	}()

	<-entered

	err := f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", nil)
	require.ErrorIs(t, err, assets.ErrDownloadInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.True(t, f.pipeline.IsDownloaded())
}

func TestCancelledDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := f.pipeline.DownloadAndUnzip(ctx, assets.QualityMid, "", nil)
	require.ErrorIs(t, err, assets.ErrDownloadFailed)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, f.pipeline.IsDownloaded())
}

func TestInterruptedDownloadResumes(t *testing.T) {
	valid := buildZip(t, wrappedPages)
	half := len(valid) / 2

	var (
		calls        atomic.Int32
		resumeHeader atomic.Value
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Content-Length", strconv.Itoa(len(valid)))
			_, _ = w.Write(valid[:half])
			w.(http.Flusher).Flush()

			panic(http.ErrAbortHandler)
		}

		resumeHeader.Store(r.Header.Get("Range"))
		http.ServeContent(w, r, "mid.zip", time.Time{}, bytes.NewReader(valid))
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	err := f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", nil)
	require.ErrorIs(t, err, assets.ErrDownloadFailed)
	assert.FileExists(t, f.archive)

	err = f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", nil)
	require.NoError(t, err)

	rng, _ := resumeHeader.Load().(string)
	assert.True(t, strings.HasPrefix(rng, "bytes="), "expected a range request, got %q", rng)

	pages, err := f.pipeline.Pages()
	require.NoError(t, err)
	assert.Equal(t, []string{"001.jpg", "002.jpg", "010.jpg"}, pages)
}

func TestUnsafeArchiveEntry(t *testing.T) {
	evil := buildZip(t, map[string]string{"../../escape.jpg": "x"})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(evil)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	err := f.pipeline.DownloadAndUnzip(context.Background(), assets.QualityMid, "", nil)
	require.ErrorIs(t, err, assets.ErrExtractFailed)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(filepath.Dir(f.pagesDir)), "escape.jpg"))
	assert.False(t, f.pipeline.IsDownloaded())
}

func TestClearPagesDirectory(t *testing.T) {
	f := newFixture(t, "http://unused.invalid")

	// safe when nothing exists yet
	require.NoError(t, f.pipeline.ClearPagesDirectory())
	assert.DirExists(t, f.pagesDir)

	require.NoError(t, os.WriteFile(filepath.Join(f.pagesDir, "001.jpg"), []byte("x"), 0o644))
	require.NoError(t, f.db.Set(store.KeyQuality, "low"))
	require.NoError(t, f.db.Set(store.KeyDownloaded, store.True))

	require.NoError(t, f.pipeline.ClearPagesDirectory())

	pages, err := f.pipeline.Pages()
	require.NoError(t, err)
	assert.Empty(t, pages)
	assert.False(t, f.pipeline.IsDownloaded())

	_, ok := f.pipeline.Quality()
	assert.False(t, ok)
}

func TestLocalPageURI(t *testing.T) {
	f := newFixture(t, "http://unused.invalid")

	require.NoError(t, os.MkdirAll(f.pagesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.pagesDir, "002.jpg"), []byte("x"), 0o644))

	_, ok := f.pipeline.LocalPageURI("002")
	assert.False(t, ok, "pages are not marked as installed")

	require.NoError(t, f.db.Set(store.KeyDownloaded, store.True))
	require.NoError(t, f.db.Set(store.KeyQuality, "high"))

	uri, ok := f.pipeline.LocalPageURI("002")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(f.pagesDir, "002.jpg")+"?q=high", uri)

	_, ok = f.pipeline.LocalPageURI("003")
	assert.False(t, ok)
}

func TestSizes(t *testing.T) {
	p := assets.New(testutil.OpenStore(t), assets.Options{PagesDir: t.TempDir()})

	type testCase struct {
		Quality string
		Want    string
	}

	for _, tc := range []testCase{
		{assets.QualityLow, "150 MB"},
		{assets.QualityMid, "300 MB"},
		{assets.QualityHigh, "1.0 GB"},
	} {
		got, err := p.DownloadSize(tc.Quality, "")
		require.NoError(t, err)
		assert.Equal(t, tc.Want, got)
	}

	_, err := p.DownloadSize("ultra", "")
	assert.ErrorIs(t, err, assets.ErrUnknownVariant)

	free, err := p.FreeDiskSpace()
	require.NoError(t, err)
	assert.Positive(t, free)
}

func TestHasRoomFor(t *testing.T) {
	f := newFixture(t, "http://unused.invalid")

	ok, err := f.pipeline.HasRoomFor(assets.QualityMid, "")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.pipeline.HasRoomFor(assets.QualityHigh, "")
	assert.ErrorIs(t, err, assets.ErrUnknownVariant, "high only exists with the indopak font here")
}
