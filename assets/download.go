package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/omahapp/mushaf/internal/osutil"
)

// markerSuffix names the file next to a partial archive that records where
// it came from, so an interrupted transfer of the same bundle can resume.
const markerSuffix = ".source"

func humanSize(n int64) string {
	if n <= 0 {
		return "unknown"
	}

	return humanize.Bytes(uint64(n))
}

// NewHTTPClient returns a client for fetching page bundles. headerTimeout
// bounds connecting and waiting for the response headers; the body transfer
// itself is only bounded by the download context, since a full bundle on a
// slow link can take far longer than any fixed deadline.
func NewHTTPClient(headerTimeout time.Duration) *http.Client {
	t := http.DefaultTransport.(*http.Transport).Clone()

	t.DialContext = (&net.Dialer{
		Timeout:   headerTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	t.TLSHandshakeTimeout = headerTimeout
	t.ResponseHeaderTimeout = headerTimeout

	return &http.Client{Transport: t}
}

// download fetches src to the archive path, resuming a partial archive of
// the same source when the server supports range requests.
func (p *Pipeline) download(ctx context.Context, src Source, progress func(float64)) error {
	err := os.MkdirAll(filepath.Dir(p.archivePath), osutil.DirPermission)
	if err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	offset, etag := p.partial(src.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, http.NoBody)
	if err != nil {
		return ErrDownloadFailed.Wrap(err)
	}

	if offset > 0 {
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", offset))

		if etag != "" {
			req.Header.Set("If-Range", etag)
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return ErrDownloadFailed.Wrap(err)
	}
	defer resp.Body.Close()

	flags := os.O_CREATE | os.O_WRONLY

	switch {
	case offset > 0 && resp.StatusCode == http.StatusPartialContent:
		flags |= os.O_APPEND

		p.logger.Info("resuming page download", "offset", offset)
	case offset > 0 && resp.StatusCode == http.StatusRequestedRangeNotSatisfiable:
		// the partial archive does not match the remote one
		_, _ = io.Copy(io.Discard, resp.Body)
		p.discardArchive()

		return p.download(ctx, src, progress)
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		offset = 0
		flags |= os.O_TRUNC
	default:
		return ErrDownloadFailed.Wrap(errUnexpectedStatus.Fmt(resp.Status))
	}

	err = p.writeMarker(src.URL, resp.Header.Get("ETag"))
	if err != nil {
		return err
	}

	f, err := os.OpenFile(p.archivePath, flags, osutil.FilePermission)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}

	total := src.Size
	if resp.ContentLength > 0 {
		total = offset + resp.ContentLength
	}

	w := &progressWriter{
		w:       f,
		report:  progress,
		written: offset,
		total:   total,
	}

	_, err = io.Copy(w, resp.Body)
	if err != nil {
		_ = f.Close()
		return ErrDownloadFailed.Wrap(err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}

	progress(1)

	return nil
}

// partial returns the size and entity tag of an earlier partial download of
// url, or zero if there is nothing to resume.
func (p *Pipeline) partial(url string) (int64, string) {
	b, err := os.ReadFile(p.archivePath + markerSuffix)
	if err != nil {
		p.discardArchive()
		return 0, ""
	}

	source, etag, _ := strings.Cut(string(b), "\n")
	if source != url {
		p.discardArchive()
		return 0, ""
	}

	info, err := os.Stat(p.archivePath)
	if err != nil {
		return 0, ""
	}

	return info.Size(), etag
}

func (p *Pipeline) writeMarker(url, etag string) error {
	err := os.WriteFile(
		p.archivePath+markerSuffix,
		[]byte(url+"\n"+etag),
		osutil.FilePermission,
	)
	if err != nil {
		return fmt.Errorf("recording download source: %w", err)
	}

	return nil
}

func (p *Pipeline) discardArchive() {
	for _, path := range []string{p.archivePath, p.archivePath + markerSuffix} {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			p.logger.Warn("removing archive failed", "path", path, "error", err)
		}
	}
}
