// Package reading turns page visits in the reader into last-read updates,
// bookmark progress and reading statistics
package reading

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/omahapp/mushaf/bookmark"
	"github.com/omahapp/mushaf/internal/quran"
	"github.com/omahapp/mushaf/internal/timeutil"
	"github.com/omahapp/mushaf/stats"
)

// DefaultMinSession is the shortest engagement that is recorded.
const DefaultMinSession = 5 * time.Second

// Options configures a Tracker.
type Options struct {
	Clock timeutil.Clock
	// AfterSessionCmd runs after each recorded session. The session details
	// are passed in MUSHAF_* environment variables.
	AfterSessionCmd string
	MinSession      time.Duration
}

// Result describes a recorded session.
type Result struct {
	LastRead bookmark.LastRead
	Session  stats.Session
	// BookmarkUpdated is set when the session advanced an open bookmark.
	BookmarkUpdated bool
}

// Tracker follows a single reading engagement from the first page visited to
// the moment the reader is left.
type Tracker struct {
	start      time.Time
	cache      *bookmark.Cache
	engine     *stats.Engine
	logger     *slog.Logger
	now        timeutil.Clock
	bookmarkID string
	cmd        string
	min        time.Duration
	startPage  int
	page       int
	row        int
	mu         sync.Mutex
	started    bool
}

// NewTracker returns a tracker that records into cache and engine.
func NewTracker(
	cache *bookmark.Cache,
	engine *stats.Engine,
	logger *slog.Logger,
	opts Options,
) *Tracker {
	t := &Tracker{
		cache:  cache,
		engine: engine,
		logger: logger,
		now:    opts.Clock,
		cmd:    opts.AfterSessionCmd,
		min:    opts.MinSession,
	}

	if t.now == nil {
		t.now = time.Now
	}

	if t.min <= 0 {
		t.min = DefaultMinSession
	}

	return t
}

// Open marks the bookmark the reader was opened from. Its saved position
// follows the reader when the session is recorded.
func (t *Tracker) Open(bookmarkID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.bookmarkID = bookmarkID
}

// Visit records that page is on screen with row highlighted. The first visit
// starts the session.
func (t *Tracker) Visit(page, row int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		t.started = true
		t.start = t.now()
		t.startPage = page
	}

	t.page = page
	t.row = row
}

// Page returns the page currently on screen.
func (t *Tracker) Page() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.page
}

// Elapsed returns the time since the session started.
func (t *Tracker) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return 0
	}

	return t.now().Sub(t.start)
}

// Finish ends the session. Sessions shorter than the minimum are dropped and
// leave the last-read position alone; ok reports whether anything was
// recorded. The tracker can be reused afterwards.
func (t *Tracker) Finish(ctx context.Context) (res Result, ok bool) {
	t.mu.Lock()

	if !t.started {
		t.mu.Unlock()
		return Result{}, false
	}

	now := t.now()
	elapsed := now.Sub(t.start)
	startPage, endPage, row, bookmarkID := t.startPage, t.page, t.row, t.bookmarkID
	t.started = false
	t.mu.Unlock()

	if elapsed < t.min {
		t.logger.Debug("session too short to record", slog.Duration("elapsed", elapsed))
		return Result{}, false
	}

	minutes := Minutes(elapsed)
	pages := stats.PagesBetween(startPage, endPage)
	surah := quran.SurahName(endPage)
	date := timeutil.DisplayDate(now)
	clock := timeutil.DisplayClock(now)

	res.LastRead = bookmark.LastRead{
		Sura:            surah,
		Page:            endPage,
		Date:            date,
		Time:            clock,
		Timestamp:       now.UnixMilli(),
		Duration:        fmt.Sprintf("%d minutes", minutes),
		DurationMinutes: minutes,
		Pages:           pages,
		Row:             &row,
		Surahs:          quran.SurahNamesOnPage(endPage),
	}

	t.cache.UpdateLastRead(res.LastRead)

	if bookmarkID != "" {
		res.BookmarkUpdated = t.cache.UpdatePage(bookmarkID, endPage, row, surah, date, clock)
	}

	res.Session = t.engine.LogSession(stats.NewSession{
		Timestamp:       now.UnixMilli(),
		DurationMinutes: minutes,
		PagesRead:       pages,
		StartPage:       startPage,
		EndPage:         endPage,
		Surah:           surah,
	})

	t.logger.Info(
		"reading session recorded",
		slog.String("id", res.Session.ID),
		slog.Int("minutes", minutes),
		slog.Int("pages", pages),
		slog.Int("end_page", endPage),
	)

	if err := t.runAfterSessionCmd(ctx, res.Session); err != nil {
		t.logger.Error("after-session command failed", slog.Any("error", err))
	}

	return res, true
}

// runAfterSessionCmd executes the configured command.
func (t *Tracker) runAfterSessionCmd(ctx context.Context, sess stats.Session) error {
	if t.cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(t.cmd)
	if err != nil {
		return fmt.Errorf("unable to parse after_session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	//nolint:gosec // the command comes from the user's own config
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(),
		"MUSHAF_SESSION_ID="+sess.ID,
		"MUSHAF_SESSION_MINUTES="+strconv.Itoa(sess.DurationMinutes),
		"MUSHAF_SESSION_PAGES="+strconv.Itoa(sess.PagesRead),
		"MUSHAF_SESSION_END_PAGE="+strconv.Itoa(sess.EndPage),
		"MUSHAF_SESSION_SURAH="+sess.Surah,
	)

	return cmd.Run()
}

// Minutes rounds d to whole minutes with a floor of one.
func Minutes(d time.Duration) int {
	return max(1, int(math.Round(d.Minutes())))
}
