package stats

import (
	"encoding/json"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/omahapp/mushaf/internal/notify"
	"github.com/omahapp/mushaf/internal/quran"
	"github.com/omahapp/mushaf/internal/timeutil"
	"github.com/omahapp/mushaf/store"
)

const idSuffixLength = 6

// Session is one completed reading engagement.
type Session struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Surah           string `json:"surah"`
	Timestamp       int64  `json:"timestamp"`
	DurationMinutes int    `json:"durationMinutes"`
	PagesRead       int    `json:"pagesRead"`
	StartPage       int    `json:"startPage"`
	EndPage         int    `json:"endPage"`
}

// NewSession is a session as reported by the reader, before it is assigned an
// id and date.
type NewSession struct {
	Surah           string
	Timestamp       int64
	DurationMinutes int
	PagesRead       int
	StartPage       int
	EndPage         int
}

// ManualSession is a historical session entered by the user.
type ManualSession struct {
	Surah           string
	DurationMinutes int
	StartPage       int
	EndPage         int
}

// SessionUpdate lists the fields of a session that may be edited. Nil fields
// are left as they are. The timestamp is not editable, so a session never
// moves to another day.
type SessionUpdate struct {
	Surah           *string
	DurationMinutes *int
	PagesRead       *int
	StartPage       *int
	EndPage         *int
}

// DailyStats aggregates the sessions of one calendar day.
type DailyStats struct {
	Date         string `json:"date"`
	TotalMinutes int    `json:"totalMinutes"`
	TotalPages   int    `json:"totalPages"`
	SessionCount int    `json:"sessionCount"`
}

// MonthData is the per-day breakdown of one calendar month.
type MonthData struct {
	DailyStats    map[string]DailyStats
	Year          int
	Month         time.Month
	TotalMinutes  int
	TotalPages    int
	TotalSessions int
	ActiveDays    int
}

// Summary holds today's totals, all-time totals and streaks.
type Summary struct {
	TodayMinutes  int
	TodayPages    int
	TodaySessions int
	CurrentStreak int
	LongestStreak int
	TotalMinutes  int
	TotalPages    int
	TotalSessions int
	TotalDaysRead int
}

type ledger struct {
	DailyStats map[string]DailyStats `json:"dailyStats"`
	Sessions   []Session             `json:"sessions"`
}

// Engine owns the reading session ledger and its daily aggregates. Like the
// bookmark cache, it mutates memory, notifies subscribers and then persists;
// store failures are logged and never returned.
type Engine struct {
	db        store.KV
	logger    *slog.Logger
	now       timeutil.Clock
	listeners notify.Registry
	data      ledger
	mu        sync.Mutex
	persistMu sync.Mutex
	loaded    bool
}

// NewEngine returns an engine backed by db. clock decides what "today" is.
func NewEngine(db store.KV, logger *slog.Logger, clock timeutil.Clock) *Engine {
	if clock == nil {
		clock = time.Now
	}

	return &Engine{
		db:     db,
		logger: logger,
		now:    clock,
	}
}

// Subscribe registers fn to run after every change to the ledger.
func (e *Engine) Subscribe(fn notify.Listener) (unsubscribe func()) {
	return e.listeners.Subscribe(fn)
}

// LogSession appends a session recorded by the reader and returns it with its
// id and date assigned. A session lasts at least a minute and never reads a
// negative number of pages.
func (e *Engine) LogSession(s NewSession) Session {
	sess := Session{
		ID:              sessionID(s.Timestamp),
		Date:            timeutil.DateKeyFromMillis(s.Timestamp),
		Surah:           s.Surah,
		Timestamp:       s.Timestamp,
		DurationMinutes: max(s.DurationMinutes, 1),
		PagesRead:       max(s.PagesRead, 0),
		StartPage:       s.StartPage,
		EndPage:         s.EndPage,
	}

	e.mu.Lock()
	e.ensureLoaded()

	e.data.Sessions = append(e.data.Sessions, sess)

	day := e.data.DailyStats[sess.Date]
	day.Date = sess.Date
	day.TotalMinutes += sess.DurationMinutes
	day.TotalPages += sess.PagesRead
	day.SessionCount++
	e.data.DailyStats[sess.Date] = day
	e.mu.Unlock()

	e.listeners.Notify()
	e.persist()

	return sess
}

// AddManualSession records a session on date (YYYY-MM-DD). The session is
// timestamped at local noon and its page count derived from its page range.
func (e *Engine) AddManualSession(date string, m ManualSession) (Session, error) {
	noon, err := timeutil.Midday(date)
	if err != nil {
		return Session{}, ErrInvalidDate.Fmt(date)
	}

	if m.DurationMinutes < 1 {
		return Session{}, ErrInvalidDuration.Fmt(m.DurationMinutes)
	}

	if !quran.ValidPage(m.StartPage) || !quran.ValidPage(m.EndPage) {
		return Session{}, ErrInvalidPages.Fmt(m.StartPage, m.EndPage)
	}

	surah := m.Surah
	if surah == "" {
		surah = quran.SurahName(m.EndPage)
	}

	ts := noon.UnixMilli()

	sess := Session{
		ID:              sessionID(ts),
		Date:            timeutil.DateKey(noon),
		Surah:           surah,
		Timestamp:       ts,
		DurationMinutes: m.DurationMinutes,
		PagesRead:       PagesBetween(m.StartPage, m.EndPage),
		StartPage:       m.StartPage,
		EndPage:         m.EndPage,
	}

	e.mu.Lock()
	e.ensureLoaded()
	e.data.Sessions = append(e.data.Sessions, sess)
	e.recalculate(sess.Date)
	e.mu.Unlock()

	e.listeners.Notify()
	e.persist()

	return sess, nil
}

// UpdateSession edits the session with the given id. It reports false if
// there is no such session.
func (e *Engine) UpdateSession(id string, u SessionUpdate) (bool, error) {
	if u.DurationMinutes != nil && *u.DurationMinutes < 1 {
		return false, ErrInvalidDuration.Fmt(*u.DurationMinutes)
	}

	e.mu.Lock()
	e.ensureLoaded()

	i := e.indexOf(id)
	if i < 0 {
		e.mu.Unlock()
		return false, nil
	}

	sess := &e.data.Sessions[i]
	pagesChanged := u.StartPage != nil || u.EndPage != nil

	if u.Surah != nil {
		sess.Surah = *u.Surah
	}

	if u.DurationMinutes != nil {
		sess.DurationMinutes = *u.DurationMinutes
	}

	if u.StartPage != nil {
		sess.StartPage = *u.StartPage
	}

	if u.EndPage != nil {
		sess.EndPage = *u.EndPage
	}

	switch {
	case u.PagesRead != nil:
		sess.PagesRead = *u.PagesRead
	case pagesChanged:
		sess.PagesRead = PagesBetween(sess.StartPage, sess.EndPage)
	}

	e.recalculate(sess.Date)
	e.mu.Unlock()

	e.listeners.Notify()
	e.persist()

	return true, nil
}

// DeleteSession removes the session with the given id. It reports false if
// there is no such session.
func (e *Engine) DeleteSession(id string) bool {
	e.mu.Lock()
	e.ensureLoaded()

	i := e.indexOf(id)
	if i < 0 {
		e.mu.Unlock()
		return false
	}

	date := e.data.Sessions[i].Date
	e.data.Sessions = slices.Delete(e.data.Sessions, i, i+1)
	e.recalculate(date)
	e.mu.Unlock()

	e.listeners.Notify()
	e.persist()

	return true
}

// Session returns the session with the given id.
func (e *Engine) Session(id string) (Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureLoaded()

	i := e.indexOf(id)
	if i < 0 {
		return Session{}, false
	}

	return e.data.Sessions[i], true
}

// Sessions returns every session, most recent first.
func (e *Engine) Sessions() []Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureLoaded()

	out := slices.Clone(e.data.Sessions)
	sortRecentFirst(out)

	return out
}

// SessionsForDate returns the sessions recorded on date, most recent first.
func (e *Engine) SessionsForDate(date string) []Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureLoaded()

	var out []Session

	for i := range e.data.Sessions {
		if e.data.Sessions[i].Date == date {
			out = append(out, e.data.Sessions[i])
		}
	}

	sortRecentFirst(out)

	return out
}

// MonthData returns the days of the given month on which at least one
// session was recorded, with month totals.
func (e *Engine) MonthData(year int, month time.Month) MonthData {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureLoaded()

	md := MonthData{
		Year:       year,
		Month:      month,
		DailyStats: make(map[string]DailyStats),
	}

	days := timeutil.DaysIn(year, month)

	for day := 1; day <= days; day++ {
		key := timeutil.DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))

		stats, ok := e.data.DailyStats[key]
		if !ok || stats.SessionCount == 0 {
			continue
		}

		md.DailyStats[key] = stats
		md.TotalMinutes += stats.TotalMinutes
		md.TotalPages += stats.TotalPages
		md.TotalSessions += stats.SessionCount
		md.ActiveDays++
	}

	return md
}

// Summary returns today's totals, all-time totals and reading streaks.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureLoaded()

	now := e.now()
	today := e.data.DailyStats[timeutil.DateKey(now)]

	s := Summary{
		TodayMinutes:  today.TotalMinutes,
		TodayPages:    today.TotalPages,
		TodaySessions: today.SessionCount,
	}

	for _, day := range e.data.DailyStats {
		s.TotalMinutes += day.TotalMinutes
		s.TotalPages += day.TotalPages
		s.TotalSessions += day.SessionCount

		if day.SessionCount > 0 {
			s.TotalDaysRead++
		}
	}

	s.CurrentStreak, s.LongestStreak = streaks(e.data.DailyStats, now)

	return s
}

// Refresh discards the in-memory ledger and reloads it from the store.
func (e *Engine) Refresh() {
	e.mu.Lock()
	e.load()
	e.mu.Unlock()

	e.listeners.Notify()
}

// PagesBetween is the number of pages read moving from start to end.
func PagesBetween(start, end int) int {
	if end < start {
		return start - end
	}

	return end - start
}

func (e *Engine) indexOf(id string) int {
	return slices.IndexFunc(e.data.Sessions, func(s Session) bool {
		return s.ID == id
	})
}

// recalculate rebuilds the aggregate for date from the ledger. It must be
// called with mu held.
func (e *Engine) recalculate(date string) {
	day := DailyStats{Date: date}

	for i := range e.data.Sessions {
		s := &e.data.Sessions[i]
		if s.Date != date {
			continue
		}

		day.TotalMinutes += s.DurationMinutes
		day.TotalPages += s.PagesRead
		day.SessionCount++
	}

	if day.SessionCount == 0 {
		delete(e.data.DailyStats, date)
		return
	}

	e.data.DailyStats[date] = day
}

func (e *Engine) ensureLoaded() {
	if !e.loaded {
		e.load()
	}
}

func (e *Engine) load() {
	e.data = ledger{DailyStats: make(map[string]DailyStats)}
	e.loaded = true

	raw, ok, err := e.db.Get(store.KeyStats)
	if err != nil {
		e.logger.Error("reading stats failed", slog.Any("error", err))
		return
	}

	if !ok || raw == "" {
		return
	}

	var data ledger

	err = json.Unmarshal([]byte(raw), &data)
	if err != nil {
		e.logger.Error("decoding stats failed", slog.Any("error", err))
		return
	}

	if data.DailyStats == nil {
		data.DailyStats = make(map[string]DailyStats)
	}

	e.data = data
}

func (e *Engine) persist() {
	e.persistMu.Lock()
	defer e.persistMu.Unlock()

	e.mu.Lock()

	data := e.data
	if data.Sessions == nil {
		data.Sessions = []Session{}
	}

	b, err := json.Marshal(data)
	e.mu.Unlock()

	if err == nil {
		err = e.db.Set(store.KeyStats, string(b))
	}

	if err != nil {
		e.logger.Error("persisting stats failed", slog.Any("error", err))
		return
	}

	e.logger.Debug(
		"persisted stats",
		slog.Int("sessions", len(data.Sessions)),
		slog.Int("days", len(data.DailyStats)),
	)
}

func sortRecentFirst(sessions []Session) {
	slices.SortStableFunc(sessions, func(a, b Session) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		default:
			return 0
		}
	})
}

func sessionID(ts int64) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLength]

	return strconv.FormatInt(ts, 10) + "-" + suffix
}
