package bookmark

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/omahapp/mushaf/internal/notify"
	"github.com/omahapp/mushaf/internal/timeutil"
	"github.com/omahapp/mushaf/store"
)

// Cache is the in-process source of truth for bookmarks and the last-read
// position. Every mutation updates memory, notifies subscribers, and then
// writes the full state to the store. Store failures are logged and never
// returned: the in-memory state stays correct for the life of the process,
// but a change whose write failed is lost on restart.
type Cache struct {
	db        store.KV
	logger    *slog.Logger
	now       timeutil.Clock
	lastRead  *LastRead
	listeners notify.Registry
	bookmarks []Bookmark
	mu        sync.Mutex
	persistMu sync.Mutex
	loaded    bool
}

// NewCache returns a cache backed by db. Nothing is read until first use.
func NewCache(db store.KV, logger *slog.Logger, clock timeutil.Clock) *Cache {
	if clock == nil {
		clock = time.Now
	}

	return &Cache{
		db:     db,
		logger: logger,
		now:    clock,
	}
}

// Subscribe registers fn to run after every mutation and refresh.
func (c *Cache) Subscribe(fn notify.Listener) (unsubscribe func()) {
	return c.listeners.Subscribe(fn)
}

// Bookmarks returns a copy of the bookmark list, loading it from the store on
// first use.
func (c *Cache) Bookmarks() []Bookmark {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded()

	out := make([]Bookmark, len(c.bookmarks))
	for i := range c.bookmarks {
		out[i] = c.bookmarks[i].clone()
	}

	return out
}

// Bookmark returns the bookmark with the given id.
func (c *Cache) Bookmark(id string) (Bookmark, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded()

	i := c.indexOf(id)
	if i < 0 {
		return Bookmark{}, false
	}

	return c.bookmarks[i].clone(), true
}

// LastRead returns the last-read position, if one has been recorded.
func (c *Cache) LastRead() (LastRead, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded()

	if c.lastRead == nil {
		return LastRead{}, false
	}

	return c.lastRead.clone(), true
}

// Add appends b to the list.
func (c *Cache) Add(b Bookmark) {
	c.mu.Lock()
	c.ensureLoaded()
	c.bookmarks = append(c.bookmarks, b.clone())
	c.mu.Unlock()

	c.listeners.Notify()
	c.persistBookmarks()
}

// Update replaces the bookmark with b's id. It reports false, and changes
// nothing, if no such bookmark exists.
func (c *Cache) Update(b Bookmark) bool {
	c.mu.Lock()
	c.ensureLoaded()

	i := c.indexOf(b.ID)
	if i < 0 {
		c.mu.Unlock()
		return false
	}

	c.bookmarks[i] = b.clone()
	c.mu.Unlock()

	c.listeners.Notify()
	c.persistBookmarks()

	return true
}

// UpdatePage records reading progress on a bookmark. Only the location fields
// and the timestamp change; name, color and target are kept.
func (c *Cache) UpdatePage(
	id string,
	page, row int,
	sura, date, clock string,
) bool {
	c.mu.Lock()
	c.ensureLoaded()

	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return false
	}

	b := &c.bookmarks[i]
	b.Page = page
	b.Row = intPtr(row)
	b.Sura = sura
	b.Date = date
	b.Time = clock
	b.Timestamp = c.now().UnixMilli()
	c.mu.Unlock()

	c.listeners.Notify()
	c.persistBookmarks()

	return true
}

// Delete removes the bookmark with the given id.
func (c *Cache) Delete(id string) bool {
	c.mu.Lock()
	c.ensureLoaded()

	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return false
	}

	c.bookmarks = append(c.bookmarks[:i:i], c.bookmarks[i+1:]...)
	c.mu.Unlock()

	c.listeners.Notify()
	c.persistBookmarks()

	return true
}

// UpdateLastRead replaces the last-read position.
func (c *Cache) UpdateLastRead(lr LastRead) {
	c.mu.Lock()
	c.ensureLoaded()

	v := lr.clone()
	c.lastRead = &v
	c.mu.Unlock()

	c.listeners.Notify()
	c.persistLastRead()
}

// Refresh discards the in-memory state and reloads it from the store.
func (c *Cache) Refresh() {
	c.mu.Lock()
	c.load()
	c.mu.Unlock()

	c.listeners.Notify()
}

func (c *Cache) indexOf(id string) int {
	for i := range c.bookmarks {
		if c.bookmarks[i].ID == id {
			return i
		}
	}

	return -1
}

// ensureLoaded must be called with mu held.
func (c *Cache) ensureLoaded() {
	if !c.loaded {
		c.load()
	}
}

// load must be called with mu held.
func (c *Cache) load() {
	c.bookmarks = nil
	c.lastRead = nil
	c.loaded = true

	var bookmarks []Bookmark

	if ok := c.read(store.KeyBookmarks, &bookmarks); ok {
		c.bookmarks = bookmarks
	}

	var lr LastRead

	if ok := c.read(store.KeyLastRead, &lr); ok {
		c.lastRead = &lr
	}
}

func (c *Cache) read(key string, v any) bool {
	raw, ok, err := c.db.Get(key)
	if err != nil {
		c.logger.Error("reading from store failed", slog.String("key", key), slog.Any("error", err))
		return false
	}

	if !ok || raw == "" || raw == "null" {
		return false
	}

	err = json.Unmarshal([]byte(raw), v)
	if err != nil {
		c.logger.Error("decoding stored value failed", slog.String("key", key), slog.Any("error", err))
		return false
	}

	return true
}

func (c *Cache) persistBookmarks() {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()

	list := c.bookmarks
	if list == nil {
		list = []Bookmark{}
	}

	b, err := json.Marshal(list)
	c.mu.Unlock()

	c.write(store.KeyBookmarks, b, err)
}

func (c *Cache) persistLastRead() {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()
	b, err := json.Marshal(c.lastRead)
	c.mu.Unlock()

	c.write(store.KeyLastRead, b, err)
}

func (c *Cache) write(key string, b []byte, err error) {
	if err == nil {
		err = c.db.Set(key, string(b))
	}

	if err != nil {
		c.logger.Error("persisting to store failed", slog.String("key", key), slog.Any("error", err))
		return
	}

	c.logger.Debug("persisted", slog.String("key", key), slog.Int("bytes", len(b)))
}
