package bookmark_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omahapp/mushaf/bookmark"
	"github.com/omahapp/mushaf/internal/testutil"
	"github.com/omahapp/mushaf/store"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func fixedClock() time.Time {
	return time.Date(2024, time.January, 5, 20, 0, 0, 0, time.Local)
}

func newBookmark(t *testing.T, id int, name string, page int) bookmark.Bookmark {
	t.Helper()

	b, err := bookmark.New(name, bookmark.Target{}, page, createdAt.Add(time.Duration(id)*time.Minute))
	require.NoError(t, err)

	return b
}

type op struct {
	kind string
	b    bookmark.Bookmark
}

// replay applies ops to a plain slice the way the cache is expected to.
func replay(ops []op) []bookmark.Bookmark {
	var list []bookmark.Bookmark

	for _, o := range ops {
		switch o.kind {
		case "add":
			list = append(list, o.b)
		case "update":
			for i := range list {
				if list[i].ID == o.b.ID {
					list[i] = o.b
				}
			}
		case "delete":
			for i := range list {
				if list[i].ID == o.b.ID {
					list = append(list[:i], list[i+1:]...)
					break
				}
			}
		}
	}

	return list
}

func TestCacheMatchesReferenceModel(t *testing.T) {
	a := newBookmark(t, 1, "Baqarah", 2)
	b := newBookmark(t, 2, "Kahf", 293)
	c := newBookmark(t, 3, "Mulk", 562)
	renamed := b
	renamed.Name = "Friday"
	ghost := newBookmark(t, 4, "Ghost", 100)

	ops := []op{
		{"add", a},
		{"add", b},
		{"add", c},
		{"update", renamed},
		{"delete", a},
		{"update", ghost},
		{"delete", ghost},
	}

	db := testutil.OpenStore(t)
	cache := bookmark.NewCache(db, discard, fixedClock)

	for _, o := range ops {
		switch o.kind {
		case "add":
			cache.Add(o.b)
		case "update":
			cache.Update(o.b)
		case "delete":
			cache.Delete(o.b.ID)
		}
	}

	want := replay(ops)

	if diff := cmp.Diff(want, cache.Bookmarks()); diff != "" {
		t.Fatalf("cache diverged from reference (-want +got):\n%s", diff)
	}

	reopened := bookmark.NewCache(db, discard, fixedClock)
	if diff := cmp.Diff(want, reopened.Bookmarks()); diff != "" {
		t.Fatalf("store diverged from reference (-want +got):\n%s", diff)
	}
}

func TestRefreshIsIdempotent(t *testing.T) {
	cache := bookmark.NewCache(testutil.OpenStore(t), discard, fixedClock)

	cache.Add(newBookmark(t, 1, "Baqarah", 2))
	cache.Add(newBookmark(t, 2, "Kahf", 293))
	cache.UpdateLastRead(bookmark.LastRead{Page: 293, Sura: "Al-Kahf", Pages: 3})

	before := cache.Bookmarks()
	lrBefore, _ := cache.LastRead()

	cache.Refresh()

	assert.Equal(t, before, cache.Bookmarks())

	lr, ok := cache.LastRead()
	assert.True(t, ok)
	assert.Equal(t, lrBefore, lr)
}

func TestUpdatePage(t *testing.T) {
	cache := bookmark.NewCache(testutil.OpenStore(t), discard, fixedClock)

	start, end := 2, 3
	b := newBookmark(t, 1, "Juz", 22)
	b.StartJuz, b.EndJuz = &start, &end
	cache.Add(b)

	before := cache.Bookmarks()

	assert.False(t, cache.UpdatePage("missing", 40, 3, "Al-Baqarah", "5 january", "20:00"))
	assert.Equal(t, before, cache.Bookmarks())

	assert.True(t, cache.UpdatePage(b.ID, 40, 3, "Al-Baqarah", "5 january", "20:00"))

	got, ok := cache.Bookmark(b.ID)
	require.True(t, ok)
	assert.Equal(t, 40, got.Page)
	assert.Equal(t, 3, got.ActiveRow())
	assert.Equal(t, "5 january", got.Date)
	assert.Equal(t, fixedClock().UnixMilli(), got.Timestamp)
	assert.Equal(t, b.Name, got.Name)
	assert.Equal(t, b.Color, got.Color)
	assert.Equal(t, b.Target(), got.Target())
	assert.Equal(t, 22, got.AnchorPage())
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	cache := bookmark.NewCache(testutil.OpenStore(t), discard, fixedClock)
	cache.Add(newBookmark(t, 1, "Baqarah", 2))

	list := cache.Bookmarks()
	list[0].Name = "changed"

	assert.Equal(t, "Baqarah", cache.Bookmarks()[0].Name)
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	flaky := &testutil.FlakyStore{KV: testutil.OpenStore(t)}
	cache := bookmark.NewCache(flaky, discard, fixedClock)

	cache.Add(newBookmark(t, 1, "Baqarah", 2))

	flaky.FailWrites = true

	cache.Add(newBookmark(t, 2, "Kahf", 293))
	assert.Len(t, cache.Bookmarks(), 2)

	// the failed write is lost once the store is read again
	flaky.FailWrites = false
	cache.Refresh()
	assert.Len(t, cache.Bookmarks(), 1)
}

func TestReadFailureYieldsEmptyState(t *testing.T) {
	db := testutil.OpenStore(t)
	require.NoError(t, db.Set(store.KeyLastRead, `{"page": 10}`))

	cache := bookmark.NewCache(&testutil.FlakyStore{KV: db, FailReads: true}, discard, fixedClock)

	assert.Empty(t, cache.Bookmarks())

	_, ok := cache.LastRead()
	assert.False(t, ok)
}

func TestCorruptPayloadYieldsEmptyState(t *testing.T) {
	db := testutil.OpenStore(t)
	require.NoError(t, db.Set(store.KeyBookmarks, "{not json"))

	cache := bookmark.NewCache(db, discard, fixedClock)

	assert.Empty(t, cache.Bookmarks())
}

func TestSubscribe(t *testing.T) {
	cache := bookmark.NewCache(testutil.OpenStore(t), discard, fixedClock)

	var calls []string

	unsubscribe := cache.Subscribe(func() {
		calls = append(calls, fmt.Sprintf("%d", len(cache.Bookmarks())))
	})

	b := newBookmark(t, 1, "Baqarah", 2)
	cache.Add(b)
	cache.UpdateLastRead(bookmark.LastRead{Page: 2})
	cache.Delete("missing")
	cache.Delete(b.ID)

	unsubscribe()
	cache.Add(b)

	assert.Equal(t, []string{"1", "1", "0"}, calls)
}
