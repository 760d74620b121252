package store_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omahapp/mushaf/internal/testutil"
	"github.com/omahapp/mushaf/store"
)

type snapshotCase struct {
	Name       string
	GoldenFile string
	Snapshot   []byte
}

func (s snapshotCase) Output() ([]byte, string) {
	return s.Snapshot, s.GoldenFile
}

func TestGetSetRemove(t *testing.T) {
	db := testutil.OpenStore(t)

	_, ok, err := db.Get(store.KeyQuality)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.Set(store.KeyQuality, "high"))

	v, ok, err := db.Get(store.KeyQuality)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "high", v)

	require.NoError(t, db.Remove(store.KeyQuality, "never-set"))

	_, ok, err = db.Get(store.KeyQuality)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteSnapshot(t *testing.T) {
	db := testutil.OpenStore(t)

	require.NoError(t, db.Set(store.KeyQuality, "mid"))
	require.NoError(t, db.Set(store.KeyDarkMode, store.True))

	var buf bytes.Buffer
	require.NoError(t, db.WriteSnapshot(&buf))

	testutil.CompareGoldenFile(t, snapshotCase{
		Name:       "export the whole store",
		GoldenFile: "snapshot",
		Snapshot:   buf.Bytes(),
	})
}

func TestReadSnapshot(t *testing.T) {
	db := testutil.OpenStore(t)

	require.NoError(t, db.Set(store.KeyLanguage, "sq"))

	n, err := db.ReadSnapshot(strings.NewReader(`{"bookmarks":"[]","isDarkMode":"true"}`))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	values, err := db.Export()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		store.KeyBookmarks: "[]",
		store.KeyDarkMode:  store.True,
		store.KeyLanguage:  "sq",
	}, values)
}

func TestReadSnapshotSkipsDeviceKeys(t *testing.T) {
	db := testutil.OpenStore(t)

	require.NoError(t, db.Set(store.KeyQuality, "low"))

	snapshot := `{
  "lastRead": "{}",
  "quran_images_downloaded": "true",
  "quran_quality_preference": "high",
  "quran_font_preference": "indopak",
  "v2_force_redownload_all_pages": "true"
}`

	n, err := db.ReadSnapshot(strings.NewReader(snapshot))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	values, err := db.Export()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		store.KeyLastRead: "{}",
		store.KeyQuality:  "low",
	}, values)
}

func TestReadSnapshotRejectsGarbage(t *testing.T) {
	db := testutil.OpenStore(t)

	_, err := db.ReadSnapshot(strings.NewReader(`[1,2,3]`))
	assert.Error(t, err)
}

func TestSecondClientIsRejected(t *testing.T) {
	path := t.TempDir() + "/locked.db"

	first, err := store.NewClient(path)
	require.NoError(t, err)

	defer first.Close()

	_, err = store.NewClient(path)
	assert.Error(t, err)
}
