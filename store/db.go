package store

// Keys written by the mushaf core. Values are JSON unless noted.
const (
	KeyBookmarks = "bookmarks"
	KeyLastRead  = "lastRead"
	KeyStats     = "readingStats"
	// KeyQuality holds a plain string: low, mid or high.
	KeyQuality = "quran_quality_preference"
	// KeyFont holds the plain font variant name of the installed assets.
	KeyFont = "quran_font_preference"
	// KeyDownloaded holds the plain string "true" once assets are installed.
	KeyDownloaded = "quran_images_downloaded"
	// KeyMigrationV2 holds "true" once the v2 page reset has run.
	KeyMigrationV2 = "v2_force_redownload_all_pages"

	KeyRowHighlighter = "rowHighlighterEnabled"
	KeyDarkMode       = "isDarkMode"
	KeyLanguage       = "user-language"
)

// deviceKeys describe the assets installed on this device and the migrations
// run against them. They are never taken from a snapshot.
var deviceKeys = []string{KeyQuality, KeyFont, KeyDownloaded, KeyMigrationV2}

// True is the stored representation of a set boolean flag.
const True = "true"

// KV is the durable string-keyed store the services persist to.
type KV interface {
	// Get returns the value stored under key. ok is false if the key is
	// absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes the given keys. Absent keys are ignored.
	Remove(keys ...string) error
	// Close ends the database connection
	Close() error
}
