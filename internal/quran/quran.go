// Package quran holds the fixed layout of the 604-page mushaf: surah start
// pages, juz boundaries and page image keys.
package quran

import "fmt"

const (
	// Pages is the number of text pages in the mushaf.
	Pages = 604
	// PhysicalPages is the number of page images in an asset bundle,
	// including the cover and trailing pages.
	PhysicalPages = 609
	// JuzCount is the number of juz divisions.
	JuzCount = 30
	// Rows is the number of row-highlighter bands on a page.
	Rows = 15

	juzLength     = 20
	firstTextPage = 2
)

// UnknownSurah is reported for pages outside the surah table (the cover).
const UnknownSurah = "Unknown"

// Surah is a chapter of the mushaf.
type Surah struct {
	Number    int
	Name      string
	StartPage int
}

// SurahsOnPage returns every surah visible on page, in mushaf order.
func SurahsOnPage(page int) []Surah {
	var out []Surah

	for i := range Surahs {
		s := Surahs[i]
		if s.StartPage > page {
			break
		}

		last := i == len(Surahs)-1
		if last || Surahs[i+1].StartPage > page || s.StartPage == page {
			out = append(out, s)
		}
	}

	return out
}

// SurahNamesOnPage returns the names of the surahs visible on page.
func SurahNamesOnPage(page int) []string {
	surahs := SurahsOnPage(page)

	names := make([]string, len(surahs))
	for i := range surahs {
		names[i] = surahs[i].Name
	}

	return names
}

// SurahName returns the name of the first surah on page.
func SurahName(page int) string {
	surahs := SurahsOnPage(page)
	if len(surahs) == 0 {
		return UnknownSurah
	}

	return surahs[0].Name
}

// JuzStartPage returns the page juz n starts on.
func JuzStartPage(n int) int {
	return (n-1)*juzLength + firstTextPage
}

// JuzNumber returns the juz that page belongs to.
func JuzNumber(page int) int {
	n := (page-firstTextPage)/juzLength + 1

	return min(max(n, 1), JuzCount)
}

// ValidPage reports whether page has a page image.
func ValidPage(page int) bool {
	return page >= 1 && page <= PhysicalPages
}

// ValidJuz reports whether n is a juz number.
func ValidJuz(n int) bool {
	return n >= 1 && n <= JuzCount
}

// ValidRow reports whether row is a row-highlighter band.
func ValidRow(row int) bool {
	return row >= 0 && row < Rows
}

// PageKey returns the image file stem for page (e.g. "007").
func PageKey(page int) string {
	return fmt.Sprintf("%03d", page)
}
