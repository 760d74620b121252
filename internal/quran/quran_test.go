package quran

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSurahTable(t *testing.T) {
	if len(Surahs) != 114 {
		t.Fatalf("expected 114 surahs, got %d", len(Surahs))
	}

	for i := 1; i < len(Surahs); i++ {
		if Surahs[i].StartPage < Surahs[i-1].StartPage {
			t.Errorf("surah %d starts before surah %d", Surahs[i].Number, Surahs[i-1].Number)
		}
	}
}

func TestSurahsOnPage(t *testing.T) {
	cases := []struct {
		page int
		want []string
	}{
		{1, nil},
		{2, []string{"Al-Fatihah"}},
		{3, []string{"Al-Baqarah"}},
		{50, []string{"Al-Baqarah"}},
		{51, []string{"Aal-E-Imran"}},
		{606, []string{"Al-Ikhlas", "Al-Falaq", "An-Nas"}},
	}

	for _, tc := range cases {
		got := SurahNamesOnPage(tc.page)
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("page %d (-want +got):\n%s", tc.page, diff)
		}
	}
}

func TestSurahName(t *testing.T) {
	if got := SurahName(1); got != UnknownSurah {
		t.Errorf("expected %q for the cover, got %q", UnknownSurah, got)
	}

	if got := SurahName(22); got != "Al-Baqarah" {
		t.Errorf("expected Al-Baqarah, got %q", got)
	}
}

func TestJuz(t *testing.T) {
	if got := JuzStartPage(2); got != 22 {
		t.Errorf("expected juz 2 to start on page 22, got %d", got)
	}

	cases := map[int]int{1: 1, 2: 1, 21: 1, 22: 2, 581: 29, 582: 30, 609: 30}
	for page, want := range cases {
		if got := JuzNumber(page); got != want {
			t.Errorf("JuzNumber(%d): expected %d, got %d", page, want, got)
		}
	}
}

func TestPageKey(t *testing.T) {
	if got := PageKey(7); got != "007" {
		t.Errorf("expected 007, got %s", got)
	}

	if got := PageKey(604); got != "604" {
		t.Errorf("expected 604, got %s", got)
	}
}
