// Package bookmark keeps the user's bookmarks and last-read position
package bookmark

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/omahapp/mushaf/internal/quran"
	"github.com/omahapp/mushaf/internal/timeutil"
)

// Bookmark is a saved location, or a reading target when a page or juz range
// is set. Field names follow the stored JSON layout.
type Bookmark struct {
	StartPage *int   `json:"startPage,omitempty"`
	EndPage   *int   `json:"endPage,omitempty"`
	StartJuz  *int   `json:"startJuz,omitempty"`
	EndJuz    *int   `json:"endJuz,omitempty"`
	Row       *int   `json:"row,omitempty"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Sura      string `json:"sura"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Color     string `json:"color"`
	Page      int    `json:"page"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// LastRead is the most recent reading position.
type LastRead struct {
	Row             *int     `json:"row,omitempty"`
	Sura            string   `json:"sura"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Duration        string   `json:"duration"`
	Surahs          []string `json:"surahs,omitempty"`
	Page            int      `json:"page"`
	Pages           int      `json:"pages"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	Timestamp       int64    `json:"timestamp,omitempty"`
}

// TargetKind tells what kind of range a bookmark tracks.
type TargetKind int

const (
	NoTarget TargetKind = iota
	PageTarget
	JuzTarget
)

// Target is an optional reading goal attached to a bookmark.
type Target struct {
	Kind  TargetKind
	Start int
	End   int
}

// Validate checks that the range is well formed.
func (t Target) Validate() error {
	switch t.Kind {
	case PageTarget:
		if !quran.ValidPage(t.Start) || !quran.ValidPage(t.End) || t.Start > t.End {
			return ErrInvalidPageRange.Fmt(t.Start, t.End, quran.PhysicalPages)
		}
	case JuzTarget:
		if !quran.ValidJuz(t.Start) || !quran.ValidJuz(t.End) || t.Start > t.End {
			return ErrInvalidJuzRange.Fmt(t.Start, t.End, quran.JuzCount)
		}
	case NoTarget:
	}

	return nil
}

// Anchor returns the page a bookmark with this target opens on.
func (t Target) Anchor(page int) int {
	switch t.Kind {
	case PageTarget:
		return t.Start
	case JuzTarget:
		return quran.JuzStartPage(t.Start)
	case NoTarget:
	}

	return page
}

func (t Target) String() string {
	switch t.Kind {
	case PageTarget:
		return fmt.Sprintf("pages %d-%d", t.Start, t.End)
	case JuzTarget:
		return fmt.Sprintf("juz %d-%d", t.Start, t.End)
	case NoTarget:
	}

	return ""
}

// Target returns the bookmark's range, if any.
func (b *Bookmark) Target() Target {
	switch {
	case b.StartPage != nil && b.EndPage != nil:
		return Target{Kind: PageTarget, Start: *b.StartPage, End: *b.EndPage}
	case b.StartJuz != nil && b.EndJuz != nil:
		return Target{Kind: JuzTarget, Start: *b.StartJuz, End: *b.EndJuz}
	default:
		return Target{}
	}
}

// AnchorPage is the page the bookmark opens on: the start of its target range
// or its saved page.
func (b *Bookmark) AnchorPage() int {
	switch {
	case b.StartPage != nil:
		return *b.StartPage
	case b.StartJuz != nil:
		return quran.JuzStartPage(*b.StartJuz)
	default:
		return b.Page
	}
}

// ActiveRow returns the saved row or zero.
func (b *Bookmark) ActiveRow() int {
	if b.Row == nil {
		return 0
	}

	return *b.Row
}

func (b *Bookmark) setTarget(t Target) {
	b.StartPage, b.EndPage, b.StartJuz, b.EndJuz = nil, nil, nil, nil

	switch t.Kind {
	case PageTarget:
		b.StartPage, b.EndPage = intPtr(t.Start), intPtr(t.End)
	case JuzTarget:
		b.StartJuz, b.EndJuz = intPtr(t.Start), intPtr(t.End)
	case NoTarget:
	}
}

// New creates a bookmark named name at page, or at the start of target when
// one is given. It assigns the id, color and timestamps.
func New(name string, target Target, page int, now time.Time) (Bookmark, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Bookmark{}, ErrEmptyName
	}

	if err := target.Validate(); err != nil {
		return Bookmark{}, err
	}

	anchor := target.Anchor(page)
	if !quran.ValidPage(anchor) {
		return Bookmark{}, ErrInvalidPage.Fmt(anchor, quran.PhysicalPages)
	}

	b := Bookmark{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      name,
		Sura:      quran.SurahName(anchor),
		Page:      anchor,
		Date:      timeutil.DisplayDate(now),
		Time:      timeutil.DisplayClock(now),
		Timestamp: now.UnixMilli(),
		Color:     RandomColor(),
	}

	b.setTarget(target)

	return b, nil
}

// Edit returns a copy of b with a new name, target and page. The id, color
// and timestamps are preserved; sura and page are recomputed.
func Edit(b Bookmark, name string, target Target, page int) (Bookmark, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Bookmark{}, ErrEmptyName
	}

	if err := target.Validate(); err != nil {
		return Bookmark{}, err
	}

	anchor := target.Anchor(page)
	if !quran.ValidPage(anchor) {
		return Bookmark{}, ErrInvalidPage.Fmt(anchor, quran.PhysicalPages)
	}

	edited := b.clone()
	edited.Name = name
	edited.Page = anchor
	edited.Sura = quran.SurahName(anchor)
	edited.setTarget(target)

	return edited, nil
}

// RandomColor returns a random #rrggbb display tag.
func RandomColor() string {
	//nolint:gosec // display color only
	return fmt.Sprintf("#%06x", rand.IntN(0xffffff))
}

func (b *Bookmark) clone() Bookmark {
	c := *b
	c.StartPage = copyInt(b.StartPage)
	c.EndPage = copyInt(b.EndPage)
	c.StartJuz = copyInt(b.StartJuz)
	c.EndJuz = copyInt(b.EndJuz)
	c.Row = copyInt(b.Row)

	return c
}

func (l *LastRead) clone() LastRead {
	c := *l
	c.Row = copyInt(l.Row)

	if l.Surahs != nil {
		c.Surahs = append([]string(nil), l.Surahs...)
	}

	return c
}

func intPtr(i int) *int {
	return &i
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}

	return intPtr(*p)
}
