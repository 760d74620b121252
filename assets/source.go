package assets

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Qualities, lowest resolution first.
const (
	QualityLow  = "low"
	QualityMid  = "mid"
	QualityHigh = "high"
)

// DefaultFont is the glyph style of the stock page bundles.
const DefaultFont = "madani"

const baseURL = "https://omahapp-deployments.s3.eu-central-1.amazonaws.com/"

// Source is a downloadable page bundle.
type Source struct {
	Quality string `mapstructure:"quality"`
	Font    string `mapstructure:"font"`
	URL     string `mapstructure:"url"`
	// Size is the approximate archive size in bytes.
	Size int64 `mapstructure:"size"`
}

// DefaultSources lists the stock page bundles.
func DefaultSources() []Source {
	return []Source{
		{Quality: QualityLow, Font: DefaultFont, URL: baseURL + "low.zip", Size: 150_000_000},
		{Quality: QualityMid, Font: DefaultFont, URL: baseURL + "mid.zip", Size: 300_000_000},
		{Quality: QualityHigh, Font: DefaultFont, URL: baseURL + "high.zip", Size: 1_000_000_000},
	}
}

func (s Source) String() string {
	return fmt.Sprintf("%s (%s, %s)", s.Quality, s.Font, humanize.Bytes(uint64(s.Size)))
}

// lookup finds the source for quality and font. An empty font selects the
// default font.
func lookup(sources []Source, quality, font string) (Source, error) {
	if font == "" {
		font = DefaultFont
	}

	for _, s := range sources {
		if s.Quality == quality && s.Font == font {
			return s, nil
		}
	}

	return Source{}, ErrUnknownVariant.Fmt(quality, font)
}
