package domain

import (
	"errors"
	"fmt"
	"time"
)

// HighlightColor is the palette available for highlights.
type HighlightColor string

const (
	ColorWhite HighlightColor = "white"
	ColorGray  HighlightColor = "gray"
	ColorBlack HighlightColor = "black"
	ColorBlue  HighlightColor = "blue"
)

var ErrInvalidColor = errors.New("color must be one of: white, gray, black, blue")

// Valid reports whether the color belongs to the palette.
func (c HighlightColor) Valid() bool {
	switch c {
	case ColorWhite, ColorGray, ColorBlack, ColorBlue:
		return true
	}
	return false
}

var ErrInvalidRange = errors.New("verse range start must not exceed end")

// Highlight is a colored marking over a contiguous verse range within one
// chapter. The range [VerseStart, VerseEnd] is inclusive. Within one owner's
// collection no two highlights share the exact same range tuple; creating a
// highlight for an existing exact range replaces the prior entry. Ranges
// that overlap without being identical are allowed to accumulate.
type Highlight struct {
	ID         string         `json:"id"`
	Book       int            `json:"book"`
	Chapter    int            `json:"chapter"`
	VerseStart int            `json:"verse_start"`
	VerseEnd   int            `json:"verse_end"`
	Color      HighlightColor `json:"color"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Validate checks range bounds and the color palette.
func (h Highlight) Validate() error {
	ref := VerseRef{Book: h.Book, Chapter: h.Chapter, Verse: h.VerseStart}
	if err := ref.Validate(); err != nil {
		return err
	}
	if h.VerseEnd < h.VerseStart {
		return ErrInvalidRange
	}
	if !h.Color.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, h.Color)
	}
	return nil
}

// SameRange reports whether two highlights cover the exact same range tuple.
func (h Highlight) SameRange(other Highlight) bool {
	return h.Book == other.Book &&
		h.Chapter == other.Chapter &&
		h.VerseStart == other.VerseStart &&
		h.VerseEnd == other.VerseEnd
}

// Covers reports whether the verse falls inside the highlight's range.
func (h Highlight) Covers(book, chapter, verse int) bool {
	return h.Book == book &&
		h.Chapter == chapter &&
		verse >= h.VerseStart &&
		verse <= h.VerseEnd
}
