package domain

import (
	"errors"
	"fmt"
)

const (
	// MinBook and MaxBook bound the canonical 66-book Protestant canon.
	MinBook = 1
	MaxBook = 66
)

var (
	ErrInvalidBook    = errors.New("book must be between 1 and 66")
	ErrInvalidChapter = errors.New("chapter must be >= 1")
	ErrInvalidVerse   = errors.New("verse must be >= 1")
)

// VerseRef identifies a single verse by book, chapter and verse number.
type VerseRef struct {
	Book    int `json:"book"`
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

// Validate checks the reference against canonical bounds.
func (r VerseRef) Validate() error {
	if r.Book < MinBook || r.Book > MaxBook {
		return ErrInvalidBook
	}
	if r.Chapter < 1 {
		return ErrInvalidChapter
	}
	if r.Verse < 1 {
		return ErrInvalidVerse
	}
	return nil
}

// ChapterKey returns the canonical "book-chapter" key used by reading
// progress records.
func ChapterKey(book, chapter int) string {
	return fmt.Sprintf("%d-%d", book, chapter)
}
