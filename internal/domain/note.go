package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyNoteContent = errors.New("note content must not be empty")

// Note is a free-text annotation tied to one verse. Multiple notes may
// exist for the same verse.
type Note struct {
	ID        string    `json:"id"`
	Book      int       `json:"book"`
	Chapter   int       `json:"chapter"`
	Verse     int       `json:"verse"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ref returns the verse reference of the note.
func (n Note) Ref() VerseRef {
	return VerseRef{Book: n.Book, Chapter: n.Chapter, Verse: n.Verse}
}

// Validate checks the reference and that content is non-empty after trim.
func (n Note) Validate() error {
	if err := n.Ref().Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(n.Content) == "" {
		return ErrEmptyNoteContent
	}
	return nil
}
