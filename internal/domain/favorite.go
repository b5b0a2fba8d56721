package domain

import "time"

// Favorite marks a single verse. At most one favorite exists per verse
// reference within one owner's collection; there is no update operation,
// only create and delete.
type Favorite struct {
	Book      int       `json:"book"`
	Chapter   int       `json:"chapter"`
	Verse     int       `json:"verse"`
	CreatedAt time.Time `json:"created_at"`
}

// Ref returns the verse reference of the favorite.
func (f Favorite) Ref() VerseRef {
	return VerseRef{Book: f.Book, Chapter: f.Chapter, Verse: f.Verse}
}
