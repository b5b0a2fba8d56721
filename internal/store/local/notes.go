package local

import (
	"context"
	"time"

	"github.com/selahapp/selah/internal/domain"
)

// Notes returns the device notes, most recent first.
func (s *Store) Notes(ctx context.Context) []domain.Note {
	return loadList[domain.Note](ctx, s, keyNotes)
}

// InsertNote prepends a note. Several notes may exist for the same verse.
func (s *Store) InsertNote(ctx context.Context, note domain.Note) error {
	items := append([]domain.Note{note}, s.Notes(ctx)...)
	return saveList(ctx, s, keyNotes, items)
}

// UpdateNote replaces the mutable fields of the note with the given id and
// refreshes its updated timestamp. Unknown ids are a no-op.
func (s *Store) UpdateNote(ctx context.Context, id, title, content string, updatedAt time.Time) error {
	items := s.Notes(ctx)
	for i := range items {
		if items[i].ID == id {
			items[i].Title = title
			items[i].Content = content
			items[i].UpdatedAt = updatedAt
			break
		}
	}
	return saveList(ctx, s, keyNotes, items)
}

// DeleteNote removes a note by id, if present.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	items := s.Notes(ctx)
	kept := items[:0]
	for _, n := range items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	return saveList(ctx, s, keyNotes, kept)
}
