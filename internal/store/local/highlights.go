package local

import (
	"context"

	"github.com/selahapp/selah/internal/domain"
)

// Highlights returns the device highlights, most recent first.
func (s *Store) Highlights(ctx context.Context) []domain.Highlight {
	return loadList[domain.Highlight](ctx, s, keyHighlights)
}

// InsertHighlight prepends a highlight. An existing highlight with the exact
// same range tuple is dropped first (delete-then-insert), so re-marking a
// range replaces its color and timestamp. Overlapping-but-different ranges
// are left alone.
func (s *Store) InsertHighlight(ctx context.Context, h domain.Highlight) error {
	items := s.Highlights(ctx)
	kept := items[:0]
	for _, existing := range items {
		if !existing.SameRange(h) {
			kept = append(kept, existing)
		}
	}
	kept = append([]domain.Highlight{h}, kept...)
	return saveList(ctx, s, keyHighlights, kept)
}

// DeleteHighlight removes a highlight by id, if present.
func (s *Store) DeleteHighlight(ctx context.Context, id string) error {
	items := s.Highlights(ctx)
	kept := items[:0]
	for _, h := range items {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	return saveList(ctx, s, keyHighlights, kept)
}
