package local

import (
	"context"

	"github.com/selahapp/selah/internal/domain"
)

// Favorites returns the device favorites, most recent first.
func (s *Store) Favorites(ctx context.Context) []domain.Favorite {
	return loadList[domain.Favorite](ctx, s, keyFavorites)
}

// InsertFavorite prepends a favorite. Adding a verse that is already
// favorited is a no-op, keeping at most one entry per reference.
func (s *Store) InsertFavorite(ctx context.Context, fav domain.Favorite) error {
	items := s.Favorites(ctx)
	for _, f := range items {
		if f.Ref() == fav.Ref() {
			return nil
		}
	}
	items = append([]domain.Favorite{fav}, items...)
	return saveList(ctx, s, keyFavorites, items)
}

// DeleteFavorite removes the favorite for a verse reference, if present.
func (s *Store) DeleteFavorite(ctx context.Context, ref domain.VerseRef) error {
	items := s.Favorites(ctx)
	kept := items[:0]
	for _, f := range items {
		if f.Ref() != ref {
			kept = append(kept, f)
		}
	}
	return saveList(ctx, s, keyFavorites, kept)
}
