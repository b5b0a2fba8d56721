package remote

import (
	"context"
	"fmt"

	"github.com/selahapp/selah/internal/domain"
)

// Favorites returns the user's favorites, newest first.
func (s *Store) Favorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT book, chapter, verse, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var items []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.Book, &f.Chapter, &f.Verse, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// InsertFavorite stores a favorite. Re-favoriting the same verse is a no-op.
func (s *Store) InsertFavorite(ctx context.Context, userID string, f domain.Favorite) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO favorites (user_id, book, chapter, verse, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, book, chapter, verse) DO NOTHING
	`, userID, f.Book, f.Chapter, f.Verse, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

func (s *Store) DeleteFavorite(ctx context.Context, userID string, ref domain.VerseRef) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND book = $2 AND chapter = $3 AND verse = $4
	`, userID, ref.Book, ref.Chapter, ref.Verse)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

func (s *Store) CountFavorites(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return n, nil
}

// InsertFavorites bulk-loads favorites during the one-time device transfer.
func (s *Store) InsertFavorites(ctx context.Context, userID string, items []domain.Favorite) error {
	for _, f := range items {
		if err := s.InsertFavorite(ctx, userID, f); err != nil {
			return err
		}
	}
	return nil
}
