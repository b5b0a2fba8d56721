package remote

import (
	"context"
	"fmt"

	"github.com/selahapp/selah/internal/domain"
)

// Highlights returns the user's highlights, newest first.
func (s *Store) Highlights(ctx context.Context, userID string) ([]domain.Highlight, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, book, chapter, verse_start, verse_end, color, created_at
		FROM highlights
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list highlights: %w", err)
	}
	defer rows.Close()

	var items []domain.Highlight
	for rows.Next() {
		var h domain.Highlight
		if err := rows.Scan(&h.ID, &h.Book, &h.Chapter, &h.VerseStart, &h.VerseEnd, &h.Color, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan highlight: %w", err)
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

// InsertHighlight stores a highlight. Any existing highlight on the exact
// same verse range is replaced; overlapping but non-identical ranges are
// left alone and accumulate.
func (s *Store) InsertHighlight(ctx context.Context, userID string, h domain.Highlight) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin highlight write: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		DELETE FROM highlights
		WHERE user_id = $1 AND book = $2 AND chapter = $3
		  AND verse_start = $4 AND verse_end = $5
	`, userID, h.Book, h.Chapter, h.VerseStart, h.VerseEnd)
	if err != nil {
		return fmt.Errorf("failed to replace highlight range: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO highlights (id, user_id, book, chapter, verse_start, verse_end, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, h.ID, userID, h.Book, h.Chapter, h.VerseStart, h.VerseEnd, h.Color, h.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert highlight: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *Store) DeleteHighlight(ctx context.Context, userID, id string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM highlights WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete highlight: %w", err)
	}
	return nil
}

func (s *Store) CountHighlights(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM highlights WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count highlights: %w", err)
	}
	return n, nil
}

// InsertHighlights bulk-loads highlights during the one-time device transfer.
func (s *Store) InsertHighlights(ctx context.Context, userID string, items []domain.Highlight) error {
	for _, h := range items {
		if err := s.InsertHighlight(ctx, userID, h); err != nil {
			return err
		}
	}
	return nil
}
