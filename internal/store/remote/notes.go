package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/selahapp/selah/internal/domain"
)

// Notes returns the user's notes, newest first.
func (s *Store) Notes(ctx context.Context, userID string) ([]domain.Note, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, book, chapter, verse, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var items []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Book, &n.Chapter, &n.Verse, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (s *Store) InsertNote(ctx context.Context, userID string, n domain.Note) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO notes (id, user_id, book, chapter, verse, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, n.ID, userID, n.Book, n.Chapter, n.Verse, n.Title, n.Content, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// UpdateNote rewrites a note's title and content. Updating a note the user
// does not own is a no-op.
func (s *Store) UpdateNote(ctx context.Context, userID, id, title, content string, updatedAt time.Time) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE notes SET title = $3, content = $4, updated_at = $5
		WHERE user_id = $1 AND id = $2
	`, userID, id, title, content, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}

func (s *Store) DeleteNote(ctx context.Context, userID, id string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM notes WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (s *Store) CountNotes(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notes WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return n, nil
}

// InsertNotes bulk-loads notes during the one-time device transfer.
func (s *Store) InsertNotes(ctx context.Context, userID string, items []domain.Note) error {
	for _, n := range items {
		if err := s.InsertNote(ctx, userID, n); err != nil {
			return err
		}
	}
	return nil
}
