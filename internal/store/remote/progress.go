package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/selahapp/selah/internal/domain"
)

// Progress returns the user's record for a reading plan.
func (s *Store) Progress(ctx context.Context, userID, planID string) (domain.ReadingProgress, error) {
	var rec domain.ReadingProgress
	err := s.pool.QueryRow(ctx, `
		SELECT plan_id, current_day, completed_chapters, started_at, finished_at
		FROM reading_progress
		WHERE user_id = $1 AND plan_id = $2
	`, userID, planID).Scan(&rec.PlanID, &rec.CurrentDay, &rec.CompletedChapters, &rec.StartedAt, &rec.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ReadingProgress{}, ErrNotFound
		}
		return domain.ReadingProgress{}, fmt.Errorf("failed to load reading progress: %w", err)
	}
	return rec, nil
}

// SaveProgress upserts the user's record for a reading plan.
func (s *Store) SaveProgress(ctx context.Context, userID string, rec domain.ReadingProgress) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO reading_progress (user_id, plan_id, current_day, completed_chapters, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, plan_id) DO UPDATE SET
			current_day        = excluded.current_day,
			completed_chapters = excluded.completed_chapters,
			started_at         = excluded.started_at,
			finished_at        = excluded.finished_at
	`, userID, rec.PlanID, rec.CurrentDay, rec.CompletedChapters, rec.StartedAt, rec.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to save reading progress: %w", err)
	}
	return nil
}
