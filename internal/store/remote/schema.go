package remote

import (
	"context"
	"fmt"
)

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		user_id    UUID NOT NULL REFERENCES users(id),
		book       INTEGER NOT NULL,
		chapter    INTEGER NOT NULL,
		verse      INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (user_id, book, chapter, verse)
	)`,
	`CREATE TABLE IF NOT EXISTS highlights (
		id          UUID PRIMARY KEY,
		user_id     UUID NOT NULL REFERENCES users(id),
		book        INTEGER NOT NULL,
		chapter     INTEGER NOT NULL,
		verse_start INTEGER NOT NULL,
		verse_end   INTEGER NOT NULL,
		color       TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS highlights_user_chapter
		ON highlights (user_id, book, chapter)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id),
		book       INTEGER NOT NULL,
		chapter    INTEGER NOT NULL,
		verse      INTEGER NOT NULL,
		title      TEXT NOT NULL DEFAULT '',
		content    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reading_progress (
		user_id            UUID NOT NULL REFERENCES users(id),
		plan_id            TEXT NOT NULL,
		current_day        INTEGER NOT NULL,
		completed_chapters JSONB NOT NULL DEFAULT '{}',
		started_at         TIMESTAMPTZ NOT NULL,
		finished_at        TIMESTAMPTZ,
		PRIMARY KEY (user_id, plan_id)
	)`,
}

// Migrate applies the schema. Statements are idempotent so Migrate is safe
// to run on every startup.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range ddl {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
