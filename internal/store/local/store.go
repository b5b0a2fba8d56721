package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/selahapp/selah/internal/logger"
)

// Store is the device-scoped persistent key-value store. Each logical key
// holds one JSON collection which is rewritten whole on every mutation;
// collections are user-scale, so the full rewrite is cheap.
//
// Reads never fail: a missing, unreadable or corrupt payload degrades to an
// empty collection so the reading experience is never interrupted by local
// storage damage.
type Store struct {
	db  *sql.DB
	log logger.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);
`

// Open creates the data directory if needed and opens the device database.
func Open(dir string, log logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	dsn := filepath.Join(dir, "selah.db") + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open device database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply device schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// get returns the raw payload for a key. Read failures are logged and
// reported as "absent" so callers always produce a value.
func (s *Store) get(ctx context.Context, key string) ([]byte, bool) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn("local read failed, treating as empty",
				logger.String("key", key),
				logger.Error(err))
		}
		return nil, false
	}
	return value, true
}

func (s *Store) put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) del(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// has reports key presence without reading the payload.
func (s *Store) has(ctx context.Context, key string) bool {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM kv WHERE key = ?`, key).Scan(&one)
	return err == nil
}

// loadList decodes the collection stored under key. A corrupt payload is
// discarded (logged, never surfaced) per the local-store failure contract.
func loadList[T any](ctx context.Context, s *Store, key string) []T {
	data, ok := s.get(ctx, key)
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("discarding corrupt collection",
			logger.String("key", key),
			logger.Error(err))
		return nil
	}
	return items
}

func saveList[T any](ctx context.Context, s *Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.put(ctx, key, data)
}

// unmarshalOrWarn decodes a single stored value with the same
// corrupt-payload policy as loadList.
func unmarshalOrWarn(s *Store, key string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("discarding corrupt value",
			logger.String("key", key),
			logger.Error(err))
		return err
	}
	return nil
}

func saveValue[T any](ctx context.Context, s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.put(ctx, key, data)
}

func loadMap[T any](ctx context.Context, s *Store, key string) map[string]T {
	data, ok := s.get(ctx, key)
	if !ok {
		return nil
	}

	var m map[string]T
	if err := json.Unmarshal(data, &m); err != nil {
		s.log.Warn("discarding corrupt collection",
			logger.String("key", key),
			logger.Error(err))
		return nil
	}
	return m
}

func saveMap[T any](ctx context.Context, s *Store, key string, m map[string]T) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.put(ctx, key, data)
}
