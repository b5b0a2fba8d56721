package local

import "context"

// SessionToken returns the persisted sign-in token, if any.
func (s *Store) SessionToken(ctx context.Context) (string, bool) {
	data, ok := s.get(ctx, keySession)
	if !ok || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// SaveSessionToken persists the sign-in token across restarts.
func (s *Store) SaveSessionToken(ctx context.Context, token string) error {
	return s.put(ctx, keySession, []byte(token))
}

// ClearSessionToken drops the persisted token on sign-out.
func (s *Store) ClearSessionToken(ctx context.Context) error {
	return s.del(ctx, keySession)
}

// Migrated reports whether the one-time transfer to the remote store has
// already run for this user on this device.
func (s *Store) Migrated(ctx context.Context, userID string) bool {
	return s.has(ctx, migratedKey(userID))
}

// SetMigrated sets the permanent migration marker for a user. The marker is
// never cleared.
func (s *Store) SetMigrated(ctx context.Context, userID string) error {
	return s.put(ctx, migratedKey(userID), []byte("1"))
}
