package local

import (
	"context"
	"strings"
)

// maxSearchHistory caps the retained search queries.
const maxSearchHistory = 10

// SearchHistory returns recent search queries, newest first.
func (s *Store) SearchHistory(ctx context.Context) []string {
	return loadList[string](ctx, s, keyHistory)
}

// AddSearchQuery records a query at the front of the history. A query that
// is already present moves to the front instead of duplicating; the history
// keeps at most the ten most recent entries. Comparison is case-sensitive
// on the trimmed query.
func (s *Store) AddSearchQuery(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	history := s.SearchHistory(ctx)
	updated := make([]string, 0, len(history)+1)
	updated = append(updated, query)
	for _, q := range history {
		if q != query {
			updated = append(updated, q)
		}
	}
	if len(updated) > maxSearchHistory {
		updated = updated[:maxSearchHistory]
	}
	return saveList(ctx, s, keyHistory, updated)
}

// ClearSearchHistory drops all recorded queries.
func (s *Store) ClearSearchHistory(ctx context.Context) error {
	return s.del(ctx, keyHistory)
}
