package local

import (
	"context"
	"fmt"
	"testing"
)

func TestSearchHistoryCap(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 11; i++ {
		if err := s.AddSearchQuery(ctx, fmt.Sprintf("query-%d", i)); err != nil {
			t.Fatalf("AddSearchQuery failed: %v", err)
		}
	}

	history := s.SearchHistory(ctx)
	if len(history) != maxSearchHistory {
		t.Fatalf("expected %d entries, got %d", maxSearchHistory, len(history))
	}
	if history[0] != "query-11" {
		t.Errorf("expected newest query first, got %q", history[0])
	}
	for _, q := range history {
		if q == "query-1" {
			t.Error("oldest query should have been evicted")
		}
	}
}

func TestSearchHistoryDedupMovesToFront(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, q := range []string{"grace", "mercy", "grace"} {
		if err := s.AddSearchQuery(ctx, q); err != nil {
			t.Fatalf("AddSearchQuery failed: %v", err)
		}
	}

	history := s.SearchHistory(ctx)
	if len(history) != 2 {
		t.Fatalf("expected 2 entries after dedup, got %d", len(history))
	}
	if history[0] != "grace" || history[1] != "mercy" {
		t.Errorf("expected [grace mercy], got %v", history)
	}
}

func TestSearchHistoryTrimsAndSkipsEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddSearchQuery(ctx, "  hope  "); err != nil {
		t.Fatalf("AddSearchQuery failed: %v", err)
	}
	if err := s.AddSearchQuery(ctx, "   "); err != nil {
		t.Fatalf("AddSearchQuery failed: %v", err)
	}

	history := s.SearchHistory(ctx)
	if len(history) != 1 || history[0] != "hope" {
		t.Errorf("expected trimmed single entry [hope], got %v", history)
	}
}

func TestClearSearchHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddSearchQuery(ctx, "psalm"); err != nil {
		t.Fatalf("AddSearchQuery failed: %v", err)
	}
	if err := s.ClearSearchHistory(ctx); err != nil {
		t.Fatalf("ClearSearchHistory failed: %v", err)
	}
	if got := s.SearchHistory(ctx); len(got) != 0 {
		t.Errorf("expected empty history after clear, got %v", got)
	}
}
