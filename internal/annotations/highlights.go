package annotations

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/store/local"
	"github.com/selahapp/selah/internal/store/remote"
)

// Highlights manages verse-range highlights. Highlighting the exact same
// range twice replaces the earlier entry; overlapping but non-identical
// ranges accumulate, and lookups resolve to the most recent one covering
// the verse.
type Highlights struct {
	mu    sync.RWMutex
	items []domain.Highlight

	local   highlightBackend
	remote  func(owner string) highlightBackend
	session Source
	log     logger.Logger
	now     func() time.Time
	newID   func() string
}

func NewHighlights(ls *local.Store, rs *remote.Store, session Source, log logger.Logger) *Highlights {
	h := &Highlights{
		local:   localHighlights{store: ls},
		session: session,
		log:     log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	if rs != nil {
		h.remote = func(owner string) highlightBackend {
			return remoteHighlights{store: rs, owner: owner}
		}
	}
	return h
}

func (s *Highlights) backend() highlightBackend {
	if s.remote != nil {
		if owner, ok := s.session.Owner(); ok {
			return s.remote(owner)
		}
	}
	return s.local
}

// Load replaces the in-memory state from the current backend.
func (s *Highlights) Load(ctx context.Context) {
	items, err := s.backend().List(ctx)
	if err != nil {
		s.log.Warn("failed to load highlights", logger.Error(err))
		items = nil
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// All returns the highlights, newest first.
func (s *Highlights) All() []domain.Highlight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Highlight, len(s.items))
	copy(out, s.items)
	return out
}

// ForChapter returns the highlights within one chapter.
func (s *Highlights) ForChapter(book, chapter int) []domain.Highlight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Highlight
	for _, h := range s.items {
		if h.Book == book && h.Chapter == chapter {
			out = append(out, h)
		}
	}
	return out
}

// Covering returns the highlight to render for a verse. When several
// overlapping highlights cover the verse, the most recently created one
// wins.
func (s *Highlights) Covering(book, chapter, verse int) (domain.Highlight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// items are kept newest first, so the first hit is the winner.
	for _, h := range s.items {
		if h.Covers(book, chapter, verse) {
			return h, true
		}
	}
	return domain.Highlight{}, false
}

// Add highlights a verse range and returns the stored entry.
func (s *Highlights) Add(ctx context.Context, book, chapter, verseStart, verseEnd int, color domain.HighlightColor) (domain.Highlight, error) {
	h := domain.Highlight{
		ID:         s.newID(),
		Book:       book,
		Chapter:    chapter,
		VerseStart: verseStart,
		VerseEnd:   verseEnd,
		Color:      color,
		CreatedAt:  s.now(),
	}
	if err := h.Validate(); err != nil {
		return domain.Highlight{}, err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, existing := range s.items {
		if !existing.SameRange(h) {
			kept = append(kept, existing)
		}
	}
	s.items = append([]domain.Highlight{h}, kept...)
	s.mu.Unlock()

	if err := s.backend().Insert(ctx, h); err != nil {
		s.log.Warn("failed to persist highlight",
			logger.String("id", h.ID),
			logger.Error(err))
	}
	return h, nil
}

// Remove deletes a highlight by id. An unknown id is a no-op.
func (s *Highlights) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.items[:0]
	for _, h := range s.items {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	s.items = kept
	s.mu.Unlock()

	if err := s.backend().Delete(ctx, id); err != nil {
		s.log.Warn("failed to delete highlight",
			logger.String("id", id),
			logger.Error(err))
	}
	return nil
}
