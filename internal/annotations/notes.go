package annotations

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/store/local"
	"github.com/selahapp/selah/internal/store/remote"
)

// Notes manages per-verse study notes.
type Notes struct {
	mu    sync.RWMutex
	items []domain.Note

	local   noteBackend
	remote  func(owner string) noteBackend
	session Source
	log     logger.Logger
	now     func() time.Time
	newID   func() string
}

func NewNotes(ls *local.Store, rs *remote.Store, session Source, log logger.Logger) *Notes {
	n := &Notes{
		local:   localNotes{store: ls},
		session: session,
		log:     log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	if rs != nil {
		n.remote = func(owner string) noteBackend {
			return remoteNotes{store: rs, owner: owner}
		}
	}
	return n
}

func (s *Notes) backend() noteBackend {
	if s.remote != nil {
		if owner, ok := s.session.Owner(); ok {
			return s.remote(owner)
		}
	}
	return s.local
}

// Load replaces the in-memory state from the current backend.
func (s *Notes) Load(ctx context.Context) {
	items, err := s.backend().List(ctx)
	if err != nil {
		s.log.Warn("failed to load notes", logger.Error(err))
		items = nil
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// All returns the notes, newest first.
func (s *Notes) All() []domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Note, len(s.items))
	copy(out, s.items)
	return out
}

// ForVerse returns the notes attached to one verse.
func (s *Notes) ForVerse(ref domain.VerseRef) []domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Note
	for _, n := range s.items {
		if n.Book == ref.Book && n.Chapter == ref.Chapter && n.Verse == ref.Verse {
			out = append(out, n)
		}
	}
	return out
}

// Add attaches a note to a verse and returns the stored entry.
func (s *Notes) Add(ctx context.Context, ref domain.VerseRef, title, content string) (domain.Note, error) {
	now := s.now()
	n := domain.Note{
		ID:        s.newID(),
		Book:      ref.Book,
		Chapter:   ref.Chapter,
		Verse:     ref.Verse,
		Title:     strings.TrimSpace(title),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := n.Validate(); err != nil {
		return domain.Note{}, err
	}

	s.mu.Lock()
	s.items = append([]domain.Note{n}, s.items...)
	s.mu.Unlock()

	if err := s.backend().Insert(ctx, n); err != nil {
		s.log.Warn("failed to persist note",
			logger.String("id", n.ID),
			logger.Error(err))
	}
	return n, nil
}

// Update rewrites a note's title and content. An unknown id is a no-op.
func (s *Notes) Update(ctx context.Context, id, title, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyNoteContent
	}

	title = strings.TrimSpace(title)
	at := s.now()

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Title = title
			s.items[i].Content = content
			s.items[i].UpdatedAt = at
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return nil
	}

	if err := s.backend().Update(ctx, id, title, content, at); err != nil {
		s.log.Warn("failed to persist note update",
			logger.String("id", id),
			logger.Error(err))
	}
	return nil
}

// Remove deletes a note by id. An unknown id is a no-op.
func (s *Notes) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.items[:0]
	for _, n := range s.items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.items = kept
	s.mu.Unlock()

	if err := s.backend().Delete(ctx, id); err != nil {
		s.log.Warn("failed to delete note",
			logger.String("id", id),
			logger.Error(err))
	}
	return nil
}
