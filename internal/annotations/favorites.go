// Package annotations holds the in-memory services behind the reading view:
// favorites, highlights and verse notes. Each service applies a mutation to
// its in-memory state first so the UI reflects it immediately, then writes
// to the durable backend. A failed durable write is logged and absorbed;
// the in-memory state is never rolled back, so the change survives until
// the next reload even if it was not persisted.
//
// The durable backend is chosen per call: the device store when signed out,
// the account store when signed in.
package annotations

import (
	"context"
	"sync"
	"time"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/store/local"
	"github.com/selahapp/selah/internal/store/remote"
)

// Favorites manages favorited verses.
type Favorites struct {
	mu    sync.RWMutex
	items []domain.Favorite

	local   favoriteBackend
	remote  func(owner string) favoriteBackend
	session Source
	log     logger.Logger
	now     func() time.Time
}

func NewFavorites(ls *local.Store, rs *remote.Store, session Source, log logger.Logger) *Favorites {
	f := &Favorites{
		local:   localFavorites{store: ls},
		session: session,
		log:     log,
		now:     time.Now,
	}
	if rs != nil {
		f.remote = func(owner string) favoriteBackend {
			return remoteFavorites{store: rs, owner: owner}
		}
	}
	return f
}

func (s *Favorites) backend() favoriteBackend {
	if s.remote != nil {
		if owner, ok := s.session.Owner(); ok {
			return s.remote(owner)
		}
	}
	return s.local
}

// Load replaces the in-memory state from the current backend. Called on
// startup and again after sign-in or sign-out.
func (s *Favorites) Load(ctx context.Context) {
	items, err := s.backend().List(ctx)
	if err != nil {
		s.log.Warn("failed to load favorites", logger.Error(err))
		items = nil
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// All returns the favorites, newest first.
func (s *Favorites) All() []domain.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Favorite, len(s.items))
	copy(out, s.items)
	return out
}

// IsFavorite reports whether a verse is favorited.
func (s *Favorites) IsFavorite(ref domain.VerseRef) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.items {
		if f.Ref() == ref {
			return true
		}
	}
	return false
}

// ForChapter returns the favorites within one chapter.
func (s *Favorites) ForChapter(book, chapter int) []domain.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Favorite
	for _, f := range s.items {
		if f.Book == book && f.Chapter == chapter {
			out = append(out, f)
		}
	}
	return out
}

// Add favorites a verse. Favoriting an already-favorited verse is a no-op.
func (s *Favorites) Add(ctx context.Context, ref domain.VerseRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	fav := domain.Favorite{Book: ref.Book, Chapter: ref.Chapter, Verse: ref.Verse, CreatedAt: s.now()}

	s.mu.Lock()
	exists := false
	for _, f := range s.items {
		if f.Ref() == ref {
			exists = true
			break
		}
	}
	if !exists {
		s.items = append([]domain.Favorite{fav}, s.items...)
	}
	s.mu.Unlock()

	if exists {
		return nil
	}

	if err := s.backend().Insert(ctx, fav); err != nil {
		s.log.Warn("failed to persist favorite",
			logger.Int("book", ref.Book),
			logger.Int("chapter", ref.Chapter),
			logger.Int("verse", ref.Verse),
			logger.Error(err))
	}
	return nil
}

// Remove unfavorites a verse.
func (s *Favorites) Remove(ctx context.Context, ref domain.VerseRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, f := range s.items {
		if f.Ref() != ref {
			kept = append(kept, f)
		}
	}
	s.items = kept
	s.mu.Unlock()

	if err := s.backend().Delete(ctx, ref); err != nil {
		s.log.Warn("failed to delete favorite",
			logger.Int("book", ref.Book),
			logger.Int("chapter", ref.Chapter),
			logger.Int("verse", ref.Verse),
			logger.Error(err))
	}
	return nil
}

// Toggle flips the favorite state of a verse and reports the new state.
func (s *Favorites) Toggle(ctx context.Context, ref domain.VerseRef) (bool, error) {
	if s.IsFavorite(ref) {
		return false, s.Remove(ctx, ref)
	}
	return true, s.Add(ctx, ref)
}
