package annotations

import (
	"context"
	"time"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/store/local"
	"github.com/selahapp/selah/internal/store/remote"
)

// Source reports the signed-in account, if any. Services consult it on
// every durable write so a sign-in or sign-out takes effect immediately.
type Source interface {
	Owner() (string, bool)
}

type favoriteBackend interface {
	List(ctx context.Context) ([]domain.Favorite, error)
	Insert(ctx context.Context, f domain.Favorite) error
	Delete(ctx context.Context, ref domain.VerseRef) error
}

type highlightBackend interface {
	List(ctx context.Context) ([]domain.Highlight, error)
	Insert(ctx context.Context, h domain.Highlight) error
	Delete(ctx context.Context, id string) error
}

type noteBackend interface {
	List(ctx context.Context) ([]domain.Note, error)
	Insert(ctx context.Context, n domain.Note) error
	Update(ctx context.Context, id, title, content string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type localFavorites struct{ store *local.Store }

func (b localFavorites) List(ctx context.Context) ([]domain.Favorite, error) {
	return b.store.Favorites(ctx), nil
}
func (b localFavorites) Insert(ctx context.Context, f domain.Favorite) error {
	return b.store.InsertFavorite(ctx, f)
}
func (b localFavorites) Delete(ctx context.Context, ref domain.VerseRef) error {
	return b.store.DeleteFavorite(ctx, ref)
}

type remoteFavorites struct {
	store *remote.Store
	owner string
}

func (b remoteFavorites) List(ctx context.Context) ([]domain.Favorite, error) {
	return b.store.Favorites(ctx, b.owner)
}
func (b remoteFavorites) Insert(ctx context.Context, f domain.Favorite) error {
	return b.store.InsertFavorite(ctx, b.owner, f)
}
func (b remoteFavorites) Delete(ctx context.Context, ref domain.VerseRef) error {
	return b.store.DeleteFavorite(ctx, b.owner, ref)
}

type localHighlights struct{ store *local.Store }

func (b localHighlights) List(ctx context.Context) ([]domain.Highlight, error) {
	return b.store.Highlights(ctx), nil
}
func (b localHighlights) Insert(ctx context.Context, h domain.Highlight) error {
	return b.store.InsertHighlight(ctx, h)
}
func (b localHighlights) Delete(ctx context.Context, id string) error {
	return b.store.DeleteHighlight(ctx, id)
}

type remoteHighlights struct {
	store *remote.Store
	owner string
}

func (b remoteHighlights) List(ctx context.Context) ([]domain.Highlight, error) {
	return b.store.Highlights(ctx, b.owner)
}
func (b remoteHighlights) Insert(ctx context.Context, h domain.Highlight) error {
	return b.store.InsertHighlight(ctx, b.owner, h)
}
func (b remoteHighlights) Delete(ctx context.Context, id string) error {
	return b.store.DeleteHighlight(ctx, b.owner, id)
}

type localNotes struct{ store *local.Store }

func (b localNotes) List(ctx context.Context) ([]domain.Note, error) {
	return b.store.Notes(ctx), nil
}
func (b localNotes) Insert(ctx context.Context, n domain.Note) error {
	return b.store.InsertNote(ctx, n)
}
func (b localNotes) Update(ctx context.Context, id, title, content string, at time.Time) error {
	return b.store.UpdateNote(ctx, id, title, content, at)
}
func (b localNotes) Delete(ctx context.Context, id string) error {
	return b.store.DeleteNote(ctx, id)
}

type remoteNotes struct {
	store *remote.Store
	owner string
}

func (b remoteNotes) List(ctx context.Context) ([]domain.Note, error) {
	return b.store.Notes(ctx, b.owner)
}
func (b remoteNotes) Insert(ctx context.Context, n domain.Note) error {
	return b.store.InsertNote(ctx, b.owner, n)
}
func (b remoteNotes) Update(ctx context.Context, id, title, content string, at time.Time) error {
	return b.store.UpdateNote(ctx, b.owner, id, title, content, at)
}
func (b remoteNotes) Delete(ctx context.Context, id string) error {
	return b.store.DeleteNote(ctx, b.owner, id)
}
