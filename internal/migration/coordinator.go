// Package migration performs the one-time transfer of device annotations
// into a freshly signed-in account.
package migration

import (
	"context"

	"github.com/google/uuid"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/logger"
)

// LocalData is the device-side view the coordinator reads from.
type LocalData interface {
	Migrated(ctx context.Context, userID string) bool
	SetMigrated(ctx context.Context, userID string) error
	Favorites(ctx context.Context) []domain.Favorite
	Highlights(ctx context.Context) []domain.Highlight
	Notes(ctx context.Context) []domain.Note
}

// RemoteData is the account-side view the coordinator writes to.
type RemoteData interface {
	CountFavorites(ctx context.Context, userID string) (int, error)
	InsertFavorites(ctx context.Context, userID string, items []domain.Favorite) error
	CountHighlights(ctx context.Context, userID string) (int, error)
	InsertHighlights(ctx context.Context, userID string, items []domain.Highlight) error
	CountNotes(ctx context.Context, userID string) (int, error)
	InsertNotes(ctx context.Context, userID string, items []domain.Note) error
}

// Coordinator runs the device-to-account transfer at most once per user on
// this device. The rules, per annotation kind:
//
//   - a kind transfers only when the account side has zero rows of it, so
//     an account that already holds data is never overwritten;
//   - a failed count or insert skips that kind, the others still run;
//   - the per-user marker is set unconditionally at the end, even after a
//     partial failure, so the transfer never retries on this device.
type Coordinator struct {
	local  LocalData
	remote RemoteData
	log    logger.Logger
	newID  func() string
}

func New(local LocalData, remote RemoteData, log logger.Logger) *Coordinator {
	return &Coordinator{
		local:  local,
		remote: remote,
		log:    log,
		newID:  uuid.NewString,
	}
}

// Run executes the transfer for a user. Safe to call on every sign-in.
func (c *Coordinator) Run(ctx context.Context, userID string) {
	if c.local.Migrated(ctx, userID) {
		return
	}

	favorites := c.local.Favorites(ctx)
	highlights := c.local.Highlights(ctx)
	notes := c.local.Notes(ctx)

	if len(favorites) == 0 && len(highlights) == 0 && len(notes) == 0 {
		c.markDone(ctx, userID)
		return
	}

	c.log.Info("migrating device annotations to account",
		logger.String("user_id", userID),
		logger.Int("favorites", len(favorites)),
		logger.Int("highlights", len(highlights)),
		logger.Int("notes", len(notes)))

	c.transferFavorites(ctx, userID, favorites)
	c.transferHighlights(ctx, userID, highlights)
	c.transferNotes(ctx, userID, notes)

	c.markDone(ctx, userID)
}

func (c *Coordinator) transferFavorites(ctx context.Context, userID string, items []domain.Favorite) {
	if len(items) == 0 {
		return
	}
	count, err := c.remote.CountFavorites(ctx, userID)
	if err != nil {
		c.log.Warn("skipping favorites transfer", logger.Error(err))
		return
	}
	if count > 0 {
		return
	}
	if err := c.remote.InsertFavorites(ctx, userID, items); err != nil {
		c.log.Warn("favorites transfer failed", logger.Error(err))
	}
}

func (c *Coordinator) transferHighlights(ctx context.Context, userID string, items []domain.Highlight) {
	if len(items) == 0 {
		return
	}
	count, err := c.remote.CountHighlights(ctx, userID)
	if err != nil {
		c.log.Warn("skipping highlights transfer", logger.Error(err))
		return
	}
	if count > 0 {
		return
	}
	// Device-assigned ids are replaced so transfers from several devices
	// can never collide in the account store.
	fresh := make([]domain.Highlight, len(items))
	for i, h := range items {
		h.ID = c.newID()
		fresh[i] = h
	}
	if err := c.remote.InsertHighlights(ctx, userID, fresh); err != nil {
		c.log.Warn("highlights transfer failed", logger.Error(err))
	}
}

func (c *Coordinator) transferNotes(ctx context.Context, userID string, items []domain.Note) {
	if len(items) == 0 {
		return
	}
	count, err := c.remote.CountNotes(ctx, userID)
	if err != nil {
		c.log.Warn("skipping notes transfer", logger.Error(err))
		return
	}
	if count > 0 {
		return
	}
	fresh := make([]domain.Note, len(items))
	for i, n := range items {
		n.ID = c.newID()
		fresh[i] = n
	}
	if err := c.remote.InsertNotes(ctx, userID, fresh); err != nil {
		c.log.Warn("notes transfer failed", logger.Error(err))
	}
}

func (c *Coordinator) markDone(ctx context.Context, userID string) {
	if err := c.local.SetMigrated(ctx, userID); err != nil {
		c.log.Error("failed to set migration marker",
			logger.String("user_id", userID),
			logger.Error(err))
	}
}
