package deps

import (
	"context"
	"time"

	"github.com/selahapp/selah/internal/annotations"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/migration"
	"github.com/selahapp/selah/internal/plan"
	"github.com/selahapp/selah/internal/scripture"
	"github.com/selahapp/selah/internal/session"
	"github.com/selahapp/selah/internal/store/local"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Favorites  *annotations.Favorites
	Highlights *annotations.Highlights
	Notes      *annotations.Notes
	Progress   *plan.Progress
	Scripture  *scripture.Provider
	Local      *local.Store

	// Session and Migrator are nil when no remote store is configured;
	// the app then runs in signed-out mode only.
	Session  *session.Manager
	Migrator *migration.Coordinator

	// Reload re-reads all annotation services from the current backend.
	// Called after sign-in, sign-out and migration.
	Reload func(ctx context.Context)
}
