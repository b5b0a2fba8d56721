package migration

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/logger"
)

type fakeLocal struct {
	migrated   map[string]bool
	favorites  []domain.Favorite
	highlights []domain.Highlight
	notes      []domain.Note
	reads      int
}

func newFakeLocal() *fakeLocal {
	return &fakeLocal{migrated: map[string]bool{}}
}

func (l *fakeLocal) Migrated(_ context.Context, userID string) bool { return l.migrated[userID] }
func (l *fakeLocal) SetMigrated(_ context.Context, userID string) error {
	l.migrated[userID] = true
	return nil
}
func (l *fakeLocal) Favorites(context.Context) []domain.Favorite {
	l.reads++
	return l.favorites
}
func (l *fakeLocal) Highlights(context.Context) []domain.Highlight { return l.highlights }
func (l *fakeLocal) Notes(context.Context) []domain.Note           { return l.notes }

type fakeRemote struct {
	favoriteCount  int
	highlightCount int
	noteCount      int
	countErr       error
	insertErr      error

	favorites  []domain.Favorite
	highlights []domain.Highlight
	notes      []domain.Note
}

func (r *fakeRemote) CountFavorites(context.Context, string) (int, error) {
	return r.favoriteCount, r.countErr
}
func (r *fakeRemote) InsertFavorites(_ context.Context, _ string, items []domain.Favorite) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.favorites = append(r.favorites, items...)
	return nil
}
func (r *fakeRemote) CountHighlights(context.Context, string) (int, error) {
	return r.highlightCount, r.countErr
}
func (r *fakeRemote) InsertHighlights(_ context.Context, _ string, items []domain.Highlight) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.highlights = append(r.highlights, items...)
	return nil
}
func (r *fakeRemote) CountNotes(context.Context, string) (int, error) {
	return r.noteCount, r.countErr
}
func (r *fakeRemote) InsertNotes(_ context.Context, _ string, items []domain.Note) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.notes = append(r.notes, items...)
	return nil
}

func newTestCoordinator(local *fakeLocal, remote *fakeRemote) *Coordinator {
	ids := 0
	return &Coordinator{
		local:  local,
		remote: remote,
		log:    logger.New("error", false),
		newID: func() string {
			ids++
			return fmt.Sprintf("fresh-%d", ids)
		},
	}
}

func TestRunTransfersOnce(t *testing.T) {
	local := newFakeLocal()
	local.favorites = []domain.Favorite{{Book: 1, Chapter: 1, Verse: 1}}
	local.highlights = []domain.Highlight{{ID: "device-1", Book: 1, Chapter: 1, VerseStart: 1, VerseEnd: 2, Color: domain.ColorBlue}}
	remote := &fakeRemote{}
	c := newTestCoordinator(local, remote)
	ctx := context.Background()

	c.Run(ctx, "user-1")

	if len(remote.favorites) != 1 || len(remote.highlights) != 1 {
		t.Fatalf("expected transfer: favorites=%d highlights=%d",
			len(remote.favorites), len(remote.highlights))
	}
	if !local.migrated["user-1"] {
		t.Fatal("marker should be set after transfer")
	}

	// A second run must not touch the local collections again.
	reads := local.reads
	c.Run(ctx, "user-1")
	if local.reads != reads {
		t.Error("second run should return before reading device data")
	}
	if len(remote.favorites) != 1 {
		t.Errorf("second run must not re-transfer, got %d favorites", len(remote.favorites))
	}
}

func TestRunAssignsFreshIDs(t *testing.T) {
	local := newFakeLocal()
	local.highlights = []domain.Highlight{{ID: "device-1", Book: 1, Chapter: 1, VerseStart: 1, VerseEnd: 1, Color: domain.ColorGray}}
	local.notes = []domain.Note{{ID: "device-2", Book: 1, Chapter: 1, Verse: 1, Content: "x"}}
	remote := &fakeRemote{}
	c := newTestCoordinator(local, remote)

	c.Run(context.Background(), "user-1")

	if remote.highlights[0].ID == "device-1" {
		t.Error("highlight id should be re-assigned during transfer")
	}
	if remote.notes[0].ID == "device-2" {
		t.Error("note id should be re-assigned during transfer")
	}
}

func TestRunSkipsNonEmptyRemoteKind(t *testing.T) {
	local := newFakeLocal()
	local.favorites = []domain.Favorite{{Book: 1, Chapter: 1, Verse: 1}}
	local.notes = []domain.Note{{ID: "n1", Book: 1, Chapter: 1, Verse: 1, Content: "x"}}
	remote := &fakeRemote{favoriteCount: 3}
	c := newTestCoordinator(local, remote)

	c.Run(context.Background(), "user-1")

	if len(remote.favorites) != 0 {
		t.Error("favorites must not be transferred when the account already has some")
	}
	if len(remote.notes) != 1 {
		t.Error("other kinds should still transfer")
	}
	if !local.migrated["user-1"] {
		t.Error("marker should still be set")
	}
}

func TestRunMarksEvenOnFailure(t *testing.T) {
	local := newFakeLocal()
	local.favorites = []domain.Favorite{{Book: 1, Chapter: 1, Verse: 1}}
	remote := &fakeRemote{insertErr: errors.New("account store down")}
	c := newTestCoordinator(local, remote)

	c.Run(context.Background(), "user-1")

	if len(remote.favorites) != 0 {
		t.Fatal("insert failed, nothing should be stored")
	}
	if !local.migrated["user-1"] {
		t.Error("marker is set even after a failed transfer")
	}
}

func TestRunEmptyDeviceJustMarks(t *testing.T) {
	local := newFakeLocal()
	remote := &fakeRemote{}
	c := newTestCoordinator(local, remote)

	c.Run(context.Background(), "user-1")

	if len(remote.favorites)+len(remote.highlights)+len(remote.notes) != 0 {
		t.Error("nothing to transfer from an empty device")
	}
	if !local.migrated["user-1"] {
		t.Error("marker should be set for an empty device too")
	}
}

func TestRunMarkerIsPerUser(t *testing.T) {
	local := newFakeLocal()
	local.favorites = []domain.Favorite{{Book: 1, Chapter: 1, Verse: 1}}
	remote := &fakeRemote{}
	c := newTestCoordinator(local, remote)
	ctx := context.Background()

	c.Run(ctx, "user-1")
	c.Run(ctx, "user-2")

	if !local.migrated["user-1"] || !local.migrated["user-2"] {
		t.Error("each user gets their own marker")
	}
	if len(remote.favorites) != 2 {
		t.Errorf("each user's sign-in triggers a transfer, got %d favorites", len(remote.favorites))
	}
}
