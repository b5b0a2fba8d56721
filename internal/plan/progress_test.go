package plan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/logger"
)

type fakeProgressBackend struct {
	records map[string]domain.ReadingProgress
	saveErr error
}

func (b *fakeProgressBackend) Load(_ context.Context, planID string) (domain.ReadingProgress, bool, error) {
	rec, ok := b.records[planID]
	return rec, ok, nil
}
func (b *fakeProgressBackend) Save(_ context.Context, rec domain.ReadingProgress) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	b.records[rec.PlanID] = rec
	return nil
}

type signedOut struct{}

func (signedOut) Owner() (string, bool) { return "", false }

func newTestProgress(backend progressBackend, now time.Time) *Progress {
	return &Progress{
		plans:   []Plan{Canonical},
		tracker: fixedTracker(now),
		local:   backend,
		session: signedOut{},
		log:     logger.New("error", false),
		now:     func() time.Time { return now },
	}
}

func TestGetCreatesEmptyRecord(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	p := newTestProgress(&fakeProgressBackend{records: map[string]domain.ReadingProgress{}}, now)

	rec, err := p.Get(context.Background(), Canonical.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec.PlanID != Canonical.ID || len(rec.CompletedChapters) != 0 {
		t.Errorf("unexpected fresh record: %+v", rec)
	}
	if rec.CurrentDay != 59 {
		t.Errorf("CurrentDay should come from the clock, got %d", rec.CurrentDay)
	}
}

func TestGetRefreshesCurrentDay(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	backend := &fakeProgressBackend{records: map[string]domain.ReadingProgress{
		Canonical.ID: {PlanID: Canonical.ID, CurrentDay: 3},
	}}
	p := newTestProgress(backend, now)

	rec, err := p.Get(context.Background(), Canonical.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec.CurrentDay != 59 {
		t.Errorf("stored current day must be ignored, got %d", rec.CurrentDay)
	}
}

func TestGetRejectsUnknownPlan(t *testing.T) {
	p := newTestProgress(&fakeProgressBackend{records: map[string]domain.ReadingProgress{}}, time.Now())
	if _, err := p.Get(context.Background(), "nope"); !errors.Is(err, ErrUnknownPlan) {
		t.Fatalf("expected ErrUnknownPlan, got %v", err)
	}
}

func TestMarkChapter(t *testing.T) {
	backend := &fakeProgressBackend{records: map[string]domain.ReadingProgress{}}
	p := newTestProgress(backend, time.Now())
	ctx := context.Background()

	rec, err := p.MarkChapter(ctx, Canonical.ID, 1, 1, true)
	if err != nil {
		t.Fatalf("MarkChapter failed: %v", err)
	}
	if !rec.CompletedChapters[domain.ChapterKey(1, 1)] {
		t.Error("chapter should be checked off")
	}
	if !backend.records[Canonical.ID].CompletedChapters[domain.ChapterKey(1, 1)] {
		t.Error("record should be persisted")
	}

	rec, err = p.MarkChapter(ctx, Canonical.ID, 1, 1, false)
	if err != nil {
		t.Fatalf("MarkChapter failed: %v", err)
	}
	if rec.CompletedChapters[domain.ChapterKey(1, 1)] {
		t.Error("chapter should be unchecked again")
	}
}

func TestFinishStampsRecord(t *testing.T) {
	now := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	backend := &fakeProgressBackend{records: map[string]domain.ReadingProgress{}}
	p := newTestProgress(backend, now)

	rec, err := p.Finish(context.Background(), Canonical.ID)
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if rec.FinishedAt == nil || !rec.FinishedAt.Equal(now) {
		t.Errorf("FinishedAt not stamped: %+v", rec.FinishedAt)
	}
}
