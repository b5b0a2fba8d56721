package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/store/local"
	"github.com/selahapp/selah/internal/store/remote"
)

var ErrUnknownPlan = errors.New("unknown reading plan")

// Source reports the signed-in account, if any.
type Source interface {
	Owner() (string, bool)
}

type progressBackend interface {
	Load(ctx context.Context, planID string) (domain.ReadingProgress, bool, error)
	Save(ctx context.Context, rec domain.ReadingProgress) error
}

type localProgress struct{ store *local.Store }

func (b localProgress) Load(ctx context.Context, planID string) (domain.ReadingProgress, bool, error) {
	rec, ok := b.store.Progress(ctx, planID)
	return rec, ok, nil
}
func (b localProgress) Save(ctx context.Context, rec domain.ReadingProgress) error {
	return b.store.SaveProgress(ctx, rec)
}

type remoteProgress struct {
	store *remote.Store
	owner string
}

func (b remoteProgress) Load(ctx context.Context, planID string) (domain.ReadingProgress, bool, error) {
	rec, err := b.store.Progress(ctx, b.owner, planID)
	if errors.Is(err, remote.ErrNotFound) {
		return domain.ReadingProgress{}, false, nil
	}
	if err != nil {
		return domain.ReadingProgress{}, false, err
	}
	return rec, true, nil
}
func (b remoteProgress) Save(ctx context.Context, rec domain.ReadingProgress) error {
	return b.store.SaveProgress(ctx, b.owner, rec)
}

// Progress manages per-plan progress records. The record's current day is
// never trusted from storage; it is refreshed from the tracker on every
// read.
type Progress struct {
	plans   []Plan
	tracker *Tracker

	local   progressBackend
	remote  func(owner string) progressBackend
	session Source
	log     logger.Logger
	now     func() time.Time
}

func NewProgress(plans []Plan, tracker *Tracker, ls *local.Store, rs *remote.Store, session Source, log logger.Logger) *Progress {
	p := &Progress{
		plans:   plans,
		tracker: tracker,
		local:   localProgress{store: ls},
		session: session,
		log:     log,
		now:     time.Now,
	}
	if rs != nil {
		p.remote = func(owner string) progressBackend {
			return remoteProgress{store: rs, owner: owner}
		}
	}
	return p
}

func (p *Progress) backend() progressBackend {
	if p.remote != nil {
		if owner, ok := p.session.Owner(); ok {
			return p.remote(owner)
		}
	}
	return p.local
}

// Plans returns the configured reading plans.
func (p *Progress) Plans() []Plan {
	return p.plans
}

// Get returns the progress record for a plan, creating an empty one on
// first access.
func (p *Progress) Get(ctx context.Context, planID string) (domain.ReadingProgress, error) {
	if _, ok := ByID(p.plans, planID); !ok {
		return domain.ReadingProgress{}, fmt.Errorf("%w: %s", ErrUnknownPlan, planID)
	}

	rec, found, err := p.backend().Load(ctx, planID)
	if err != nil {
		return domain.ReadingProgress{}, err
	}
	if !found {
		rec = domain.ReadingProgress{
			PlanID:            planID,
			CompletedChapters: map[string]bool{},
			StartedAt:         p.now(),
		}
	}
	if rec.CompletedChapters == nil {
		rec.CompletedChapters = map[string]bool{}
	}
	rec.CurrentDay = p.tracker.CurrentDay()
	return rec, nil
}

// MarkChapter checks a chapter off (or back on) and persists the record.
func (p *Progress) MarkChapter(ctx context.Context, planID string, book, chapter int, done bool) (domain.ReadingProgress, error) {
	rec, err := p.Get(ctx, planID)
	if err != nil {
		return domain.ReadingProgress{}, err
	}

	key := domain.ChapterKey(book, chapter)
	if done {
		rec.CompletedChapters[key] = true
	} else {
		delete(rec.CompletedChapters, key)
	}

	if err := p.backend().Save(ctx, rec); err != nil {
		return domain.ReadingProgress{}, fmt.Errorf("failed to save progress: %w", err)
	}
	return rec, nil
}

// Finish stamps a plan as completed.
func (p *Progress) Finish(ctx context.Context, planID string) (domain.ReadingProgress, error) {
	rec, err := p.Get(ctx, planID)
	if err != nil {
		return domain.ReadingProgress{}, err
	}

	at := p.now()
	rec.FinishedAt = &at
	if err := p.backend().Save(ctx, rec); err != nil {
		return domain.ReadingProgress{}, fmt.Errorf("failed to save progress: %w", err)
	}
	return rec, nil
}

// Percentage returns how far through the year the tracker currently sits.
func (p *Progress) Percentage() int {
	return p.tracker.Percentage()
}
