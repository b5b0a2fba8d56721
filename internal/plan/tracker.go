package plan

import (
	"math"
	"time"
)

// Tracker derives the calendar position within a one-year reading plan.
// The current day is not stored anywhere; it is recomputed from the wall
// clock on every read, so it is always day-of-year regardless of when the
// reader actually started.
type Tracker struct {
	TimeNow func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{TimeNow: time.Now}
}

// CurrentDay returns the zero-based day of the current calendar year.
func (t *Tracker) CurrentDay() int {
	now := t.TimeNow()
	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return int(now.Sub(jan1).Hours() / 24)
}

// Percentage returns how far through the year the current day is, rounded
// to the nearest whole percent.
func (t *Tracker) Percentage() int {
	return int(math.Round(float64(t.CurrentDay()) / DefaultDays * 100))
}
