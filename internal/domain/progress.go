package domain

import "time"

// ReadingProgress is the per-plan progress record: the derived current day
// plus the set of chapters the reader has checked off. One record exists
// per plan id per owner.
type ReadingProgress struct {
	PlanID            string          `json:"plan_id"`
	CurrentDay        int             `json:"current_day"`
	CompletedChapters map[string]bool `json:"completed_chapters"`
	StartedAt         time.Time       `json:"started_at,omitempty"`
	FinishedAt        *time.Time      `json:"finished_at,omitempty"`
}

// ReadingSettings are device-local display preferences. They are never
// synced to the remote store.
type ReadingSettings struct {
	Translation string  `json:"translation"`
	FontScale   float64 `json:"font_scale"`
	Theme       string  `json:"theme"`
}
