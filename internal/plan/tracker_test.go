package plan

import (
	"testing"
	"time"
)

func fixedTracker(t time.Time) *Tracker {
	return &Tracker{TimeNow: func() time.Time { return t }}
}

func TestCurrentDay(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"new year's day", time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC), 0},
		{"february first", time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), 31},
		{"mid year", time.Date(2025, time.July, 2, 12, 0, 0, 0, time.UTC), 182},
		{"new year's eve", time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC), 364},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fixedTracker(tt.now).CurrentDay(); got != tt.want {
				t.Errorf("CurrentDay() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"start of year", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
		{"mid year", time.Date(2025, time.July, 2, 12, 0, 0, 0, time.UTC), 50},
		{"end of year", time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fixedTracker(tt.now).Percentage(); got != tt.want {
				t.Errorf("Percentage() = %d, want %d", got, tt.want)
			}
		})
	}
}
