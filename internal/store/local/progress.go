package local

import (
	"context"

	"github.com/selahapp/selah/internal/domain"
)

// Progress returns the stored record for a reading plan.
func (s *Store) Progress(ctx context.Context, planID string) (domain.ReadingProgress, bool) {
	records := loadMap[domain.ReadingProgress](ctx, s, keyProgress)
	rec, ok := records[planID]
	return rec, ok
}

// SaveProgress upserts the record for its plan id.
func (s *Store) SaveProgress(ctx context.Context, rec domain.ReadingProgress) error {
	records := loadMap[domain.ReadingProgress](ctx, s, keyProgress)
	if records == nil {
		records = make(map[string]domain.ReadingProgress, 1)
	}
	records[rec.PlanID] = rec
	return saveMap(ctx, s, keyProgress, records)
}

// Settings returns the device reading settings.
func (s *Store) Settings(ctx context.Context) (domain.ReadingSettings, bool) {
	data, ok := s.get(ctx, keySettings)
	if !ok {
		return domain.ReadingSettings{}, false
	}
	var settings domain.ReadingSettings
	if err := unmarshalOrWarn(s, keySettings, data, &settings); err != nil {
		return domain.ReadingSettings{}, false
	}
	return settings, true
}

// SaveSettings persists the device reading settings.
func (s *Store) SaveSettings(ctx context.Context, settings domain.ReadingSettings) error {
	return saveValue(ctx, s, keySettings, settings)
}
