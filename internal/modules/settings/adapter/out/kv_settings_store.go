package out

import (
	"context"

	"sukhan/internal/modules/settings/domain"
	settingsout "sukhan/internal/modules/settings/port/out"
	"sukhan/internal/platform/kvstore"
)

const SettingsKey = "sukhan_settings"

type KVSettingsStore struct {
	store kvstore.Store
}

func NewKVSettingsStore(store kvstore.Store) settingsout.SettingsStore {
	return &KVSettingsStore{store: store}
}

type settingsRecord struct {
	PronunciationDisplay string `json:"pronunciationDisplay,omitempty"`
}

// Load decodes the stored record over the defaults, so missing fields keep
// their default values.
func (s *KVSettingsStore) Load(ctx context.Context) (domain.Settings, error) {
	defaults := domain.Defaults()
	record := settingsRecord{PronunciationDisplay: string(defaults.PronunciationDisplay)}
	if err := kvstore.GetJSON(ctx, s.store, SettingsKey, &record); err != nil {
		return defaults, err
	}
	return domain.Settings{PronunciationDisplay: domain.PronunciationDisplay(record.PronunciationDisplay)}, nil
}

func (s *KVSettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	return kvstore.SetJSON(ctx, s.store, SettingsKey, settingsRecord{
		PronunciationDisplay: string(settings.PronunciationDisplay),
	})
}
