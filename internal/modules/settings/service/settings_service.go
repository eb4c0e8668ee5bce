package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"sukhan/internal/modules/settings/domain"
	settingsout "sukhan/internal/modules/settings/port/out"
	apperrors "sukhan/internal/platform/errors"
)

type SettingsService struct {
	store settingsout.SettingsStore
	log   logrus.FieldLogger
}

func NewSettingsService(store settingsout.SettingsStore, log logrus.FieldLogger) *SettingsService {
	return &SettingsService{store: store, log: log}
}

func (s *SettingsService) Get(ctx context.Context) domain.Settings {
	settings, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.log.WithError(err).Warn("settings unreadable, using defaults")
		}
		return domain.Defaults()
	}
	normalized := settings.Normalize()
	if normalized != settings {
		s.log.WithField("pronunciation_display", settings.PronunciationDisplay).Warn("unknown setting value, using default")
	}
	return normalized
}

func (s *SettingsService) SetPronunciationDisplay(ctx context.Context, display domain.PronunciationDisplay) (domain.Settings, error) {
	settings := s.Get(ctx)
	settings.PronunciationDisplay = display
	if err := s.store.Save(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
