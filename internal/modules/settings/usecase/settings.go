package usecase

import (
	"context"

	"sukhan/internal/modules/settings/domain"
	"sukhan/internal/modules/settings/dto"
	settingsin "sukhan/internal/modules/settings/port/in"
	"sukhan/internal/modules/settings/service"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetSettings(ctx context.Context) dto.SettingsOutput {
	return toOutput(i.svc.Get(ctx))
}

func (i *Interactor) UpdateSettings(ctx context.Context, input dto.UpdateSettingsInput) (dto.SettingsOutput, error) {
	if input.PronunciationDisplay == nil {
		return i.GetSettings(ctx), nil
	}
	display, err := domain.ParsePronunciationDisplay(*input.PronunciationDisplay)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	settings, err := i.svc.SetPronunciationDisplay(ctx, display)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func toOutput(settings domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{
		PronunciationDisplay: string(settings.PronunciationDisplay),
		ShowLatin:            settings.PronunciationDisplay.ShowLatin(),
		ShowCyrillic:         settings.PronunciationDisplay.ShowCyrillic(),
	}
}
