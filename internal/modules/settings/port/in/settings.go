package in

import (
	"context"

	"sukhan/internal/modules/settings/dto"
)

type Usecase interface {
	GetSettings(ctx context.Context) dto.SettingsOutput
	UpdateSettings(ctx context.Context, input dto.UpdateSettingsInput) (dto.SettingsOutput, error)
}
