package in

import (
	"context"
	"fmt"

	"sukhan/internal/modules/settings/dto"
	settingsin "sukhan/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) dto.SettingsOutput {
	return h.usecase.GetSettings(ctx)
}

// Set updates one setting by its record key.
func (h CLIHandler) Set(ctx context.Context, key, value string) (dto.SettingsOutput, error) {
	switch key {
	case "pronunciationDisplay", "pronunciation-display":
		return h.usecase.UpdateSettings(ctx, dto.UpdateSettingsInput{PronunciationDisplay: &value})
	default:
		return dto.SettingsOutput{}, fmt.Errorf("unknown setting %q", key)
	}
}
