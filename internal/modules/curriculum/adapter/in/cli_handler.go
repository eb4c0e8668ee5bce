package in

import (
	"context"

	"sukhan/internal/modules/curriculum/dto"
	curriculumin "sukhan/internal/modules/curriculum/port/in"
)

type CLIHandler struct {
	usecase curriculumin.Usecase
}

func NewCLIHandler(usecase curriculumin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListUnits(ctx context.Context) ([]dto.UnitSummaryOutput, error) {
	return h.usecase.ListUnits(ctx)
}

func (h CLIHandler) GetUnit(ctx context.Context, unitID string) (dto.UnitOutput, error) {
	return h.usecase.GetUnit(ctx, unitID)
}

func (h CLIHandler) LookupWord(ctx context.Context, wordID string) (dto.WordOutput, error) {
	ref, err := dto.ParseWordID(wordID)
	if err != nil {
		return dto.WordOutput{}, err
	}
	return h.usecase.LookupWord(ctx, ref)
}
