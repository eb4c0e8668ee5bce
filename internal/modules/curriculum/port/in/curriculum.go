package in

import (
	"context"

	"sukhan/internal/modules/curriculum/dto"
)

type Usecase interface {
	ListUnits(ctx context.Context) ([]dto.UnitSummaryOutput, error)
	GetUnit(ctx context.Context, unitID string) (dto.UnitOutput, error)
	ResolveWords(ctx context.Context, refs []dto.WordRef) ([]dto.WordOutput, error)
	LookupWord(ctx context.Context, ref dto.WordRef) (dto.WordOutput, error)
}
