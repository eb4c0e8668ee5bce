package in

import (
	"context"

	curriculumdto "sukhan/internal/modules/curriculum/dto"
	"sukhan/internal/modules/srs/dto"
)

type Usecase interface {
	MarkWordSeen(ctx context.Context, ref curriculumdto.WordRef) (dto.WordStateOutput, error)
	RateWord(ctx context.Context, input dto.RateInput) (dto.WordStateOutput, error)
	GetWordData(ctx context.Context, ref curriculumdto.WordRef) (dto.WordStateOutput, bool)
	GetHardWords(ctx context.Context, refs []curriculumdto.WordRef) []curriculumdto.WordRef
	GetEasyWords(ctx context.Context, refs []curriculumdto.WordRef) []curriculumdto.WordRef
	GetDueWords(ctx context.Context, refs []curriculumdto.WordRef) []curriculumdto.WordRef
	ResetWordProgress(ctx context.Context) error
}
