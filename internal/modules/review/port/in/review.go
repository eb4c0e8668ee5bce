package in

import (
	"context"

	"sukhan/internal/modules/review/dto"
)

type Usecase interface {
	GetMidUnitReviewWords(ctx context.Context, unitID string, afterLessonIndex int) (dto.WordSetOutput, error)
	GetEndUnitReviewWords(ctx context.Context, unitID string) (dto.WordSetOutput, error)
	GetQuizWords(ctx context.Context, unitID string) (dto.QuizOutput, error)
	ShuffleTranslations(translations []string) []string
	GradeQuiz(ctx context.Context, input dto.GradeInput) (dto.GradeOutput, error)
}
