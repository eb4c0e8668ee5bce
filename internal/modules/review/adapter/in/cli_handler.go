package in

import (
	"context"

	"sukhan/internal/modules/review/dto"
	reviewin "sukhan/internal/modules/review/port/in"
)

type CLIHandler struct {
	usecase reviewin.Usecase
}

func NewCLIHandler(usecase reviewin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Mid takes a 1-based lesson number as typed by the user.
func (h CLIHandler) Mid(ctx context.Context, unitID string, afterLesson int) (dto.WordSetOutput, error) {
	return h.usecase.GetMidUnitReviewWords(ctx, unitID, afterLesson-1)
}

func (h CLIHandler) End(ctx context.Context, unitID string) (dto.WordSetOutput, error) {
	return h.usecase.GetEndUnitReviewWords(ctx, unitID)
}

func (h CLIHandler) Quiz(ctx context.Context, unitID string) (dto.QuizOutput, error) {
	return h.usecase.GetQuizWords(ctx, unitID)
}

func (h CLIHandler) Grade(ctx context.Context, input dto.GradeInput) (dto.GradeOutput, error) {
	return h.usecase.GradeQuiz(ctx, input)
}
