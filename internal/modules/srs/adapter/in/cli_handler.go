package in

import (
	"context"

	curriculumdto "sukhan/internal/modules/curriculum/dto"
	"sukhan/internal/modules/srs/dto"
	srsin "sukhan/internal/modules/srs/port/in"
)

type CLIHandler struct {
	usecase srsin.Usecase
}

func NewCLIHandler(usecase srsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Seen(ctx context.Context, wordID string) (dto.WordStateOutput, error) {
	ref, err := curriculumdto.ParseWordID(wordID)
	if err != nil {
		return dto.WordStateOutput{}, err
	}
	return h.usecase.MarkWordSeen(ctx, ref)
}

func (h CLIHandler) Rate(ctx context.Context, wordID, rating string) (dto.WordStateOutput, error) {
	ref, err := curriculumdto.ParseWordID(wordID)
	if err != nil {
		return dto.WordStateOutput{}, err
	}
	return h.usecase.RateWord(ctx, dto.RateInput{Ref: ref, Rating: rating})
}

// Show returns the tracked state of a word; ok is false for untracked words.
func (h CLIHandler) Show(ctx context.Context, wordID string) (dto.WordStateOutput, bool, error) {
	ref, err := curriculumdto.ParseWordID(wordID)
	if err != nil {
		return dto.WordStateOutput{}, false, err
	}
	state, ok := h.usecase.GetWordData(ctx, ref)
	return state, ok, nil
}

func (h CLIHandler) Due(ctx context.Context, refs []curriculumdto.WordRef) []curriculumdto.WordRef {
	return h.usecase.GetDueWords(ctx, refs)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.ResetWordProgress(ctx)
}
