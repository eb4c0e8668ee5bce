package usecase

import (
	"context"
	"fmt"

	curriculumdto "sukhan/internal/modules/curriculum/dto"
	curriculumin "sukhan/internal/modules/curriculum/port/in"
	"sukhan/internal/modules/review/domain"
	"sukhan/internal/modules/review/dto"
	reviewin "sukhan/internal/modules/review/port/in"
	"sukhan/internal/modules/review/service"
	srsin "sukhan/internal/modules/srs/port/in"
	apperrors "sukhan/internal/platform/errors"
)

type Interactor struct {
	svc        *service.SelectorService
	curriculum curriculumin.Usecase
	srs        srsin.Usecase
}

func NewInteractor(svc *service.SelectorService, curriculum curriculumin.Usecase, srs srsin.Usecase) reviewin.Usecase {
	return &Interactor{svc: svc, curriculum: curriculum, srs: srs}
}

func (i *Interactor) GetMidUnitReviewWords(ctx context.Context, unitID string, afterLessonIndex int) (dto.WordSetOutput, error) {
	if afterLessonIndex < 0 {
		return dto.WordSetOutput{}, fmt.Errorf("%w: lesson index %d", apperrors.ErrInvalidInput, afterLessonIndex)
	}
	covered, err := i.covered(ctx, unitID, afterLessonIndex)
	if err != nil {
		return dto.WordSetOutput{}, err
	}
	refs := refsOf(covered)
	picked := i.svc.MidReview(refs, i.srs.GetHardWords(ctx, refs), i.srs.GetEasyWords(ctx, refs))
	return dto.WordSetOutput{UnitID: unitID, Words: pick(covered, picked)}, nil
}

func (i *Interactor) GetEndUnitReviewWords(ctx context.Context, unitID string) (dto.WordSetOutput, error) {
	covered, err := i.covered(ctx, unitID, -1)
	if err != nil {
		return dto.WordSetOutput{}, err
	}
	refs := refsOf(covered)
	picked := i.svc.EndReview(refs, i.srs.GetHardWords(ctx, refs))
	return dto.WordSetOutput{UnitID: unitID, Words: pick(covered, picked)}, nil
}

func (i *Interactor) GetQuizWords(ctx context.Context, unitID string) (dto.QuizOutput, error) {
	covered, err := i.covered(ctx, unitID, -1)
	if err != nil {
		return dto.QuizOutput{}, err
	}
	words := pick(covered, i.svc.Quiz(refsOf(covered)))
	translations := make([]string, 0, len(words))
	for _, word := range words {
		translations = append(translations, word.English)
	}
	return dto.QuizOutput{
		UnitID:       unitID,
		Words:        words,
		Translations: i.svc.ShuffleTranslations(translations),
	}, nil
}

func (i *Interactor) ShuffleTranslations(translations []string) []string {
	return i.svc.ShuffleTranslations(translations)
}

func (i *Interactor) GradeQuiz(ctx context.Context, input dto.GradeInput) (dto.GradeOutput, error) {
	resolved, err := i.curriculum.ResolveWords(ctx, input.Words)
	if err != nil {
		return dto.GradeOutput{}, err
	}
	if len(resolved) != len(input.Words) {
		return dto.GradeOutput{}, fmt.Errorf("%w: quiz references unknown words", apperrors.ErrInvalidInput)
	}
	expected := make([]string, 0, len(resolved))
	for _, word := range resolved {
		expected = append(expected, word.English)
	}
	result, passed := i.svc.Grade(expected, input.Translations, input.Answers)
	return dto.GradeOutput{
		Correct: result.Correct,
		Total:   result.Total,
		Ratio:   result.Ratio(),
		Passed:  passed,
	}, nil
}

// covered resolves the words of lessons 0..upTo (the whole unit when upTo is
// negative). Refs missing from the dictionary are dropped.
func (i *Interactor) covered(ctx context.Context, unitID string, upTo int) ([]curriculumdto.WordOutput, error) {
	unit, err := i.curriculum.GetUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	lessons := make([][]curriculumdto.WordRef, 0, len(unit.Lessons))
	for _, lesson := range unit.Lessons {
		lessons = append(lessons, lesson.Words)
	}
	if upTo < 0 {
		upTo = len(lessons) - 1
	}
	return i.curriculum.ResolveWords(ctx, domain.WordsUpToLesson(lessons, upTo))
}

func refsOf(words []curriculumdto.WordOutput) []curriculumdto.WordRef {
	refs := make([]curriculumdto.WordRef, 0, len(words))
	for _, word := range words {
		refs = append(refs, word.Ref)
	}
	return refs
}

func pick(words []curriculumdto.WordOutput, refs []curriculumdto.WordRef) []curriculumdto.WordOutput {
	byRef := make(map[curriculumdto.WordRef]curriculumdto.WordOutput, len(words))
	for _, word := range words {
		byRef[word.Ref] = word
	}
	out := make([]curriculumdto.WordOutput, 0, len(refs))
	for _, ref := range refs {
		if word, ok := byRef[ref]; ok {
			out = append(out, word)
		}
	}
	return out
}
