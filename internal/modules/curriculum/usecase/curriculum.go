package usecase

import (
	"context"
	"fmt"

	"sukhan/internal/modules/curriculum/domain"
	"sukhan/internal/modules/curriculum/dto"
	curriculumin "sukhan/internal/modules/curriculum/port/in"
	"sukhan/internal/modules/curriculum/service"
	apperrors "sukhan/internal/platform/errors"
)

type Interactor struct {
	svc *service.CurriculumService
}

func NewInteractor(svc *service.CurriculumService) curriculumin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListUnits(ctx context.Context) ([]dto.UnitSummaryOutput, error) {
	units, err := i.svc.ListUnits(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitSummaryOutput, 0, len(units))
	for _, unit := range units {
		out = append(out, dto.UnitSummaryOutput{
			ID:          unit.ID,
			Title:       unit.Title,
			LessonCount: len(unit.Lessons),
			WordCount:   unit.WordCount(),
		})
	}
	return out, nil
}

func (i *Interactor) GetUnit(ctx context.Context, unitID string) (dto.UnitOutput, error) {
	unit, err := i.svc.GetUnit(ctx, unitID)
	if err != nil {
		return dto.UnitOutput{}, err
	}
	lessons := make([]dto.LessonOutput, 0, len(unit.Lessons))
	for _, lesson := range unit.Lessons {
		lessons = append(lessons, dto.LessonOutput{
			ID:          lesson.ID,
			Title:       lesson.Title,
			Description: lesson.Description,
			Words:       append([]domain.WordRef(nil), lesson.Words...),
		})
	}
	return dto.UnitOutput{ID: unit.ID, Title: unit.Title, Description: unit.Description, Lessons: lessons}, nil
}

func (i *Interactor) ResolveWords(ctx context.Context, refs []domain.WordRef) ([]dto.WordOutput, error) {
	kept, words, err := i.svc.Resolve(ctx, refs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WordOutput, 0, len(kept))
	for idx, ref := range kept {
		out = append(out, toWordOutput(ref, words[idx]))
	}
	return out, nil
}

func (i *Interactor) LookupWord(ctx context.Context, ref domain.WordRef) (dto.WordOutput, error) {
	resolved, err := i.ResolveWords(ctx, []domain.WordRef{ref})
	if err != nil {
		return dto.WordOutput{}, err
	}
	if len(resolved) == 0 {
		return dto.WordOutput{}, fmt.Errorf("word %s: %w", ref.ID(), apperrors.ErrNotFound)
	}
	return resolved[0], nil
}

func toWordOutput(ref domain.WordRef, word domain.Word) dto.WordOutput {
	return dto.WordOutput{
		Ref:                   ref,
		WordID:                ref.ID(),
		Tajik:                 word.Tajik,
		English:               word.English,
		Russian:               word.Russian,
		PronunciationLatin:    word.PronunciationLatin,
		PronunciationCyrillic: word.PronunciationCyrillic,
	}
}
