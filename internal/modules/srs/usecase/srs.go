package usecase

import (
	"context"

	curriculumdto "sukhan/internal/modules/curriculum/dto"
	"sukhan/internal/modules/srs/domain"
	"sukhan/internal/modules/srs/dto"
	srsin "sukhan/internal/modules/srs/port/in"
	"sukhan/internal/modules/srs/service"
)

type Interactor struct {
	svc *service.SchedulerService
}

func NewInteractor(svc *service.SchedulerService) srsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) MarkWordSeen(ctx context.Context, ref curriculumdto.WordRef) (dto.WordStateOutput, error) {
	state, err := i.svc.MarkWordSeen(ctx, ref)
	if err != nil {
		return dto.WordStateOutput{}, err
	}
	return toOutput(ref, state), nil
}

func (i *Interactor) RateWord(ctx context.Context, input dto.RateInput) (dto.WordStateOutput, error) {
	rating, err := domain.ParseRating(input.Rating)
	if err != nil {
		return dto.WordStateOutput{}, err
	}
	state, err := i.svc.RateWord(ctx, input.Ref, rating)
	if err != nil {
		return dto.WordStateOutput{}, err
	}
	return toOutput(input.Ref, state), nil
}

func (i *Interactor) GetWordData(ctx context.Context, ref curriculumdto.WordRef) (dto.WordStateOutput, bool) {
	state, ok := i.svc.GetWordData(ctx, ref)
	if !ok {
		return dto.WordStateOutput{}, false
	}
	return toOutput(ref, state), true
}

func (i *Interactor) GetHardWords(ctx context.Context, refs []curriculumdto.WordRef) []curriculumdto.WordRef {
	return i.svc.HardWords(ctx, refs)
}

func (i *Interactor) GetEasyWords(ctx context.Context, refs []curriculumdto.WordRef) []curriculumdto.WordRef {
	return i.svc.EasyWords(ctx, refs)
}

func (i *Interactor) GetDueWords(ctx context.Context, refs []curriculumdto.WordRef) []curriculumdto.WordRef {
	return i.svc.DueWords(ctx, refs)
}

func (i *Interactor) ResetWordProgress(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func toOutput(ref curriculumdto.WordRef, state domain.WordState) dto.WordStateOutput {
	return dto.WordStateOutput{
		WordID:      ref.ID(),
		Rating:      state.Rating.String(),
		Interval:    state.Interval,
		Ease:        state.Ease,
		NextReview:  state.NextReview,
		ReviewCount: state.ReviewCount,
		LastSeen:    state.LastSeen,
	}
}
