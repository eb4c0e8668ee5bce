package usecase

import (
	"context"
	"errors"
	"fmt"

	curriculumdto "sukhan/internal/modules/curriculum/dto"
	curriculumin "sukhan/internal/modules/curriculum/port/in"
	progressdto "sukhan/internal/modules/progress/dto"
	progressin "sukhan/internal/modules/progress/port/in"
	reviewdto "sukhan/internal/modules/review/dto"
	reviewin "sukhan/internal/modules/review/port/in"
	"sukhan/internal/modules/session/domain"
	sessiondto "sukhan/internal/modules/session/dto"
	sessionin "sukhan/internal/modules/session/port/in"
	sessionout "sukhan/internal/modules/session/port/out"
	"sukhan/internal/modules/session/service"
	settingsin "sukhan/internal/modules/settings/port/in"
	srsdto "sukhan/internal/modules/srs/dto"
	srsin "sukhan/internal/modules/srs/port/in"
	apperrors "sukhan/internal/platform/errors"
)

// Deps groups the modules a practice session drives.
type Deps struct {
	Curriculum curriculumin.Usecase
	Progress   progressin.Usecase
	Review     reviewin.Usecase
	SRS        srsin.Usecase
	Settings   settingsin.Usecase
}

type Interactor struct {
	svc         *service.SessionService
	deps        Deps
	activeStore sessionout.ActiveSessionStore
}

func NewInteractor(svc *service.SessionService, deps Deps, activeStore sessionout.ActiveSessionStore) sessionin.Usecase {
	return &Interactor{svc: svc, deps: deps, activeStore: activeStore}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error) {
	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return sessiondto.StartOutput{}, apperrors.ErrActiveSessionExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return sessiondto.StartOutput{}, err
	}

	unit, err := i.deps.Curriculum.GetUnit(ctx, input.UnitID)
	if err != nil {
		return sessiondto.StartOutput{}, err
	}
	cp, err := i.deps.Progress.GetCheckpoint(ctx, input.UnitID, input.CheckpointID)
	if err != nil {
		return sessiondto.StartOutput{}, err
	}
	if !cp.Enterable() {
		return sessiondto.StartOutput{}, fmt.Errorf("%s: %w", cp.ID, apperrors.ErrCheckpointLocked)
	}

	words, translations, err := i.cards(ctx, unit, cp)
	if err != nil {
		return sessiondto.StartOutput{}, err
	}
	wordIDs := make([]string, 0, len(words))
	for _, word := range words {
		wordIDs = append(wordIDs, word.WordID)
	}
	active, err := i.svc.Start(ctx, domain.ActiveSession{
		UnitID:          unit.ID,
		UnitTitle:       unit.Title,
		CheckpointID:    cp.ID,
		CheckpointKind:  domain.Kind(cp.Kind),
		CheckpointTitle: cp.Title,
		Words:           wordIDs,
		Translations:    translations,
	})
	if err != nil {
		return sessiondto.StartOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return sessiondto.StartOutput{}, err
	}

	settings := i.deps.Settings.GetSettings(ctx)
	out := sessiondto.StartOutput{
		SessionID:       active.SessionID,
		UnitID:          active.UnitID,
		CheckpointID:    active.CheckpointID,
		CheckpointKind:  string(active.CheckpointKind),
		CheckpointTitle: active.CheckpointTitle,
		StartedAt:       active.StartedAt,
		Cards:           make([]sessiondto.CardOutput, 0, len(words)),
		Translations:    translations,
	}
	for _, word := range words {
		card := sessiondto.CardOutput{WordID: word.WordID, Tajik: word.Tajik, English: word.English, Russian: word.Russian}
		if settings.ShowLatin {
			card.PronunciationLatin = word.PronunciationLatin
		}
		if settings.ShowCyrillic {
			card.PronunciationCyrillic = word.PronunciationCyrillic
		}
		out.Cards = append(out.Cards, card)
	}
	return out, nil
}

// cards builds the word list for a checkpoint. Lesson words are marked seen.
func (i *Interactor) cards(ctx context.Context, unit curriculumdto.UnitOutput, cp progressdto.CheckpointOutput) ([]curriculumdto.WordOutput, []string, error) {
	switch domain.Kind(cp.Kind) {
	case domain.KindLesson:
		if cp.LessonIndex < 0 || cp.LessonIndex >= len(unit.Lessons) {
			return nil, nil, fmt.Errorf("lesson %s: %w", cp.ID, apperrors.ErrNotFound)
		}
		words, err := i.deps.Curriculum.ResolveWords(ctx, unit.Lessons[cp.LessonIndex].Words)
		if err != nil {
			return nil, nil, err
		}
		for _, word := range words {
			if _, err := i.deps.SRS.MarkWordSeen(ctx, word.Ref); err != nil {
				return nil, nil, err
			}
		}
		return words, nil, nil
	case domain.KindReview:
		var set reviewdto.WordSetOutput
		var err error
		if cp.IsEndReview {
			set, err = i.deps.Review.GetEndUnitReviewWords(ctx, unit.ID)
		} else {
			set, err = i.deps.Review.GetMidUnitReviewWords(ctx, unit.ID, cp.AfterLessonIndex)
		}
		return set.Words, nil, err
	case domain.KindQuiz:
		quiz, err := i.deps.Review.GetQuizWords(ctx, unit.ID)
		return quiz.Words, quiz.Translations, err
	default:
		return nil, nil, fmt.Errorf("%w: checkpoint kind %q", apperrors.ErrInvalidInput, cp.Kind)
	}
}

func (i *Interactor) Rate(ctx context.Context, input sessiondto.RateInput) (sessiondto.RateOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.RateOutput{}, err
	}
	if active.CheckpointKind == domain.KindQuiz {
		return sessiondto.RateOutput{}, fmt.Errorf("%w: quiz words are answered when the session ends", apperrors.ErrInvalidInput)
	}
	if !active.HasWord(input.WordID) {
		return sessiondto.RateOutput{}, fmt.Errorf("%w: word %s is not part of this session", apperrors.ErrInvalidInput, input.WordID)
	}
	ref, err := curriculumdto.ParseWordID(input.WordID)
	if err != nil {
		return sessiondto.RateOutput{}, err
	}
	state, err := i.deps.SRS.RateWord(ctx, srsdto.RateInput{Ref: ref, Rating: input.Rating})
	if err != nil {
		return sessiondto.RateOutput{}, err
	}
	active.Record(input.WordID, state.Rating)
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return sessiondto.RateOutput{}, err
	}
	return sessiondto.RateOutput{
		WordID:     input.WordID,
		Rating:     state.Rating,
		Interval:   state.Interval,
		NextReview: state.NextReview,
		Remaining:  active.Remaining(),
	}, nil
}

func (i *Interactor) End(ctx context.Context, input sessiondto.EndInput) (sessiondto.EndOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.EndOutput{}, err
	}
	if input.SessionID != "" && input.SessionID != active.SessionID {
		return sessiondto.EndOutput{}, fmt.Errorf("%w: session id mismatch", apperrors.ErrInvalidInput)
	}

	completed := true
	var score *domain.QuizScore
	switch active.CheckpointKind {
	case domain.KindLesson:
		err = i.deps.Progress.MarkLessonComplete(ctx, active.CheckpointID)
	case domain.KindReview:
		err = i.deps.Progress.MarkReviewComplete(ctx, active.CheckpointID)
	case domain.KindQuiz:
		score, err = i.gradeQuiz(ctx, active, input.Answers)
		if err == nil {
			completed = score.Passed
			if completed {
				err = i.deps.Progress.MarkQuizComplete(ctx, active.CheckpointID)
			}
		}
	}
	if err != nil {
		return sessiondto.EndOutput{}, err
	}

	session, path, err := i.svc.End(ctx, active, completed, score)
	if err != nil {
		return sessiondto.EndOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.EndOutput{}, err
	}
	out := sessiondto.EndOutput{
		SessionID:    session.ID,
		UnitID:       session.UnitID,
		CheckpointID: session.CheckpointID,
		Path:         path,
		DurationMin:  session.DurationMin,
		Rated:        len(session.Ratings),
		Completed:    session.Completed,
	}
	if score != nil {
		out.QuizCorrect, out.QuizTotal = score.Correct, score.Total
	}
	return out, nil
}

func (i *Interactor) gradeQuiz(ctx context.Context, active domain.ActiveSession, answers map[int]int) (*domain.QuizScore, error) {
	refs := make([]curriculumdto.WordRef, 0, len(active.Words))
	for _, wordID := range active.Words {
		ref, err := curriculumdto.ParseWordID(wordID)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	graded, err := i.deps.Review.GradeQuiz(ctx, reviewdto.GradeInput{
		Words:        refs,
		Translations: active.Translations,
		Answers:      answers,
	})
	if err != nil {
		return nil, err
	}
	return &domain.QuizScore{Correct: graded.Correct, Total: graded.Total, Passed: graded.Passed}, nil
}

func (i *Interactor) GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.ActiveSessionOutput{}, err
	}
	return sessiondto.ActiveSessionOutput{
		SessionID:       active.SessionID,
		UnitID:          active.UnitID,
		CheckpointID:    active.CheckpointID,
		CheckpointKind:  string(active.CheckpointKind),
		CheckpointTitle: active.CheckpointTitle,
		StartedAt:       active.StartedAt,
		Words:           active.Words,
		Translations:    active.Translations,
		Rated:           len(active.Ratings),
		Remaining:       active.Remaining(),
	}, nil
}

// Cancel drops the active session without touching progress.
func (i *Interactor) Cancel(ctx context.Context) error {
	if _, err := i.activeStore.LoadActive(ctx); err != nil {
		return err
	}
	return i.activeStore.ClearActive(ctx)
}
