package usecase

import (
	"context"
	"fmt"

	curriculumin "sukhan/internal/modules/curriculum/port/in"
	"sukhan/internal/modules/progress/domain"
	"sukhan/internal/modules/progress/dto"
	progressin "sukhan/internal/modules/progress/port/in"
	"sukhan/internal/modules/progress/service"
	apperrors "sukhan/internal/platform/errors"
)

type Interactor struct {
	svc        *service.ProgressService
	curriculum curriculumin.Usecase
}

func NewInteractor(svc *service.ProgressService, curriculum curriculumin.Usecase) progressin.Usecase {
	return &Interactor{svc: svc, curriculum: curriculum}
}

func (i *Interactor) MarkLessonComplete(ctx context.Context, lessonID string) error {
	return i.svc.MarkLessonComplete(ctx, lessonID)
}

func (i *Interactor) MarkReviewComplete(ctx context.Context, reviewID string) error {
	return i.svc.MarkReviewComplete(ctx, reviewID)
}

func (i *Interactor) MarkQuizComplete(ctx context.Context, quizID string) error {
	return i.svc.MarkQuizComplete(ctx, quizID)
}

func (i *Interactor) IsLessonComplete(ctx context.Context, lessonID string) bool {
	return i.svc.IsLessonComplete(ctx, lessonID)
}

func (i *Interactor) IsReviewComplete(ctx context.Context, reviewID string) bool {
	return i.svc.IsReviewComplete(ctx, reviewID)
}

func (i *Interactor) IsQuizComplete(ctx context.Context, quizID string) bool {
	return i.svc.IsQuizComplete(ctx, quizID)
}

func (i *Interactor) GetUnitProgress(ctx context.Context, unitID string) (dto.UnitProgressOutput, error) {
	unit, err := i.unit(ctx, unitID)
	if err != nil {
		return dto.UnitProgressOutput{}, err
	}
	return dto.UnitProgressOutput{
		UnitID:           unit.ID,
		CompletedLessons: i.svc.UnitProgress(ctx, unit.LessonIDs()),
		TotalLessons:     len(unit.Lessons),
	}, nil
}

func (i *Interactor) GetUnitCheckpoints(ctx context.Context, unitID string) ([]dto.CheckpointOutput, error) {
	unit, err := i.unit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	states := i.svc.Evaluator(ctx, unit).States()
	out := make([]dto.CheckpointOutput, 0, len(states))
	for _, state := range states {
		out = append(out, toCheckpointOutput(unit, state))
	}
	return out, nil
}

func (i *Interactor) GetCheckpoint(ctx context.Context, unitID, checkpointID string) (dto.CheckpointOutput, error) {
	unit, err := i.unit(ctx, unitID)
	if err != nil {
		return dto.CheckpointOutput{}, err
	}
	ev := i.svc.Evaluator(ctx, unit)
	pos := domain.FindCheckpoint(ev.Checkpoints(), checkpointID)
	if pos < 0 {
		return dto.CheckpointOutput{}, fmt.Errorf("checkpoint %s in unit %s: %w", checkpointID, unitID, apperrors.ErrNotFound)
	}
	return toCheckpointOutput(unit, ev.State(ev.Checkpoints()[pos])), nil
}

func (i *Interactor) IsLessonUnlocked(ctx context.Context, unitID, lessonID string) (bool, error) {
	unit, err := i.unit(ctx, unitID)
	if err != nil {
		return false, err
	}
	return i.svc.Evaluator(ctx, unit).IsLessonUnlocked(lessonID), nil
}

func (i *Interactor) IsReviewUnlocked(ctx context.Context, unitID, reviewID string) (bool, error) {
	unit, err := i.unit(ctx, unitID)
	if err != nil {
		return false, err
	}
	ev := i.svc.Evaluator(ctx, unit)
	pos := domain.FindCheckpoint(ev.Checkpoints(), reviewID)
	if pos < 0 || ev.Checkpoints()[pos].Kind != domain.KindReview {
		return false, nil
	}
	cp := ev.Checkpoints()[pos]
	return ev.IsReviewUnlocked(cp.AfterLessonIndex, cp.IsEndReview), nil
}

func (i *Interactor) IsQuizUnlocked(ctx context.Context, unitID string) (bool, error) {
	unit, err := i.unit(ctx, unitID)
	if err != nil {
		return false, err
	}
	return i.svc.Evaluator(ctx, unit).IsQuizUnlocked(), nil
}

func (i *Interactor) ResetProgress(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func (i *Interactor) unit(ctx context.Context, unitID string) (domain.Unit, error) {
	if i.curriculum == nil {
		return domain.Unit{}, fmt.Errorf("curriculum usecase is not configured")
	}
	source, err := i.curriculum.GetUnit(ctx, unitID)
	if err != nil {
		return domain.Unit{}, err
	}
	unit := domain.Unit{ID: source.ID, Title: source.Title, Lessons: make([]domain.Lesson, 0, len(source.Lessons))}
	for _, lesson := range source.Lessons {
		unit.Lessons = append(unit.Lessons, domain.Lesson{ID: lesson.ID, Title: lesson.Title, Description: lesson.Description})
	}
	return unit, nil
}

func toCheckpointOutput(unit domain.Unit, state domain.CheckpointState) dto.CheckpointOutput {
	cp := state.Checkpoint
	out := dto.CheckpointOutput{
		UnitID:           unit.ID,
		Kind:             string(cp.Kind),
		ID:               cp.ID,
		LessonIndex:      cp.LessonIndex,
		AfterLessonIndex: cp.AfterLessonIndex,
		IsEndReview:      cp.IsEndReview,
		Status:           string(state.Status()),
		Unlocked:         state.Unlocked,
		Completed:        state.Completed,
	}
	switch {
	case cp.Kind == domain.KindLesson:
		out.Title = cp.Lesson.Title
		out.Description = cp.Lesson.Description
	case cp.IsEndReview:
		out.Title = "Unit review"
	case cp.Kind == domain.KindReview:
		out.Title = fmt.Sprintf("Review of lessons 1-%d", cp.AfterLessonIndex+1)
	case cp.Kind == domain.KindQuiz:
		out.Title = "Unit quiz"
	}
	return out
}
