package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"sukhan/internal/modules/progress/domain"
	progressout "sukhan/internal/modules/progress/port/out"
	apperrors "sukhan/internal/platform/errors"
)

type ProgressService struct {
	store progressout.LedgerStore
	log   logrus.FieldLogger
}

func NewProgressService(store progressout.LedgerStore, log logrus.FieldLogger) *ProgressService {
	return &ProgressService{store: store, log: log}
}

// Ledger never fails: an absent or unreadable record reads as empty.
func (s *ProgressService) Ledger(ctx context.Context) domain.Ledger {
	ledger, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.log.WithError(err).Warn("completion ledger unreadable, treating as empty")
		}
		return domain.NewLedger()
	}
	return ledger
}

func (s *ProgressService) MarkLessonComplete(ctx context.Context, lessonID string) error {
	return s.mark(ctx, "lesson", lessonID, (*domain.Ledger).MarkLesson)
}

func (s *ProgressService) MarkReviewComplete(ctx context.Context, reviewID string) error {
	return s.mark(ctx, "review", reviewID, (*domain.Ledger).MarkReview)
}

func (s *ProgressService) MarkQuizComplete(ctx context.Context, quizID string) error {
	return s.mark(ctx, "quiz", quizID, (*domain.Ledger).MarkQuiz)
}

func (s *ProgressService) mark(ctx context.Context, kind, id string, insert func(*domain.Ledger, string) bool) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s id is required", apperrors.ErrInvalidInput, kind)
	}
	ledger := s.Ledger(ctx)
	if !insert(&ledger, id) {
		return nil
	}
	if err := s.store.Save(ctx, ledger); err != nil {
		return fmt.Errorf("save completion ledger: %w", err)
	}
	s.log.WithFields(logrus.Fields{"kind": kind, "id": id}).Debug("checkpoint completed")
	return nil
}

func (s *ProgressService) IsLessonComplete(ctx context.Context, lessonID string) bool {
	return s.Ledger(ctx).IsLessonComplete(lessonID)
}

func (s *ProgressService) IsReviewComplete(ctx context.Context, reviewID string) bool {
	return s.Ledger(ctx).IsReviewComplete(reviewID)
}

func (s *ProgressService) IsQuizComplete(ctx context.Context, quizID string) bool {
	return s.Ledger(ctx).IsQuizComplete(quizID)
}

func (s *ProgressService) UnitProgress(ctx context.Context, lessonIDs []string) int {
	return s.Ledger(ctx).UnitProgress(lessonIDs)
}

// Evaluator snapshots the ledger; callers build a new one per query.
func (s *ProgressService) Evaluator(ctx context.Context, unit domain.Unit) domain.Evaluator {
	return domain.NewEvaluator(s.Ledger(ctx), unit)
}

func (s *ProgressService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset completion ledger: %w", err)
	}
	return nil
}
