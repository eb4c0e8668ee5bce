package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	curriculumdomain "sukhan/internal/modules/curriculum/domain"
	"sukhan/internal/modules/srs/domain"
	srsout "sukhan/internal/modules/srs/port/out"
	"sukhan/internal/platform/clock"
	apperrors "sukhan/internal/platform/errors"
)

type SchedulerService struct {
	clock clock.Clock
	store srsout.WordStateStore
	log   logrus.FieldLogger
}

func NewSchedulerService(clock clock.Clock, store srsout.WordStateStore, log logrus.FieldLogger) *SchedulerService {
	return &SchedulerService{clock: clock, store: store, log: log}
}

// Table never fails: an absent or unreadable record reads as empty.
func (s *SchedulerService) Table(ctx context.Context) domain.Table {
	table, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.log.WithError(err).Warn("word progress unreadable, treating as empty")
		}
		return domain.Table{}
	}
	return table
}

// MarkWordSeen starts tracking a word on first exposure and leaves tracked words alone.
func (s *SchedulerService) MarkWordSeen(ctx context.Context, ref curriculumdomain.WordRef) (domain.WordState, error) {
	if err := validateRef(ref); err != nil {
		return domain.WordState{}, err
	}
	table := s.Table(ctx)
	if state, ok := table.Get(ref); ok {
		return state, nil
	}
	state := domain.NewWordState(clock.Today(s.clock))
	table[ref.ID()] = state
	if err := s.store.Save(ctx, table); err != nil {
		return domain.WordState{}, fmt.Errorf("save word progress: %w", err)
	}
	return state, nil
}

func (s *SchedulerService) RateWord(ctx context.Context, ref curriculumdomain.WordRef, rating domain.Rating) (domain.WordState, error) {
	if err := validateRef(ref); err != nil {
		return domain.WordState{}, err
	}
	today := clock.Today(s.clock)
	table := s.Table(ctx)
	state, ok := table.Get(ref)
	if !ok {
		state = domain.NewWordState(today)
	}
	next, err := state.Rate(rating, today)
	if err != nil {
		return domain.WordState{}, err
	}
	table[ref.ID()] = next
	if err := s.store.Save(ctx, table); err != nil {
		return domain.WordState{}, fmt.Errorf("save word progress: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"word_id":  ref.ID(),
		"rating":   rating.String(),
		"interval": next.Interval,
	}).Debug("word rated")
	return next, nil
}

func (s *SchedulerService) GetWordData(ctx context.Context, ref curriculumdomain.WordRef) (domain.WordState, bool) {
	return s.Table(ctx).Get(ref)
}

func (s *SchedulerService) HardWords(ctx context.Context, refs []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	return s.Table(ctx).Hard(refs)
}

func (s *SchedulerService) EasyWords(ctx context.Context, refs []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	return s.Table(ctx).Easy(refs)
}

func (s *SchedulerService) DueWords(ctx context.Context, refs []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	return s.Table(ctx).Due(refs, clock.Today(s.clock))
}

func (s *SchedulerService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset word progress: %w", err)
	}
	return nil
}

func validateRef(ref curriculumdomain.WordRef) error {
	if strings.TrimSpace(ref.Category) == "" || ref.Index < 0 {
		return fmt.Errorf("%w: word reference %q", apperrors.ErrInvalidInput, ref.ID())
	}
	return nil
}
