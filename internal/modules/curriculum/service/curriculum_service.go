package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"sukhan/internal/modules/curriculum/domain"
	curriculumout "sukhan/internal/modules/curriculum/port/out"
	apperrors "sukhan/internal/platform/errors"
)

type CurriculumService struct {
	store curriculumout.ContentStore
	log   logrus.FieldLogger
}

func NewCurriculumService(store curriculumout.ContentStore, log logrus.FieldLogger) *CurriculumService {
	return &CurriculumService{store: store, log: log}
}

func (s *CurriculumService) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	return s.store.ListUnits(ctx)
}

func (s *CurriculumService) GetUnit(ctx context.Context, unitID string) (domain.Unit, error) {
	if unitID == "" {
		return domain.Unit{}, fmt.Errorf("%w: unit id is required", apperrors.ErrInvalidInput)
	}
	units, err := s.store.ListUnits(ctx)
	if err != nil {
		return domain.Unit{}, err
	}
	for _, unit := range units {
		if unit.ID == unitID {
			return unit, nil
		}
	}
	return domain.Unit{}, fmt.Errorf("unit %s: %w", unitID, apperrors.ErrNotFound)
}

// Resolve looks refs up in the dictionary, dropping the ones that do not
// resolve and keeping the order of the rest.
func (s *CurriculumService) Resolve(ctx context.Context, refs []domain.WordRef) ([]domain.WordRef, []domain.Word, error) {
	dict, err := s.store.LoadDictionary(ctx)
	if err != nil {
		return nil, nil, err
	}
	keptRefs := make([]domain.WordRef, 0, len(refs))
	words := make([]domain.Word, 0, len(refs))
	for _, ref := range refs {
		word, ok := dict.Lookup(ref)
		if !ok {
			s.log.WithField("word_id", ref.ID()).Debug("dropping unresolvable word reference")
			continue
		}
		keptRefs = append(keptRefs, ref)
		words = append(words, word)
	}
	return keptRefs, words, nil
}
