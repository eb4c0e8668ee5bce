package service

import (
	"github.com/sirupsen/logrus"

	curriculumdomain "sukhan/internal/modules/curriculum/domain"
	"sukhan/internal/modules/review/domain"
	"sukhan/internal/platform/random"
)

type SelectorService struct {
	selector  domain.Selector
	passRatio float64
	log       logrus.FieldLogger
}

func NewSelectorService(rng random.Source, passRatio float64, log logrus.FieldLogger) *SelectorService {
	return &SelectorService{selector: domain.NewSelector(rng), passRatio: passRatio, log: log}
}

func (s *SelectorService) MidReview(all, hard, easy []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	picked := s.selector.MidReview(all, hard, easy)
	s.log.WithFields(logrus.Fields{
		"covered":  len(all),
		"hard":     len(hard),
		"selected": len(picked),
		"fallback": len(hard) == 0 && len(easy) == 0,
	}).Debug("mid-unit review selected")
	return picked
}

func (s *SelectorService) EndReview(all, hard []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	picked := s.selector.Review(all, hard)
	s.log.WithFields(logrus.Fields{
		"covered":  len(all),
		"hard":     len(hard),
		"selected": len(picked),
	}).Debug("end-of-unit review selected")
	return picked
}

func (s *SelectorService) Quiz(all []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	return s.selector.Quiz(all)
}

func (s *SelectorService) ShuffleTranslations(translations []string) []string {
	return s.selector.ShuffleTranslations(translations)
}

// Grade scores a quiz attempt against the configured pass ratio.
func (s *SelectorService) Grade(expected, offered []string, answers map[int]int) (domain.QuizResult, bool) {
	result := domain.Grade(expected, offered, answers)
	return result, result.Passed(s.passRatio)
}
