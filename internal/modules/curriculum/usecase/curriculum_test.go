package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"sukhan/internal/modules/curriculum/domain"
	"sukhan/internal/modules/curriculum/dto"
	"sukhan/internal/modules/curriculum/service"
	"sukhan/internal/modules/curriculum/usecase"
	apperrors "sukhan/internal/platform/errors"
)

type fakeContent struct {
	units []domain.Unit
	dict  domain.Dictionary
	err   error
}

func (f fakeContent) ListUnits(context.Context) ([]domain.Unit, error) { return f.units, f.err }
func (f fakeContent) LoadDictionary(context.Context) (domain.Dictionary, error) {
	return f.dict, f.err
}

func newInteractor(content fakeContent) *usecase.Interactor {
	logger, _ := test.NewNullLogger()
	return usecase.NewInteractor(service.NewCurriculumService(content, logger)).(*usecase.Interactor)
}

func sampleContent() fakeContent {
	return fakeContent{
		units: []domain.Unit{{
			ID:    "unit-1",
			Title: "First Words",
			Lessons: []domain.Lesson{
				{ID: "l1", Title: "Hello", Words: []domain.WordRef{{Category: "greetings", Index: 0}, {Category: "greetings", Index: 1}}},
				{ID: "l2", Title: "Food", Words: []domain.WordRef{{Category: "food", Index: 0}}},
			},
		}},
		dict: domain.Dictionary{
			"greetings": {{Tajik: "салом", English: "hello"}, {Tajik: "хайр", English: "goodbye"}},
			"food":      {{Tajik: "нон", English: "bread"}},
		},
	}
}

func TestListAndGetUnit(t *testing.T) {
	t.Parallel()
	uc := newInteractor(sampleContent())

	units, err := uc.ListUnits(context.Background())
	if err != nil {
		t.Fatalf("list units: %v", err)
	}
	if len(units) != 1 || units[0].LessonCount != 2 || units[0].WordCount != 3 {
		t.Fatalf("unexpected summary: %+v", units)
	}

	unit, err := uc.GetUnit(context.Background(), "unit-1")
	if err != nil {
		t.Fatalf("get unit: %v", err)
	}
	if len(unit.Lessons) != 2 || unit.Lessons[1].ID != "l2" {
		t.Fatalf("unexpected unit: %+v", unit)
	}

	if _, err := uc.GetUnit(context.Background(), "unit-9"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.GetUnit(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestResolveWordsDropsUnknownRefs(t *testing.T) {
	t.Parallel()
	uc := newInteractor(sampleContent())
	refs := []dto.WordRef{
		{Category: "food", Index: 0},
		{Category: "food", Index: 7},
		{Category: "weather", Index: 0},
		{Category: "greetings", Index: 1},
	}
	words, err := uc.ResolveWords(context.Background(), refs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(words) != 2 || words[0].English != "bread" || words[1].WordID != "greetings_1" {
		t.Fatalf("unexpected resolution: %+v", words)
	}

	if _, err := uc.LookupWord(context.Background(), dto.WordRef{Category: "food", Index: 7}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown word, got %v", err)
	}
}

func TestContentErrorsPropagate(t *testing.T) {
	t.Parallel()
	uc := newInteractor(fakeContent{err: errors.New("disk gone")})
	if _, err := uc.ListUnits(context.Background()); err == nil {
		t.Fatalf("expected content error")
	}
	if _, err := uc.ResolveWords(context.Background(), []dto.WordRef{{Category: "food"}}); err == nil {
		t.Fatalf("expected dictionary error")
	}
}
