package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"

	curriculumdomain "sukhan/internal/modules/curriculum/domain"
	apperrors "sukhan/internal/platform/errors"
)

const (
	DefaultEase     = 2.5
	MinEase         = 1.3
	InitialInterval = 1

	againEasePenalty = 0.2
	hardEasePenalty  = 0.15
	easyEaseBonus    = 0.15
	hardGrowth       = 1.2
	easyGrowth       = 1.3
)

// WordState is the retention record of one word. Dates are UTC days.
type WordState struct {
	Rating      Rating
	Interval    int
	Ease        float64
	NextReview  *time.Time
	ReviewCount int
	LastSeen    time.Time
}

func NewWordState(today time.Time) WordState {
	return WordState{Rating: None, Interval: InitialInterval, Ease: DefaultEase, LastSeen: today}
}

// Rate applies one rating event and returns the next state. It is the only
// place interval and ease change.
func (s WordState) Rate(rating Rating, today time.Time) (WordState, error) {
	if !rating.IsValid() {
		return s, fmt.Errorf("%w: %s", apperrors.ErrInvalidRating, rating)
	}
	s = s.Normalize()
	interval, ease := s.Interval, s.Ease
	switch rating {
	case Again:
		interval = 1
		ease = math.Max(MinEase, ease-againEasePenalty)
	case Hard:
		interval = max(1, round(float64(interval)*hardGrowth))
		ease = math.Max(MinEase, ease-hardEasePenalty)
	case Good:
		interval = round(float64(interval) * ease)
	case Easy:
		interval = round(float64(interval) * ease * easyGrowth)
		ease += easyEaseBonus
	}
	interval = max(1, interval)
	next := today.AddDate(0, 0, interval)
	return WordState{
		Rating:      rating,
		Interval:    interval,
		Ease:        ease,
		NextReview:  &next,
		ReviewCount: s.ReviewCount + 1,
		LastSeen:    today,
	}, nil
}

// Normalize restores the interval and ease floors on a hand-edited record.
func (s WordState) Normalize() WordState {
	if s.Interval < 1 {
		s.Interval = InitialInterval
	}
	if s.Ease < MinEase || math.IsNaN(s.Ease) {
		s.Ease = MinEase
	}
	if s.ReviewCount < 0 {
		s.ReviewCount = 0
	}
	return s
}

func (s WordState) IsHard() bool { return s.Rating == Again || s.Rating == Hard }
func (s WordState) IsEasy() bool { return s.Rating == Good || s.Rating == Easy }

// DueOn reports whether a rated word is scheduled on or before day.
func (s WordState) DueOn(day time.Time) bool {
	return s.NextReview != nil && !s.NextReview.After(day)
}

func round(v float64) int {
	return int(math.Round(v))
}

// Table is the persisted scheduler record keyed by WordId.
type Table map[string]WordState

func (t Table) Get(ref curriculumdomain.WordRef) (WordState, bool) {
	state, ok := t[ref.ID()]
	return state, ok
}

// Filter keeps the refs whose recorded state matches keep. Untracked refs
// never match.
func (t Table) Filter(refs []curriculumdomain.WordRef, keep func(WordState) bool) []curriculumdomain.WordRef {
	return lo.Filter(refs, func(ref curriculumdomain.WordRef, _ int) bool {
		state, ok := t.Get(ref)
		return ok && keep(state)
	})
}

func (t Table) Hard(refs []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	return t.Filter(refs, WordState.IsHard)
}

func (t Table) Easy(refs []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	return t.Filter(refs, WordState.IsEasy)
}

func (t Table) Due(refs []curriculumdomain.WordRef, day time.Time) []curriculumdomain.WordRef {
	return t.Filter(refs, func(s WordState) bool { return s.DueOn(day) })
}
