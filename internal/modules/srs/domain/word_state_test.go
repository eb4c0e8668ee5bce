package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	curriculumdomain "sukhan/internal/modules/curriculum/domain"
	"sukhan/internal/modules/srs/domain"
	apperrors "sukhan/internal/platform/errors"
)

var today = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestRateUpdateTable(t *testing.T) {
	t.Parallel()
	start := domain.WordState{Rating: domain.Good, Interval: 4, Ease: 2.0, ReviewCount: 2, LastSeen: today.AddDate(0, 0, -4)}
	cases := []struct {
		rating   domain.Rating
		interval int
		ease     float64
	}{
		{domain.Again, 1, 1.8},
		{domain.Hard, 5, 1.85},
		{domain.Good, 8, 2.0},
		{domain.Easy, 10, 2.15},
	}
	for _, tc := range cases {
		next, err := start.Rate(tc.rating, today)
		require.NoError(t, err)
		assert.Equal(t, tc.interval, next.Interval, "interval after %s", tc.rating)
		assert.InDelta(t, tc.ease, next.Ease, 1e-9, "ease after %s", tc.rating)
		assert.Equal(t, tc.rating, next.Rating)
		assert.Equal(t, 3, next.ReviewCount)
		assert.Equal(t, today, next.LastSeen)
		require.NotNil(t, next.NextReview)
		assert.Equal(t, today.AddDate(0, 0, tc.interval), *next.NextReview)
	}
}

func TestRateAgainThenEasyScenario(t *testing.T) {
	t.Parallel()
	state := domain.NewWordState(today)
	state, err := state.Rate(domain.Again, today)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Interval)
	assert.InDelta(t, 2.3, state.Ease, 1e-9)

	state, err = state.Rate(domain.Easy, today)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Interval)
	assert.InDelta(t, 2.45, state.Ease, 1e-9)
	assert.Equal(t, 2, state.ReviewCount)
}

func TestRateKeepsEaseAboveFloor(t *testing.T) {
	t.Parallel()
	for _, ease := range []float64{1.3, 1.35, 1.4, 2.5, 0.5} {
		for _, rating := range []domain.Rating{domain.Again, domain.Hard, domain.Good, domain.Easy} {
			state := domain.WordState{Interval: 1, Ease: ease}
			next, err := state.Rate(rating, today)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, next.Ease, domain.MinEase, "ease %v rating %s", ease, rating)
			assert.GreaterOrEqual(t, next.Interval, 1)
		}
	}
}

func TestRateIsDeterministicAndRejectsNone(t *testing.T) {
	t.Parallel()
	state := domain.WordState{Rating: domain.Hard, Interval: 3, Ease: 2.2, ReviewCount: 1}
	a, err := state.Rate(domain.Good, today)
	require.NoError(t, err)
	b, err := state.Rate(domain.Good, today)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = state.Rate(domain.None, today)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRating))
	_, err = state.Rate(domain.Rating(9), today)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRating))
}

func TestRatingText(t *testing.T) {
	t.Parallel()
	r, err := domain.ParseRating("hard")
	require.NoError(t, err)
	assert.Equal(t, domain.Hard, r)
	_, err = domain.ParseRating("Hard")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRating)
	assert.Equal(t, "none", domain.None.String())
	assert.Equal(t, "Rating(7)", domain.Rating(7).String())

	payload, err := json.Marshal(struct {
		A domain.Rating `json:"a"`
		B domain.Rating `json:"b"`
	}{A: domain.None, B: domain.Easy})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":null,"b":"easy"}`, string(payload))

	var decoded struct {
		A domain.Rating `json:"a"`
		B domain.Rating `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":null,"b":"again"}`), &decoded))
	assert.Equal(t, domain.None, decoded.A)
	assert.Equal(t, domain.Again, decoded.B)
	assert.Error(t, json.Unmarshal([]byte(`{"b":"meh"}`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"b":3}`), &decoded))
}

func TestTableFilters(t *testing.T) {
	t.Parallel()
	next := today
	ref := func(i int) curriculumdomain.WordRef { return curriculumdomain.WordRef{Category: "food", Index: i} }
	table := domain.Table{
		ref(0).ID(): {Rating: domain.Again, Interval: 1, Ease: 2.3, NextReview: &next},
		ref(1).ID(): {Rating: domain.Hard, Interval: 2, Ease: 2.3},
		ref(2).ID(): {Rating: domain.Good, Interval: 3, Ease: 2.5},
		ref(3).ID(): {Rating: domain.Easy, Interval: 4, Ease: 2.6},
		ref(4).ID(): {Rating: domain.None, Interval: 1, Ease: 2.5},
	}
	refs := []curriculumdomain.WordRef{ref(0), ref(1), ref(2), ref(3), ref(4), ref(5)}
	assert.Equal(t, []curriculumdomain.WordRef{ref(0), ref(1)}, table.Hard(refs))
	assert.Equal(t, []curriculumdomain.WordRef{ref(2), ref(3)}, table.Easy(refs))
	assert.Equal(t, []curriculumdomain.WordRef{ref(0)}, table.Due(refs, today))
	assert.Empty(t, table.Due(refs, today.AddDate(0, 0, -1)))
}

func TestNormalizeRestoresFloors(t *testing.T) {
	t.Parallel()
	state := domain.WordState{Interval: 0, Ease: 0.9, ReviewCount: -2}.Normalize()
	assert.Equal(t, 1, state.Interval)
	assert.Equal(t, domain.MinEase, state.Ease)
	assert.Equal(t, 0, state.ReviewCount)
}
