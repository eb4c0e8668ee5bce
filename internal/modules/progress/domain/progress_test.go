package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sukhan/internal/modules/progress/domain"
)

func unitWith(n int) domain.Unit {
	unit := domain.Unit{ID: "u1"}
	for i := 1; i <= n; i++ {
		unit.Lessons = append(unit.Lessons, domain.Lesson{ID: "L" + string(rune('0'+i)), Title: "Lesson"})
	}
	return unit
}

func ids(checkpoints []domain.Checkpoint) []string {
	out := make([]string, 0, len(checkpoints))
	for _, cp := range checkpoints {
		out = append(out, cp.ID)
	}
	return out
}

func TestBuildCheckpointsSequence(t *testing.T) {
	t.Parallel()
	cases := []struct {
		lessons int
		want    []string
	}{
		{0, []string{"review-u1-end", "quiz-u1"}},
		{1, []string{"L1", "review-u1-end", "quiz-u1"}},
		{2, []string{"L1", "L2", "review-u1-end", "quiz-u1"}},
		{3, []string{"L1", "L2", "review-u1-2", "L3", "review-u1-end", "quiz-u1"}},
		{4, []string{"L1", "L2", "review-u1-2", "L3", "L4", "review-u1-end", "quiz-u1"}},
		{5, []string{"L1", "L2", "review-u1-2", "L3", "L4", "review-u1-4", "L5", "review-u1-end", "quiz-u1"}},
	}
	for _, tc := range cases {
		got := domain.BuildCheckpoints(unitWith(tc.lessons))
		assert.Equal(t, tc.want, ids(got), "lessons=%d", tc.lessons)
	}
}

func TestBuildCheckpointsFields(t *testing.T) {
	t.Parallel()
	cps := domain.BuildCheckpoints(unitWith(3))
	require.Len(t, cps, 6)

	assert.Equal(t, domain.KindLesson, cps[3].Kind)
	assert.Equal(t, 2, cps[3].LessonIndex)
	assert.Equal(t, "L3", cps[3].Lesson.ID)

	mid := cps[2]
	assert.Equal(t, domain.KindReview, mid.Kind)
	assert.Equal(t, 1, mid.AfterLessonIndex)
	assert.False(t, mid.IsEndReview)

	end := cps[4]
	assert.True(t, end.IsEndReview)
	assert.Equal(t, 2, end.AfterLessonIndex)
	assert.Equal(t, domain.KindQuiz, cps[5].Kind)

	assert.Equal(t, cps, domain.BuildCheckpoints(unitWith(3)), "sequence must be deterministic")
	assert.Equal(t, 4, domain.FindCheckpoint(cps, "review-u1-end"))
	assert.Equal(t, -1, domain.FindCheckpoint(cps, "nope"))
}

func TestLedgerMarksAreIdempotent(t *testing.T) {
	t.Parallel()
	ledger := domain.NewLedger()
	assert.True(t, ledger.MarkLesson("L1"))
	once := ledger
	once.CompletedLessons = append([]string(nil), ledger.CompletedLessons...)
	assert.False(t, ledger.MarkLesson("L1"))
	assert.Equal(t, once, ledger)

	assert.True(t, ledger.MarkReview("review-u1-2"))
	assert.True(t, ledger.MarkQuiz("quiz-u1"))
	assert.True(t, ledger.IsLessonComplete("L1"))
	assert.True(t, ledger.IsReviewComplete("review-u1-2"))
	assert.True(t, ledger.IsQuizComplete("quiz-u1"))
	assert.False(t, ledger.IsLessonComplete("review-u1-2"))
	assert.Equal(t, 1, ledger.UnitProgress([]string{"L1", "L2", "L3"}))

	dirty := domain.Ledger{CompletedLessons: []string{"L1", "", "L1", "L2"}}
	assert.Equal(t, []string{"L1", "L2"}, dirty.Normalize().CompletedLessons)
	assert.NotNil(t, dirty.Normalize().CompletedQuizzes)
}

func TestFirstLessonAlwaysUnlocked(t *testing.T) {
	t.Parallel()
	unit := unitWith(3)
	for _, ledger := range []domain.Ledger{
		{},
		{CompletedLessons: []string{"L1", "L2", "L3"}},
		{CompletedReviews: []string{"review-u1-end"}},
	} {
		assert.True(t, domain.NewEvaluator(ledger, unit).IsLessonUnlocked("L1"))
	}
}

func TestLessonUnlockSkipsOptionalReviews(t *testing.T) {
	t.Parallel()
	unit := unitWith(4)
	ev := domain.NewEvaluator(domain.Ledger{}, unit)
	assert.False(t, ev.IsLessonUnlocked("L2"))
	assert.False(t, ev.IsLessonUnlocked("missing"))

	ev = domain.NewEvaluator(domain.Ledger{CompletedLessons: []string{"L1", "L2"}}, unit)
	assert.True(t, ev.IsLessonUnlocked("L3"), "mid-unit review must not block the next lesson")
	assert.False(t, ev.IsLessonUnlocked("L4"))
}

func TestReviewAndQuizUnlockRules(t *testing.T) {
	t.Parallel()
	unit := unitWith(3)
	ev := domain.NewEvaluator(domain.Ledger{CompletedLessons: []string{"L2"}}, unit)
	assert.True(t, ev.IsReviewUnlocked(1, false))
	assert.False(t, ev.IsReviewUnlocked(0, false))
	assert.False(t, ev.IsReviewUnlocked(-1, false))
	assert.False(t, ev.IsReviewUnlocked(3, false))
	assert.False(t, ev.IsReviewUnlocked(2, true))
	assert.False(t, ev.IsQuizUnlocked())

	ev = domain.NewEvaluator(domain.Ledger{CompletedLessons: []string{"L1", "L2", "L3"}}, unit)
	assert.True(t, ev.IsReviewUnlocked(2, true))
	assert.False(t, ev.IsReviewUnlocked(7, true))
	assert.False(t, ev.IsQuizUnlocked())

	ev = domain.NewEvaluator(domain.Ledger{
		CompletedLessons: []string{"L1", "L2", "L3"},
		CompletedReviews: []string{"review-u1-end"},
	}, unit)
	assert.True(t, ev.IsQuizUnlocked())

	empty := domain.NewEvaluator(domain.Ledger{}, domain.Unit{ID: "empty"})
	assert.False(t, empty.IsUnlocked(empty.Checkpoints()[0]), "end review of an empty unit is out of range")
}

func TestCheckpointStatusKeepsCompletionIndependentOfUnlock(t *testing.T) {
	t.Parallel()
	unit := unitWith(3)
	// L3 complete without L2: completion is recorded but L3 would be locked.
	ev := domain.NewEvaluator(domain.Ledger{CompletedLessons: []string{"L1", "L3"}}, unit)
	states := ev.States()
	require.Len(t, states, 6)
	assert.Equal(t, domain.StatusCompleted, states[0].Status())
	assert.Equal(t, domain.StatusUnlocked, states[1].Status())
	assert.Equal(t, domain.StatusLocked, states[2].Status())

	l3 := states[3]
	assert.False(t, l3.Unlocked)
	assert.True(t, l3.Completed)
	assert.Equal(t, domain.StatusCompleted, l3.Status())
	assert.True(t, l3.Enterable())
	assert.False(t, states[5].Enterable())
}
