package render_test

import (
	"strings"
	"testing"
	"time"

	progressdto "sukhan/internal/modules/progress/dto"
	sessiondto "sukhan/internal/modules/session/dto"
	srsdto "sukhan/internal/modules/srs/dto"
	"sukhan/internal/ui/render"
)

func TestCheckpointPathListsEveryCheckpoint(t *testing.T) {
	t.Parallel()
	out := render.CheckpointPath("First Words", progressdto.UnitProgressOutput{CompletedLessons: 1, TotalLessons: 3}, []progressdto.CheckpointOutput{
		{Kind: "lesson", ID: "L1", Title: "One", Status: "completed"},
		{Kind: "lesson", ID: "L2", Title: "Two", Status: "unlocked"},
		{Kind: "review", ID: "review-u-2", Title: "Review of lessons 1-2", Status: "locked"},
		{Kind: "quiz", ID: "quiz-u", Title: "Unit quiz", Status: "locked"},
	})
	for _, want := range []string{"First Words", "(1/3 lessons)", "✓ One", "● Two", "  ○ Review of lessons 1-2", "quiz-u"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != 5 {
		t.Fatalf("expected header plus 4 checkpoints, got %d lines", len(lines))
	}
}

func TestCardHidesBlankPronunciation(t *testing.T) {
	t.Parallel()
	out := render.Card(sessiondto.CardOutput{WordID: "food_0", Tajik: "нон", English: "bread", PronunciationLatin: "non"}, true)
	if !strings.Contains(out, "нон") || !strings.Contains(out, "[non]") || !strings.Contains(out, "bread") {
		t.Fatalf("unexpected card:\n%s", out)
	}
	if strings.Contains(out, "·") {
		t.Fatalf("only one pronunciation was given:\n%s", out)
	}
}

func TestQuizNumbersBothColumns(t *testing.T) {
	t.Parallel()
	out := render.Quiz([]sessiondto.CardOutput{{Tajik: "сурх"}, {Tajik: "сабз"}}, []string{"green", "red"})
	for _, want := range []string{"1. сурх", "2. сабз", "1. green", "2. red"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWordState(t *testing.T) {
	t.Parallel()
	next := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	out := render.WordState(srsdto.WordStateOutput{WordID: "food_2", Rating: "easy", Interval: 3, Ease: 2.45, NextReview: &next, ReviewCount: 2})
	for _, want := range []string{"food_2", "easy", "3 days", "2.45", "2026-03-13"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if !strings.Contains(render.WordState(srsdto.WordStateOutput{Rating: "none"}), "not scheduled") {
		t.Fatalf("unrated words have no next review")
	}
}
