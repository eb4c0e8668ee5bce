package domain

import "fmt"

type Kind string

const (
	KindLesson Kind = "lesson"
	KindReview Kind = "review"
	KindQuiz   Kind = "quiz"
)

type Lesson struct {
	ID          string
	Title       string
	Description string
}

// Unit is the lesson list checkpoints are derived from.
type Unit struct {
	ID      string
	Title   string
	Lessons []Lesson
}

func (u Unit) LessonIndex(lessonID string) int {
	for i, lesson := range u.Lessons {
		if lesson.ID == lessonID {
			return i
		}
	}
	return -1
}

func (u Unit) LessonIDs() []string {
	ids := make([]string, 0, len(u.Lessons))
	for _, lesson := range u.Lessons {
		ids = append(ids, lesson.ID)
	}
	return ids
}

// Checkpoint is one node of a unit's progression. LessonIndex and Lesson are
// set for lessons; AfterLessonIndex and IsEndReview for reviews.
type Checkpoint struct {
	Kind             Kind
	ID               string
	LessonIndex      int
	Lesson           Lesson
	AfterLessonIndex int
	IsEndReview      bool
}

func (c Checkpoint) IsMidReview() bool {
	return c.Kind == KindReview && !c.IsEndReview
}

func MidReviewID(unitID string, afterLessonIndex int) string {
	return fmt.Sprintf("review-%s-%d", unitID, afterLessonIndex+1)
}

func EndReviewID(unitID string) string {
	return fmt.Sprintf("review-%s-end", unitID)
}

func QuizID(unitID string) string {
	return fmt.Sprintf("quiz-%s", unitID)
}

// BuildCheckpoints derives the ordered checkpoint sequence of a unit: every
// lesson, a review after each even-numbered lesson that is not the last one,
// then the end review and the quiz.
func BuildCheckpoints(unit Unit) []Checkpoint {
	last := len(unit.Lessons) - 1
	out := make([]Checkpoint, 0, len(unit.Lessons)+len(unit.Lessons)/2+2)
	for i, lesson := range unit.Lessons {
		out = append(out, Checkpoint{Kind: KindLesson, ID: lesson.ID, LessonIndex: i, Lesson: lesson})
		if (i+1)%2 == 0 && i != last {
			out = append(out, Checkpoint{Kind: KindReview, ID: MidReviewID(unit.ID, i), AfterLessonIndex: i})
		}
	}
	out = append(out,
		Checkpoint{Kind: KindReview, ID: EndReviewID(unit.ID), AfterLessonIndex: last, IsEndReview: true},
		Checkpoint{Kind: KindQuiz, ID: QuizID(unit.ID)},
	)
	return out
}

// FindCheckpoint returns the position of id in checkpoints, or -1.
func FindCheckpoint(checkpoints []Checkpoint, id string) int {
	for i, cp := range checkpoints {
		if cp.ID == id {
			return i
		}
	}
	return -1
}
