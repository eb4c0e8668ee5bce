package domain

import "github.com/samber/lo"

// Ledger is the persisted completion record. Ids are only ever added.
type Ledger struct {
	CompletedLessons []string `json:"completedLessons"`
	CompletedReviews []string `json:"completedReviews"`
	CompletedQuizzes []string `json:"completedQuizzes"`
}

func NewLedger() Ledger {
	return Ledger{CompletedLessons: []string{}, CompletedReviews: []string{}, CompletedQuizzes: []string{}}
}

func (l Ledger) IsLessonComplete(id string) bool { return lo.Contains(l.CompletedLessons, id) }
func (l Ledger) IsReviewComplete(id string) bool { return lo.Contains(l.CompletedReviews, id) }
func (l Ledger) IsQuizComplete(id string) bool   { return lo.Contains(l.CompletedQuizzes, id) }

// MarkLesson reports whether the ledger changed.
func (l *Ledger) MarkLesson(id string) bool { return insert(&l.CompletedLessons, id) }
func (l *Ledger) MarkReview(id string) bool { return insert(&l.CompletedReviews, id) }
func (l *Ledger) MarkQuiz(id string) bool   { return insert(&l.CompletedQuizzes, id) }

// UnitProgress counts how many of lessonIDs are complete.
func (l Ledger) UnitProgress(lessonIDs []string) int {
	return lo.CountBy(lessonIDs, l.IsLessonComplete)
}

// Normalize drops blank and duplicate ids a hand-edited record may carry.
func (l Ledger) Normalize() Ledger {
	clean := func(ids []string) []string {
		return lo.Uniq(lo.Compact(ids))
	}
	return Ledger{
		CompletedLessons: clean(l.CompletedLessons),
		CompletedReviews: clean(l.CompletedReviews),
		CompletedQuizzes: clean(l.CompletedQuizzes),
	}
}

func insert(set *[]string, id string) bool {
	if lo.Contains(*set, id) {
		return false
	}
	*set = append(*set, id)
	return true
}
