package domain

import (
	"slices"
	"time"
)

const SchemaVersion = 1

type Kind string

const (
	KindLesson Kind = "lesson"
	KindReview Kind = "review"
	KindQuiz   Kind = "quiz"
)

// ActiveSession is the in-progress practice run persisted between commands.
// Words holds WordIds in card order; Translations is only set for quizzes.
type ActiveSession struct {
	SessionID       string            `json:"session_id"`
	UnitID          string            `json:"unit_id"`
	UnitTitle       string            `json:"unit_title"`
	CheckpointID    string            `json:"checkpoint_id"`
	CheckpointKind  Kind              `json:"checkpoint_kind"`
	CheckpointTitle string            `json:"checkpoint_title"`
	StartedAt       time.Time         `json:"started_at"`
	Words           []string          `json:"words"`
	Translations    []string          `json:"translations,omitempty"`
	Ratings         map[string]string `json:"ratings,omitempty"`
}

func (a ActiveSession) HasWord(wordID string) bool {
	return slices.Contains(a.Words, wordID)
}

// Record keeps the latest rating given to a word during the session.
func (a *ActiveSession) Record(wordID, rating string) {
	if a.Ratings == nil {
		a.Ratings = map[string]string{}
	}
	a.Ratings[wordID] = rating
}

func (a ActiveSession) Remaining() int {
	return len(a.Words) - len(a.Ratings)
}

type QuizScore struct {
	Correct int
	Total   int
	Passed  bool
}

type Session struct {
	ID              string
	UnitID          string
	UnitTitle       string
	CheckpointID    string
	CheckpointKind  Kind
	CheckpointTitle string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationMin     int
	Words           []string
	Ratings         map[string]string
	Completed       bool
	Quiz            *QuizScore
}
