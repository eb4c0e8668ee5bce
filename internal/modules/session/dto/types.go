package dto

import "time"

type StartInput struct {
	UnitID       string
	CheckpointID string
}

// CardOutput is one word as shown to the learner. Pronunciations hidden by
// the display setting are blank.
type CardOutput struct {
	WordID                string
	Tajik                 string
	English               string
	Russian               string
	PronunciationLatin    string
	PronunciationCyrillic string
}

type StartOutput struct {
	SessionID       string
	UnitID          string
	CheckpointID    string
	CheckpointKind  string
	CheckpointTitle string
	StartedAt       time.Time
	Cards           []CardOutput
	Translations    []string
}

type RateInput struct {
	WordID string
	Rating string
}

type RateOutput struct {
	WordID     string
	Rating     string
	Interval   int
	NextReview *time.Time
	Remaining  int
}

// EndInput carries quiz answers as word index to translation index.
type EndInput struct {
	SessionID string
	Answers   map[int]int
}

type EndOutput struct {
	SessionID    string
	UnitID       string
	CheckpointID string
	Path         string
	DurationMin  int
	Rated        int
	Completed    bool
	QuizCorrect  int
	QuizTotal    int
}

type ActiveSessionOutput struct {
	SessionID       string
	UnitID          string
	CheckpointID    string
	CheckpointKind  string
	CheckpointTitle string
	StartedAt       time.Time
	Words           []string
	Translations    []string
	Rated           int
	Remaining       int
}
