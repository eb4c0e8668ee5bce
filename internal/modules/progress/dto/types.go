package dto

type UnitProgressOutput struct {
	UnitID           string
	CompletedLessons int
	TotalLessons     int
}

type CheckpointOutput struct {
	UnitID           string
	Kind             string
	ID               string
	Title            string
	Description      string
	LessonIndex      int
	AfterLessonIndex int
	IsEndReview      bool
	Status           string
	Unlocked         bool
	Completed        bool
}

// Enterable reports whether a session may start on the checkpoint.
func (c CheckpointOutput) Enterable() bool {
	return c.Unlocked || c.Completed
}
