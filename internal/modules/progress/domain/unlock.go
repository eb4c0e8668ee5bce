package domain

type Status string

const (
	StatusLocked    Status = "locked"
	StatusUnlocked  Status = "unlocked"
	StatusCompleted Status = "completed"
)

// CheckpointState pairs a checkpoint with its freshly evaluated state.
// Completed comes from the ledger and does not depend on Unlocked.
type CheckpointState struct {
	Checkpoint Checkpoint
	Unlocked   bool
	Completed  bool
}

func (s CheckpointState) Status() Status {
	switch {
	case s.Completed:
		return StatusCompleted
	case s.Unlocked:
		return StatusUnlocked
	default:
		return StatusLocked
	}
}

// Enterable reports whether a session may be started on the checkpoint.
func (s CheckpointState) Enterable() bool {
	return s.Unlocked || s.Completed
}

// Evaluator answers unlock questions for one unit against one ledger snapshot.
type Evaluator struct {
	ledger      Ledger
	unit        Unit
	checkpoints []Checkpoint
}

func NewEvaluator(ledger Ledger, unit Unit) Evaluator {
	return Evaluator{ledger: ledger, unit: unit, checkpoints: BuildCheckpoints(unit)}
}

func (e Evaluator) Checkpoints() []Checkpoint {
	return e.checkpoints
}

// IsLessonUnlocked walks back from the lesson to the previous gating
// checkpoint. Mid-unit reviews are optional and never gate a lesson.
func (e Evaluator) IsLessonUnlocked(lessonID string) bool {
	pos := -1
	for i, cp := range e.checkpoints {
		if cp.Kind == KindLesson && cp.ID == lessonID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}
	if e.checkpoints[pos].LessonIndex == 0 {
		return true
	}
	for i := pos - 1; i >= 0; i-- {
		prev := e.checkpoints[i]
		if prev.IsMidReview() {
			continue
		}
		return e.isComplete(prev)
	}
	return true
}

func (e Evaluator) IsReviewUnlocked(afterLessonIndex int, isEndReview bool) bool {
	if afterLessonIndex < 0 || afterLessonIndex >= len(e.unit.Lessons) {
		return false
	}
	if isEndReview {
		return e.ledger.UnitProgress(e.unit.LessonIDs()) == len(e.unit.Lessons)
	}
	return e.ledger.IsLessonComplete(e.unit.Lessons[afterLessonIndex].ID)
}

func (e Evaluator) IsQuizUnlocked() bool {
	return e.ledger.IsReviewComplete(EndReviewID(e.unit.ID))
}

func (e Evaluator) IsUnlocked(cp Checkpoint) bool {
	switch cp.Kind {
	case KindLesson:
		return e.IsLessonUnlocked(cp.ID)
	case KindReview:
		return e.IsReviewUnlocked(cp.AfterLessonIndex, cp.IsEndReview)
	case KindQuiz:
		return e.IsQuizUnlocked()
	default:
		return false
	}
}

func (e Evaluator) State(cp Checkpoint) CheckpointState {
	return CheckpointState{Checkpoint: cp, Unlocked: e.IsUnlocked(cp), Completed: e.isComplete(cp)}
}

func (e Evaluator) States() []CheckpointState {
	out := make([]CheckpointState, 0, len(e.checkpoints))
	for _, cp := range e.checkpoints {
		out = append(out, e.State(cp))
	}
	return out
}

func (e Evaluator) isComplete(cp Checkpoint) bool {
	switch cp.Kind {
	case KindLesson:
		return e.ledger.IsLessonComplete(cp.ID)
	case KindReview:
		return e.ledger.IsReviewComplete(cp.ID)
	case KindQuiz:
		return e.ledger.IsQuizComplete(cp.ID)
	default:
		return false
	}
}
