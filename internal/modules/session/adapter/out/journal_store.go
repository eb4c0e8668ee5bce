package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"sukhan/internal/modules/session/domain"
	sessionout "sukhan/internal/modules/session/port/out"
	"sukhan/internal/platform/markdown"
	"sukhan/internal/platform/slug"
)

// JournalSessionStore writes one markdown note per finished session under
// <data>/sessions/YYYY/MM/DD.
type JournalSessionStore struct {
	dataPath string
}

func NewJournalSessionStore(dataPath string) sessionout.SessionStore {
	return &JournalSessionStore{dataPath: dataPath}
}

type journalMeta struct {
	SchemaVersion   int               `yaml:"schema_version"`
	ID              string            `yaml:"id"`
	UnitID          string            `yaml:"unit_id"`
	CheckpointID    string            `yaml:"checkpoint_id"`
	CheckpointKind  string            `yaml:"checkpoint_kind"`
	StartedAt       string            `yaml:"started_at"`
	EndedAt         string            `yaml:"ended_at"`
	DurationMinutes int               `yaml:"duration_minutes"`
	Completed       bool              `yaml:"completed"`
	Words           []string          `yaml:"words,omitempty"`
	Ratings         map[string]string `yaml:"ratings,omitempty"`
	QuizCorrect     *int              `yaml:"quiz_correct,omitempty"`
	QuizTotal       *int              `yaml:"quiz_total,omitempty"`
}

func (s *JournalSessionStore) Save(_ context.Context, session domain.Session) (string, error) {
	date := session.StartedAt
	dir := filepath.Join(s.dataPath, "sessions", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("150405"), slug.Make(session.CheckpointTitle))
	path := filepath.Join(dir, name)

	meta := journalMeta{
		SchemaVersion:   domain.SchemaVersion,
		ID:              session.ID,
		UnitID:          session.UnitID,
		CheckpointID:    session.CheckpointID,
		CheckpointKind:  string(session.CheckpointKind),
		StartedAt:       session.StartedAt.Format(time.RFC3339),
		EndedAt:         session.EndedAt.Format(time.RFC3339),
		DurationMinutes: session.DurationMin,
		Completed:       session.Completed,
		Words:           session.Words,
		Ratings:         session.Ratings,
	}
	if session.Quiz != nil {
		meta.QuizCorrect = &session.Quiz.Correct
		meta.QuizTotal = &session.Quiz.Total
	}
	rendered, err := markdown.RenderFrontmatter(meta, journalBody(session))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}

func journalBody(session domain.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", session.CheckpointTitle)
	fmt.Fprintf(&b, "- Unit: %s\n- Duration: %d minutes\n", session.UnitTitle, session.DurationMin)
	if session.Quiz != nil {
		fmt.Fprintf(&b, "- Score: %d/%d\n", session.Quiz.Correct, session.Quiz.Total)
	}
	if len(session.Ratings) > 0 {
		b.WriteString("\n## Ratings\n\n")
		ids := make([]string, 0, len(session.Ratings))
		for wordID := range session.Ratings {
			ids = append(ids, wordID)
		}
		slices.Sort(ids)
		for _, wordID := range ids {
			fmt.Fprintf(&b, "- %s: %s\n", wordID, session.Ratings[wordID])
		}
	}
	return b.String()
}
