// Package render formats usecase outputs for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	curriculumdto "sukhan/internal/modules/curriculum/dto"
	progressdto "sukhan/internal/modules/progress/dto"
	sessiondto "sukhan/internal/modules/session/dto"
	srsdto "sukhan/internal/modules/srs/dto"
	"sukhan/internal/ui/theme"
)

const dateLayout = "2006-01-02"

var statusMarks = map[string]string{
	"completed": "✓",
	"unlocked":  "●",
	"locked":    "○",
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "completed":
		return theme.Completed
	case "unlocked":
		return theme.Unlocked
	default:
		return theme.Locked
	}
}

func Units(units []curriculumdto.UnitSummaryOutput, progress map[string]progressdto.UnitProgressOutput) string {
	if len(units) == 0 {
		return theme.Muted.Render("no units")
	}
	lines := make([]string, 0, len(units))
	for _, unit := range units {
		p := progress[unit.ID]
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			theme.Title.Render(unit.ID),
			unit.Title,
			theme.Muted.Render(fmt.Sprintf("%d/%d lessons · %d words", p.CompletedLessons, unit.LessonCount, unit.WordCount)),
		))
	}
	return strings.Join(lines, "\n")
}

// CheckpointPath draws a unit's checkpoints top to bottom. Reviews and the
// quiz are indented under the lessons they follow.
func CheckpointPath(unitTitle string, progress progressdto.UnitProgressOutput, checkpoints []progressdto.CheckpointOutput) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(unitTitle))
	b.WriteString(" ")
	b.WriteString(theme.Muted.Render(fmt.Sprintf("(%d/%d lessons)", progress.CompletedLessons, progress.TotalLessons)))
	b.WriteString("\n")
	for _, cp := range checkpoints {
		indent := ""
		if cp.Kind != "lesson" {
			indent = "  "
		}
		style := statusStyle(cp.Status)
		fmt.Fprintf(&b, "%s%s %s %s\n", indent, style.Render(statusMarks[cp.Status]), style.Render(cp.Title), theme.Muted.Render(cp.ID))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Card renders one flash card. Blank pronunciations are left out.
func Card(card sessiondto.CardOutput, active bool) string {
	lines := []string{theme.Hot.Render(card.Tajik)}
	var pron []string
	if card.PronunciationLatin != "" {
		pron = append(pron, card.PronunciationLatin)
	}
	if card.PronunciationCyrillic != "" {
		pron = append(pron, card.PronunciationCyrillic)
	}
	if len(pron) > 0 {
		lines = append(lines, theme.Muted.Render("["+strings.Join(pron, " · ")+"]"))
	}
	lines = append(lines, card.English)
	if card.Russian != "" {
		lines = append(lines, theme.Muted.Render(card.Russian))
	}
	lines = append(lines, theme.Muted.Render(card.WordID))
	style := theme.Card
	if active {
		style = theme.CardActive
	}
	return style.Render(strings.Join(lines, "\n"))
}

func Cards(cards []sessiondto.CardOutput) string {
	rendered := make([]string, 0, len(cards))
	for i, card := range cards {
		rendered = append(rendered, Card(card, i == 0))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// Quiz lists the words on the left and the shuffled translations on the right,
// both numbered from 1.
func Quiz(cards []sessiondto.CardOutput, translations []string) string {
	left := make([]string, 0, len(cards))
	for i, card := range cards {
		left = append(left, fmt.Sprintf("%d. %s", i+1, theme.Hot.Render(card.Tajik)))
	}
	right := make([]string, 0, len(translations))
	for i, translation := range translations {
		right = append(right, fmt.Sprintf("%d. %s", i+1, translation))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Card.Render(strings.Join(left, "\n")),
		theme.Card.Render(strings.Join(right, "\n")),
	)
}

func WordState(state srsdto.WordStateOutput) string {
	next := "not scheduled"
	if state.NextReview != nil {
		next = state.NextReview.Format(dateLayout)
	}
	return strings.Join([]string{
		theme.Title.Render(state.WordID),
		"rating:   " + theme.Rating(state.Rating).Render(state.Rating),
		fmt.Sprintf("interval: %d days", state.Interval),
		fmt.Sprintf("ease:     %.2f", state.Ease),
		"next:     " + next,
		fmt.Sprintf("reviews:  %d", state.ReviewCount),
		"seen:     " + state.LastSeen.Format(dateLayout),
	}, "\n")
}
