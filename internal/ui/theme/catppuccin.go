package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Overlay0 = lipgloss.Color("#6c7086")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 2)

	CardActive = Card.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	Completed = lipgloss.NewStyle().Foreground(Green)
	Unlocked  = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
	Locked    = lipgloss.NewStyle().Foreground(Overlay0)
)

// Rating colours a scheduler rating name.
func Rating(name string) lipgloss.Style {
	switch name {
	case "again":
		return lipgloss.NewStyle().Foreground(Red)
	case "hard":
		return lipgloss.NewStyle().Foreground(Peach)
	case "good":
		return lipgloss.NewStyle().Foreground(Yellow)
	case "easy":
		return lipgloss.NewStyle().Foreground(Green)
	default:
		return Muted
	}
}
