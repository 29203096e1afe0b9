package tui

import "github.com/charmbracelet/lipgloss"

// Exported constants.
const (
	// MaxLogLines is how many recent log lines the activity pane keeps.
	MaxLogLines = 12
	// ProgressBarWidth is the default width of the apply progress bar.
	ProgressBarWidth = 40
)

// TitleStyle renders the application header.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)
}

// PhaseStyle renders the current phase line.
func PhaseStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
}

// InfoStyle renders info-level log lines.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
}

// WarningStyle renders warning-level log lines.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
}

// ErrorStyle renders error-level log lines and fatal errors.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
}

// SummaryBoxStyle frames the final run summary.
func SummaryBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 2)
}
