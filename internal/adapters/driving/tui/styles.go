package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-configured lipgloss styles for the chat client.
type Styles struct {
	// Header styles the title bar.
	Header lipgloss.Style

	// UserLabel styles the "You" speaker label.
	UserLabel lipgloss.Style

	// AssistantLabel styles the assistant speaker label.
	AssistantLabel lipgloss.Style

	// Timestamp styles message times.
	Timestamp lipgloss.Style

	// Message styles message bodies.
	Message lipgloss.Style

	// Status styles the busy indicator line.
	Status lipgloss.Style

	// Hint styles the key hint line.
	Hint lipgloss.Style
}

// DefaultStyles returns the default chat styling.
func DefaultStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#67E8F9")),
		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0E7490")),
		AssistantLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E3A1")),
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF")),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
	}
}
