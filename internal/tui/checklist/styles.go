package checklist

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/crossfeed/onboard/internal/tracker"
)

var (
	// Base colors
	primaryColor = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("241")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("214")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtleStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	selectedStyle = lipgloss.NewStyle().Bold(true)
	completeStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	confirmStyle  = lipgloss.NewStyle().Foreground(warningColor).Bold(true)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	// Per-status marker styles
	markStyles = map[tracker.Status]lipgloss.Style{
		tracker.StatusPending:   lipgloss.NewStyle().Foreground(mutedColor),
		tracker.StatusCurrent:   lipgloss.NewStyle().Foreground(warningColor).Bold(true),
		tracker.StatusCompleted: lipgloss.NewStyle().Foreground(successColor),
	}
)

// statusMark renders the checklist marker for a step status
func statusMark(s tracker.Status) string {
	style, ok := markStyles[s]
	if !ok {
		return "?"
	}
	switch s {
	case tracker.StatusCompleted:
		return style.Render("✓")
	case tracker.StatusCurrent:
		return style.Render("▸")
	default:
		return style.Render("○")
	}
}
