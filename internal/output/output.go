// Package output provides styled terminal output helpers (success, error,
// warning, step formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/crossfeed/onboard/internal/catalog"
	"github.com/crossfeed/onboard/internal/tracker"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	iconStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	statusStyles = map[tracker.Status]lipgloss.Style{
		tracker.StatusPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		tracker.StatusCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		tracker.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}

	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Title prints a bold heading
func Title(format string, args ...interface{}) {
	fmt.Println(titleStyle.Render(fmt.Sprintf(format, args...)))
}

// Subtle renders muted text
func Subtle(s string) string {
	return subtleStyle.Render(s)
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// StatusMark returns the checklist marker for a derived step status.
func StatusMark(s tracker.Status) string {
	style, ok := statusStyles[s]
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

// FormatStatus renders a status name with color
func FormatStatus(s tracker.Status) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(fmt.Sprintf("[%s]", s))
}

// FormatIcon renders a step icon badge
func FormatIcon(i catalog.Icon) string {
	return iconStyle.Render(fmt.Sprintf("[%s]", i))
}

// FormatStepTitle renders a step title according to its status: completed
// steps are muted, the current step is bold.
func FormatStepTitle(v tracker.StepView) string {
	switch v.Status {
	case tracker.StatusCompleted:
		return subtleStyle.Render(v.Step.Title)
	case tracker.StatusCurrent:
		return titleStyle.Render(v.Step.Title)
	default:
		return v.Step.Title
	}
}

// ProgressBar renders a fixed-width completion bar like "████░░░░ 40%".
func ProgressBar(percent, width int) string {
	if width < 4 {
		width = 4
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := width * percent / 100
	bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d%%", bar, percent)
}
