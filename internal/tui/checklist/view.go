package checklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/crossfeed/onboard/internal/output"
	"github.com/crossfeed/onboard/internal/tracker"
)

// renderView renders the complete TUI view
func (m Model) renderView() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return m.renderCompact()
	}
	if m.ShowHelp {
		return m.renderHelp()
	}

	header := titleStyle.Render("Crossfeed — getting started")
	bar := m.bar.ViewAs(float64(m.Engine.Progress()) / 100.0)

	var body string
	if m.Engine.Skipped() {
		body = subtleStyle.Render("Onboarding skipped. Run 'onboard reset' to bring the checklist back.")
	} else {
		body = m.renderSteps()
	}

	sections := []string{header, bar, "", body}

	if m.Engine.IsComplete() && !m.Engine.Skipped() {
		sections = append(sections, "", completeStyle.Render("All steps completed. You're all set!"))
	}

	if detail := m.renderDetail(); detail != "" {
		sections = append(sections, "", detail)
	}

	sections = append(sections, "", m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSteps renders the checklist rows
func (m Model) renderSteps() string {
	var rows []string
	for i, v := range m.Engine.Steps() {
		cursor := "  "
		if i == m.Cursor {
			cursor = selectedStyle.Render("› ")
		}

		title := v.Step.Title
		if v.Status == tracker.StatusCompleted {
			title = subtleStyle.Render(title)
		} else if i == m.Cursor {
			title = selectedStyle.Render(title)
		}

		row := fmt.Sprintf("%s%s %s  %s", cursor, statusMark(v.Status), title,
			subtleStyle.Render(v.Step.TargetRoute))
		rows = append(rows, ansi.Truncate(row, m.Width-2, "…"))
	}
	return strings.Join(rows, "\n")
}

// renderDetail renders the selected step's description, markdown-rendered
func (m Model) renderDetail() string {
	if m.Engine.Skipped() {
		return ""
	}
	steps := m.Engine.Steps()
	if m.Cursor >= len(steps) {
		return ""
	}
	step := steps[m.Cursor].Step

	width := m.Width - 6
	if width > 74 {
		width = 74
	}
	rendered, err := output.RenderMarkdownWithWidth(step.Description, width)
	if err != nil || rendered == "" {
		rendered = step.Description
	}
	return detailStyle.Width(width + 2).Render(rendered)
}

// renderFooter renders the key hints line, or the skip confirmation
func (m Model) renderFooter() string {
	if m.ConfirmSkip {
		return confirmStyle.Render("Skip onboarding for good? It only comes back after a reset. (y/n)")
	}
	return helpStyle.Render("j/k: move · enter: complete · s: skip · ?: help · q: quit")
}

// renderCompact renders a minimal view for small terminals
func (m Model) renderCompact() string {
	var s strings.Builder
	s.WriteString("onboard (resize for full view)\n\n")
	s.WriteString(fmt.Sprintf("Progress: %d%%\n", m.Engine.Progress()))
	if cur := m.Engine.CurrentStep(); cur != nil {
		s.WriteString(fmt.Sprintf("Next: %s\n", cur.ID))
	}
	s.WriteString("\nq:quit ?:help")
	return s.String()
}

// renderHelp renders the expanded help screen
func (m Model) renderHelp() string {
	help := `Crossfeed getting-started checklist

  j / down     move down
  k / up       move up
  enter / c    mark the selected step completed
  s            skip onboarding entirely (asks first)
  ?            toggle this help
  q / ctrl+c   quit

Completing a step here records it immediately; the dashboard reflects it
on its next load. Progress is a convenience record — if saving fails the
checklist simply starts over next session.`
	return helpStyle.Render(help)
}
