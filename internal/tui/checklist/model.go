// Package checklist is the interactive getting-started checklist TUI.
package checklist

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/crossfeed/onboard/internal/tracker"
)

// MinWidth is the minimum terminal width for proper display
const MinWidth = 40

// MinHeight is the minimum terminal height for proper display
const MinHeight = 12

// ReconcileMsg reports whether the one-shot storage reconciliation adopted
// newer stored state.
type ReconcileMsg struct {
	Adopted bool
}

// Model is the Bubble Tea model for the checklist TUI
type Model struct {
	Engine *tracker.Engine

	// Window dimensions
	Width  int
	Height int

	// UI state
	Cursor      int
	ShowHelp    bool
	ConfirmSkip bool

	bar progress.Model
}

// NewModel creates a new checklist model
func NewModel(eng *tracker.Engine) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	return Model{
		Engine: eng,
		bar:    bar,
	}
}

// Init implements tea.Model. Storage may not have been ready when the engine
// was seeded, so reconcile once now.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return ReconcileMsg{Adopted: m.Engine.Reconcile()}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		barWidth := msg.Width - 10
		if barWidth > 40 {
			barWidth = 40
		}
		if barWidth < 10 {
			barWidth = 10
		}
		m.bar.Width = barWidth
		return m, nil

	case ReconcileMsg:
		// Derived views recompute on render; nothing else to do
		m.clampCursor()
		return m, nil
	}

	return m, nil
}

// handleKey processes key input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ConfirmSkip {
		switch msg.String() {
		case "y", "Y":
			m.ConfirmSkip = false
			m.Engine.Skip()
			return m, nil
		case "n", "N", "esc":
			m.ConfirmSkip = false
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.Cursor++
		m.clampCursor()
		return m, nil

	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case "enter", "c":
		// The checklist is hidden once onboarding is skipped; keys that
		// mutate it stay inert too
		if m.Engine.Skipped() {
			return m, nil
		}
		steps := m.Engine.Steps()
		if m.Cursor < len(steps) {
			m.Engine.CompleteStep(steps[m.Cursor].Step.ID)
		}
		return m, nil

	case "s":
		if !m.Engine.Skipped() {
			m.ConfirmSkip = true
		}
		return m, nil

	case "?":
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	return m, nil
}

func (m *Model) clampCursor() {
	max := len(m.Engine.Steps()) - 1
	if max < 0 {
		max = 0
	}
	if m.Cursor > max {
		m.Cursor = max
	}
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}
