package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/crossfeed/onboard/internal/output"
	"github.com/crossfeed/onboard/internal/tui/checklist"
	"github.com/spf13/cobra"
)

var checklistCmd = &cobra.Command{
	Use:     "checklist",
	Aliases: []string{"ui"},
	Short:   "Interactive getting-started checklist (TUI)",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer cleanup()

		p := tea.NewProgram(checklist.NewModel(eng), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			output.Error("checklist UI: %v", err)
			return err
		}
		if err := eng.PersistErr(); err != nil {
			output.Warning("progress not saved: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checklistCmd)
}
