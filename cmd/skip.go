package cmd

import (
	"github.com/charmbracelet/huh"
	"github.com/crossfeed/onboard/internal/output"
	"github.com/spf13/cobra"
)

var skipCmd = &cobra.Command{
	Use:     "skip",
	Short:   "Skip onboarding entirely",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			ok, err := confirm("Skip onboarding?", "There is no unskip; only 'onboard reset' brings the checklist back.")
			if err != nil {
				return err
			}
			if !ok {
				output.Info("Aborted")
				return nil
			}
		}

		eng, cleanup, err := openEngine(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer cleanup()

		eng.Skip()
		if err := eng.PersistErr(); err != nil {
			output.Warning("progress not saved: %v", err)
		}
		output.Success("Onboarding skipped")
		return nil
	},
}

// confirm shows a yes/no prompt
func confirm(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func init() {
	skipCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(skipCmd)
}
