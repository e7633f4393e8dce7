package cmd

import (
	"github.com/crossfeed/onboard/internal/output"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:     "reset",
	Short:   "Wipe all onboarding progress, including the skipped flag",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			ok, err := confirm("Reset onboarding?", "Completed steps and the skipped flag are wiped.")
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

		if err := eng.Wipe(); err != nil {
			output.Warning("stored record not removed: %v", err)
		}
		output.Success("Onboarding progress cleared")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
