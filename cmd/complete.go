package cmd

import (
	"strings"

	"github.com/crossfeed/onboard/internal/catalog"
	"github.com/crossfeed/onboard/internal/output"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:     "complete <step-id>",
	Aliases: []string{"done"},
	Short:   "Mark a getting-started step as completed",
	GroupID: "core",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		eng, cleanup, err := openEngine(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer cleanup()

		if _, ok := catalog.ByID(id); !ok {
			// Tolerated no-op: stale ids from old releases or typos must
			// not fail the command.
			output.Warning("unknown step %q (known: %s)", id, strings.Join(catalog.IDs(), ", "))
			return nil
		}

		if !eng.CompleteStep(id) {
			output.Info("Step %q already completed", id)
			return nil
		}
		if err := eng.PersistErr(); err != nil {
			output.Warning("progress not saved: %v", err)
		}

		output.Success("Completed %q (%d%%)", id, eng.Progress())
		if cur := eng.CurrentStep(); cur != nil {
			output.Info("Next: %s (%s)", cur.Title, cur.ID)
		} else if eng.IsComplete() {
			output.Success("That was the last one. You're all set!")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
