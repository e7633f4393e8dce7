package cmd

import (
	"fmt"

	"github.com/crossfeed/onboard/internal/output"
	"github.com/crossfeed/onboard/internal/tracker"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the getting-started checklist and completion percentage",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer cleanup()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return outputStatusJSON(eng)
		}
		return outputStatusChecklist(eng)
	},
}

// statusReport is the JSON shape of the status command.
type statusReport struct {
	Steps       []tracker.StepView `json:"steps"`
	CurrentStep string             `json:"current_step,omitempty"`
	Progress    int                `json:"progress"`
	IsComplete  bool               `json:"is_complete"`
	Skipped     bool               `json:"skipped"`
}

func buildStatusReport(eng *tracker.Engine) statusReport {
	r := statusReport{
		Steps:      eng.Steps(),
		Progress:   eng.Progress(),
		IsComplete: eng.IsComplete(),
		Skipped:    eng.Skipped(),
	}
	if cur := eng.CurrentStep(); cur != nil {
		r.CurrentStep = cur.ID
	}
	return r
}

func outputStatusJSON(eng *tracker.Engine) error {
	return output.JSON(buildStatusReport(eng))
}

func outputStatusChecklist(eng *tracker.Engine) error {
	output.Title("GETTING STARTED")
	fmt.Println(output.ProgressBar(eng.Progress(), 20))
	fmt.Println()

	if eng.Skipped() {
		output.Info("Onboarding skipped. Run 'onboard reset' to start over.")
		return nil
	}

	for _, v := range eng.Steps() {
		fmt.Printf("  %s %s %s %s\n",
			output.StatusMark(v.Status),
			output.FormatIcon(v.Step.Icon),
			output.FormatStepTitle(v),
			output.Subtle(v.Step.TargetRoute),
		)
	}
	fmt.Println()

	if cur := eng.CurrentStep(); cur != nil {
		output.Info("Next: %s — see 'onboard steps show %s'", cur.Title, cur.ID)
	} else {
		output.Success("All steps completed. You're all set!")
	}
	return nil
}

func init() {
	statusCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}
