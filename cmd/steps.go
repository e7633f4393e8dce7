package cmd

import (
	"fmt"

	"github.com/crossfeed/onboard/internal/catalog"
	"github.com/crossfeed/onboard/internal/output"
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:     "steps",
	Short:   "List the getting-started step catalog",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return output.JSON(catalog.Steps())
		}

		for _, s := range catalog.Steps() {
			fmt.Printf("  %-18s %s %s %s\n",
				s.ID,
				output.FormatIcon(s.Icon),
				s.Title,
				output.Subtle(s.TargetRoute),
			)
		}
		return nil
	},
}

var stepsShowCmd = &cobra.Command{
	Use:   "show <step-id>",
	Short: "Show a step's full description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		step, ok := catalog.ByID(args[0])
		if !ok {
			output.Error("unknown step %q", args[0])
			return fmt.Errorf("unknown step %q", args[0])
		}

		rendered, err := output.RenderStepDetail(step)
		if err != nil {
			// Fall back to the raw text rather than failing the command
			fmt.Println(output.StepDetailMarkdown(step))
			return nil
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	stepsCmd.Flags().Bool("json", false, "output as JSON")
	stepsCmd.AddCommand(stepsShowCmd)
	rootCmd.AddCommand(stepsCmd)
}
