package cmd

import (
	"github.com/crossfeed/onboard/internal/config"
	"github.com/crossfeed/onboard/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Show or change local tool configuration",
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		backend, err := cfg.Backend()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		output.Info("store backend: %s", backend)
		return nil
	},
}

var configStoreCmd = &cobra.Command{
	Use:   "store <file|sqlite>",
	Short: "Select where tracker state is persisted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetBackend(getBaseDir(), args[0]); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("store backend set to %q", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configStoreCmd)
	rootCmd.AddCommand(configCmd)
}
