package cmd

import (
	"os"

	"github.com/crossfeed/onboard/internal/workdir"
	"github.com/spf13/cobra"
)

var (
	baseDir string
	dirFlag string
)

// SetVersion sets the version string
func SetVersion(v string) {
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Crossfeed getting-started checklist",
	Long: `onboard tracks which Crossfeed getting-started steps you have completed
and shows what to do next. Progress is stored locally; losing it only means
the checklist starts over.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "base directory for tracker state (default: $CROSSFEED_DIR or cwd)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Checklist Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")
}

// initBaseDir resolves the directory tracker state lives under, honoring the
// --dir flag, CROSSFEED_DIR, and .crossfeed-root redirection.
func initBaseDir() {
	dir := dirFlag
	if dir == "" {
		dir = os.Getenv("CROSSFEED_DIR")
	}
	if dir == "" {
		if cwd, err := os.Getwd(); err == nil {
			dir = cwd
		} else {
			dir = "."
		}
	}
	baseDir = workdir.ResolveBaseDir(dir)
}

// getBaseDir returns the resolved base directory
func getBaseDir() string {
	return baseDir
}
