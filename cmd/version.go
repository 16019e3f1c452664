package cmd

import (
	"runtime"

	"github.com/huangsam/yomu/core"
	"github.com/spf13/cobra"
)

// versionCmd prints build details and the tag cache layout version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of yomu.",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("yomu CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
		cmd.Printf("  Tag cache layout: v%d\n", core.CacheVersion())
	},
}
