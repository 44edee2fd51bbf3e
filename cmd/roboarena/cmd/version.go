package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/roboarena/pkg/core/version"
)

var (
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintf(out, "  Language:   %s\n", version.Component("rcl"))
		fmt.Fprintf(out, "  Schema:     %s\n", version.Component("store"))
		fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
