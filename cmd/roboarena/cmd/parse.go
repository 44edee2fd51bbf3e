package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var parseDump bool

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Print the canonical form of RCL programs",
	Long: `Parses each file and prints the compact canonical rendering of
the program. With --dump the raw syntax tree is printed instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDump, "dump", false, "dump the syntax tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, path := range args {
		prog, err := engine.ParseFile(path)
		if err != nil {
			return err
		}
		if len(args) > 1 {
			fmt.Fprintf(out, "# %s\n", path)
		}
		if parseDump {
			dumpConfig.Fdump(out, prog)
			continue
		}
		fmt.Fprintln(out, prog.String())
	}
	return nil
}
