package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/foundation/rcl/ast"
)

var (
	fmtWrite bool
	fmtList  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE...",
	Short: "Pretty print RCL programs",
	Long: `Prints each program with one statement per line and two-space
indentation. With -w the files are rewritten in place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to the source file")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
}

func runFmt(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		prog, err := engine.Parse(string(src))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		formatted := ast.Format(prog)
		changed := formatted != string(src)

		switch {
		case fmtList:
			if changed {
				fmt.Fprintln(out, path)
			}
		case fmtWrite:
			if !changed {
				continue
			}
			if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
				return err
			}
			logger.Debug("Formatted file", mdwlog.Fields{"file": path})
		default:
			fmt.Fprint(out, formatted)
		}
	}
	return nil
}
