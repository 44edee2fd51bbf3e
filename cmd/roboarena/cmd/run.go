package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/roboarena/internal/arena"
	"github.com/msto63/roboarena/internal/match"
)

var runFlags matchFlags

var runCmd = &cobra.Command{
	Use:   "run A.rcl [B.rcl]",
	Short: "Play a match without a user interface",
	Long: `Plays program A against program B and prints the result. Without
B the opponent waits in place. The result is saved to the match
history unless --no-store is given or the store is disabled.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runFlags.register(runCmd, 0)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	programs, err := loadPrograms(args)
	if err != nil {
		return err
	}
	sc, err := runFlags.loadScenario()
	if err != nil {
		return err
	}
	a, err := arena.New(sc, logger)
	if err != nil {
		return err
	}

	m, err := match.New(a, programs, runFlags.options())
	if err != nil {
		return err
	}
	res, err := m.Run(ctx)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), res)
	saveResult(cmd.Context(), res, runFlags.noStore)
	return nil
}
